package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/workforce/internal/domain/report"
	"github.com/cmlabs-hris/workforce/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reportColumns = `id, user_id, judul, deskripsi, status, tanggal, created_at, updated_at`

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

func scanReport(row pgx.Row) (report.Report, error) {
	var rp report.Report
	err := row.Scan(&rp.ID, &rp.UserID, &rp.Title, &rp.Description, &rp.Status, &rp.Date, &rp.CreatedAt, &rp.UpdatedAt)
	return rp, err
}

// Create implements report.ReportRepository.
func (r *reportRepositoryImpl) Create(ctx context.Context, rp report.Report) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return report.Report{}, fmt.Errorf("generate report id: %w", err)
	}

	query := `
		INSERT INTO laporan (id, user_id, judul, deskripsi, status, tanggal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + reportColumns

	created, err := scanReport(q.QueryRow(ctx, query, id.String(), rp.UserID, rp.Title, rp.Description, rp.Status, rp.Date))
	if err != nil {
		return report.Report{}, fmt.Errorf("create report: %w", err)
	}
	return created, nil
}

// List implements report.ReportRepository.
func (r *reportRepositoryImpl) List(ctx context.Context, filter report.ListFilter) ([]report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reportColumns + ` FROM laporan`
	var args []interface{}
	if filter.UserID != nil {
		query += ` WHERE user_id = $1`
		args = append(args, *filter.UserID)
	}
	query += ` ORDER BY tanggal DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	reports := []report.Report{}
	for rows.Next() {
		rp, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return reports, nil
}

// GetByID implements report.ReportRepository.
func (r *reportRepositoryImpl) GetByID(ctx context.Context, id string) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reportColumns + ` FROM laporan WHERE id = $1`

	rp, err := scanReport(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.Report{}, report.ErrReportNotFound
		}
		return report.Report{}, fmt.Errorf("get report: %w", err)
	}
	return rp, nil
}
