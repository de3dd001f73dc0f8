package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const leaveRequestColumns = `id, user_id, start_date::text, end_date::text, reason, status, created_at`

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	var status string
	err := row.Scan(&l.ID, &l.UserID, &l.StartDate, &l.EndDate, &l.Reason, &status, &l.CreatedAt)
	l.Status = leave.Status(status)
	return l, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("generate leave request id: %w", err)
	}

	query := `
		INSERT INTO leave_requests (id, user_id, start_date, end_date, reason, status)
		VALUES ($1, $2, $3::date, $4::date, $5, $6)
		RETURNING ` + leaveRequestColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		id.String(),
		request.UserID,
		request.StartDate,
		request.EndDate,
		request.Reason,
		string(request.Status),
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("create leave request: %w", err)
	}
	return created, nil
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leave requests: %w", err)
	}
	defer rows.Close()

	requests := []leave.LeaveRequest{}
	for rows.Next() {
		l, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan leave request: %w", err)
		}
		requests = append(requests, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leave requests: %w", err)
	}
	return requests, nil
}
