package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/record"
	"github.com/cmlabs-hris/workforce/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Dates and times are read back as text so the wire format never depends
// on the driver's temporal types.
const attendanceColumns = `id, user_id, date::text, to_char(check_in, 'HH24:MI:SS'), to_char(check_out, 'HH24:MI:SS')`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) record.AttendanceStore {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(&a.ID, &a.UserID, &a.Date, &a.CheckIn, &a.CheckOut)
	return a, err
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE user_id = $1 AND date = $2::date`

	a, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return &a, nil
}

// GetByID implements record.AttendanceStore.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE id = $1`

	a, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("get attendance: %w", err)
	}
	return a, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendance (id, user_id, date, check_in, check_out)
		VALUES ($1, $2, $3::date, $4::time, $5::time)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query, id.String(), rec.UserID, rec.Date, rec.CheckIn, rec.CheckOut))
	if err != nil {
		if hasCode(err, codeUniqueViolation) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("create attendance: %w", err)
	}
	return created, nil
}

// UpdateCheckOut implements attendance.AttendanceRepository. Only a row
// without a check-out is updated, so concurrent check-outs have one winner.
func (r *attendanceRepositoryImpl) UpdateCheckOut(ctx context.Context, id, checkOut string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET check_out = $1::time
		WHERE id = $2 AND check_out IS NULL
		RETURNING ` + attendanceColumns

	updated, err := scanAttendance(q.QueryRow(ctx, query, checkOut, id))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Attendance{}, fmt.Errorf("update check out: %w", err)
	}

	if _, err := r.GetByID(ctx, id); err != nil {
		return attendance.Attendance{}, err
	}
	return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE date = $1::date ORDER BY check_in NULLS LAST, id`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attendance: %w", err)
	}
	return records, nil
}
