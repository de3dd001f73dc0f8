package attendance

import "context"

type AttendanceRepository interface {
	// GetByUserAndDate returns nil when the user has no record for date.
	GetByUserAndDate(ctx context.Context, userID, date string) (*Attendance, error)
	// Create fails with ErrAlreadyCheckedIn when a record for the same
	// user and date exists.
	Create(ctx context.Context, record Attendance) (Attendance, error)
	// UpdateCheckOut fails with ErrAlreadyCheckedOut when the record already
	// has a check-out.
	UpdateCheckOut(ctx context.Context, id, checkOut string) (Attendance, error)
	ListByDate(ctx context.Context, date string) ([]Attendance, error)
}
