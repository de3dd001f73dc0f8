package attendance

import "context"

type AttendanceService interface {
	// FetchToday returns nil when the user has not checked in today.
	FetchToday(ctx context.Context) (*Attendance, error)
	CheckIn(ctx context.Context) (Attendance, error)
	CheckOut(ctx context.Context) (Attendance, error)
}
