package admin

import "context"

type AdminService interface {
	FetchTodayAttendance(ctx context.Context) ([]AttendanceEntry, error)
	FetchAllLeaveRequests(ctx context.Context) ([]LeaveEntry, error)
	Load(ctx context.Context) (Dashboard, error)
}
