package record

import (
	"context"

	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/domain/report"
)

type RecordService interface {
	// Profiles
	CreateProfile(ctx context.Context, req CreateProfileRequest) (identity.Profile, error)
	GetProfile(ctx context.Context, caller Caller, id string) (identity.Profile, error)
	ListProfiles(ctx context.Context, caller Caller, ids []string) ([]identity.Profile, error)
	PromoteToAdmin(ctx context.Context, email string) error
	// Attendance
	GetAttendance(ctx context.Context, caller Caller, userID, date string) (*attendance.Attendance, error)
	ListAttendanceByDate(ctx context.Context, caller Caller, date string) ([]attendance.Attendance, error)
	CreateAttendance(ctx context.Context, caller Caller, req attendance.CreateAttendanceRequest) (attendance.Attendance, error)
	CheckOut(ctx context.Context, caller Caller, id string, req attendance.CheckOutRequest) (attendance.Attendance, error)
	// Leave
	CreateLeaveRequest(ctx context.Context, caller Caller, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error)
	ListLeaveRequests(ctx context.Context, caller Caller, userID *string) ([]leave.LeaveRequest, error)
	// Reports
	CreateReport(ctx context.Context, caller Caller, req report.CreateReportRequest) (report.Report, error)
	ListReports(ctx context.Context, caller Caller, userID *string) ([]report.Report, error)
	GetReport(ctx context.Context, caller Caller, id string) (report.Report, error)
}
