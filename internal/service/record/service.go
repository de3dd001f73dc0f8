package record

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/credential"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/domain/record"
	"github.com/cmlabs-hris/workforce/internal/domain/report"
	"github.com/cmlabs-hris/workforce/internal/pkg/metrics"
	"github.com/cmlabs-hris/workforce/internal/pkg/validator"
)

type RecordServiceImpl struct {
	profiles   record.ProfileStore
	attendance record.AttendanceStore
	leave.LeaveRequestRepository
	reportRepo report.ReportRepository
	accounts   credential.AccountRepository
	now        func() time.Time
}

func NewRecordService(
	profiles record.ProfileStore,
	attendanceStore record.AttendanceStore,
	leaveRequestRepository leave.LeaveRequestRepository,
	reportRepo report.ReportRepository,
	accounts credential.AccountRepository,
) record.RecordService {
	return &RecordServiceImpl{
		profiles:               profiles,
		attendance:             attendanceStore,
		LeaveRequestRepository: leaveRequestRepository,
		reportRepo:             reportRepo,
		accounts:               accounts,
		now:                    time.Now,
	}
}

// isAdmin reads the caller's role from the users table. A caller without a
// profile is treated as an employee.
func (s *RecordServiceImpl) isAdmin(ctx context.Context, caller record.Caller) (bool, error) {
	profile, err := s.profiles.GetByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, identity.ErrProfileNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get caller profile: %w", err)
	}
	return identity.ParseRole(profile.Role) == identity.RoleAdmin, nil
}

// authorize allows access to userID's rows for the owner and for admins.
// A nil userID means every user's rows and needs admin.
func (s *RecordServiceImpl) authorize(ctx context.Context, caller record.Caller, userID *string) error {
	if userID != nil && *userID == caller.UserID {
		return nil
	}
	admin, err := s.isAdmin(ctx, caller)
	if err != nil {
		return err
	}
	if !admin {
		return record.ErrForbidden
	}
	return nil
}

// CreateProfile implements record.RecordService.
func (s *RecordServiceImpl) CreateProfile(ctx context.Context, req record.CreateProfileRequest) (identity.Profile, error) {
	if err := req.Validate(); err != nil {
		return identity.Profile{}, err
	}

	account, err := s.accounts.GetByID(ctx, req.ID)
	if err != nil {
		return identity.Profile{}, err
	}

	return s.profiles.Create(ctx, identity.Profile{
		ID:    account.ID,
		Name:  req.Name,
		Role:  string(identity.RoleEmployee),
		Email: account.Email,
	})
}

// GetProfile implements record.RecordService.
func (s *RecordServiceImpl) GetProfile(ctx context.Context, caller record.Caller, id string) (identity.Profile, error) {
	return s.profiles.GetByID(ctx, id)
}

// ListProfiles implements record.RecordService.
func (s *RecordServiceImpl) ListProfiles(ctx context.Context, caller record.Caller, ids []string) ([]identity.Profile, error) {
	return s.profiles.GetByIDs(ctx, ids)
}

// PromoteToAdmin implements record.RecordService.
func (s *RecordServiceImpl) PromoteToAdmin(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validator.IsValidEmail(email) {
		return validator.ValidationErrors{{Field: "email", Message: "email must be a valid email address"}}
	}
	return s.profiles.UpdateRoleByEmail(ctx, email, identity.RoleAdmin)
}

// GetAttendance implements record.RecordService.
func (s *RecordServiceImpl) GetAttendance(ctx context.Context, caller record.Caller, userID, date string) (*attendance.Attendance, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}
	if err := s.authorize(ctx, caller, &userID); err != nil {
		return nil, err
	}
	return s.attendance.GetByUserAndDate(ctx, userID, date)
}

// ListAttendanceByDate implements record.RecordService.
func (s *RecordServiceImpl) ListAttendanceByDate(ctx context.Context, caller record.Caller, date string) ([]attendance.Attendance, error) {
	if _, ok := validator.IsValidDate(date); !ok {
		return nil, validator.ValidationErrors{{Field: "date", Message: "date must be in YYYY-MM-DD format"}}
	}
	if err := s.authorize(ctx, caller, nil); err != nil {
		return nil, err
	}
	return s.attendance.ListByDate(ctx, date)
}

// CreateAttendance implements record.RecordService.
func (s *RecordServiceImpl) CreateAttendance(ctx context.Context, caller record.Caller, req attendance.CreateAttendanceRequest) (attendance.Attendance, error) {
	if req.UserID != "" && req.UserID != caller.UserID {
		return attendance.Attendance{}, record.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	checkIn := req.CheckIn
	created, err := s.attendance.Create(ctx, attendance.Attendance{
		UserID:  caller.UserID,
		Date:    req.Date,
		CheckIn: &checkIn,
	})
	metrics.RecordAttendance("check_in", err)
	return created, err
}

// CheckOut implements record.RecordService.
func (s *RecordServiceImpl) CheckOut(ctx context.Context, caller record.Caller, id string, req attendance.CheckOutRequest) (attendance.Attendance, error) {
	if err := req.Validate(); err != nil {
		return attendance.Attendance{}, err
	}

	existing, err := s.attendance.GetByID(ctx, id)
	if err != nil {
		return attendance.Attendance{}, err
	}
	if existing.UserID != caller.UserID {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	if !existing.CheckedIn() {
		return attendance.Attendance{}, attendance.ErrNotCheckedIn
	}
	if existing.CheckedOut() {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
	}

	updated, err := s.attendance.UpdateCheckOut(ctx, id, req.CheckOut)
	metrics.RecordAttendance("check_out", err)
	return updated, err
}

// CreateLeaveRequest implements record.RecordService.
func (s *RecordServiceImpl) CreateLeaveRequest(ctx context.Context, caller record.Caller, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	if req.UserID != "" && req.UserID != caller.UserID {
		return leave.LeaveRequest{}, record.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	return s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		UserID:    caller.UserID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
}

// ListLeaveRequests implements record.RecordService.
func (s *RecordServiceImpl) ListLeaveRequests(ctx context.Context, caller record.Caller, userID *string) ([]leave.LeaveRequest, error) {
	if err := s.authorize(ctx, caller, userID); err != nil {
		return nil, err
	}
	if userID == nil {
		return s.LeaveRequestRepository.List(ctx)
	}
	return s.LeaveRequestRepository.ListByUser(ctx, *userID)
}

// CreateReport implements record.RecordService.
func (s *RecordServiceImpl) CreateReport(ctx context.Context, caller record.Caller, req report.CreateReportRequest) (report.Report, error) {
	if req.UserID != "" && req.UserID != caller.UserID {
		return report.Report{}, record.ErrForbidden
	}
	if req.Date.IsZero() {
		req.Date = s.now()
	}
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}

	return s.reportRepo.Create(ctx, report.Report{
		UserID:      caller.UserID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Status:      strings.TrimSpace(req.Status),
		Date:        req.Date,
	})
}

// ListReports implements record.RecordService.
func (s *RecordServiceImpl) ListReports(ctx context.Context, caller record.Caller, userID *string) ([]report.Report, error) {
	if err := s.authorize(ctx, caller, userID); err != nil {
		return nil, err
	}
	return s.reportRepo.List(ctx, report.ListFilter{UserID: userID})
}

// GetReport implements record.RecordService.
func (s *RecordServiceImpl) GetReport(ctx context.Context, caller record.Caller, id string) (report.Report, error) {
	found, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return report.Report{}, err
	}
	if found.UserID == caller.UserID {
		return found, nil
	}
	admin, err := s.isAdmin(ctx, caller)
	if err != nil {
		return report.Report{}, err
	}
	if !admin {
		return report.Report{}, report.ErrReportNotFound
	}
	return found, nil
}
