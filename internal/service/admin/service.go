package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/workforce/internal/domain/admin"
	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

type AdminServiceImpl struct {
	session identity.SessionContext
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
	identity.ProfileRepository
	clock  clock.Clock
	logger *slog.Logger
}

func NewAdminService(
	session identity.SessionContext,
	attendanceRepository attendance.AttendanceRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	profileRepository identity.ProfileRepository,
	c clock.Clock,
	logger *slog.Logger,
) admin.AdminService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminServiceImpl{
		session:                session,
		AttendanceRepository:   attendanceRepository,
		LeaveRequestRepository: leaveRequestRepository,
		ProfileRepository:      profileRepository,
		clock:                  c,
		logger:                 logger,
	}
}

// names looks up every distinct id in one batch. A failed lookup leaves the
// directory empty so the view renders placeholders.
func (s *AdminServiceImpl) names(ctx context.Context, ids []string) admin.NameDirectory {
	seen := make(map[string]struct{}, len(ids))
	distinct := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}

	dir := make(admin.NameDirectory, len(distinct))
	if len(distinct) == 0 {
		return dir
	}

	profiles, err := s.ProfileRepository.GetByIDs(ctx, distinct)
	if err != nil {
		s.session.Observe(err)
		s.logger.WarnContext(ctx, "name lookup failed",
			slog.Int("ids", len(distinct)),
			slog.String("error", err.Error()),
		)
		return dir
	}
	for _, p := range profiles {
		dir[p.ID] = p.Name
	}
	return dir
}

// FetchTodayAttendance implements admin.AdminService.
func (s *AdminServiceImpl) FetchTodayAttendance(ctx context.Context) ([]admin.AttendanceEntry, error) {
	if _, _, err := s.session.Require(); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, clock.Today(s.clock))
	if err != nil {
		s.session.Observe(err)
		return nil, fmt.Errorf("list today's attendance: %w", err)
	}

	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.UserID
	}
	dir := s.names(ctx, ids)

	entries := make([]admin.AttendanceEntry, len(records))
	for i, r := range records {
		entries[i] = admin.AttendanceEntry{
			Attendance: r,
			Name:       dir.Resolve(r.UserID, admin.UnknownUser),
		}
	}
	return entries, nil
}

// FetchAllLeaveRequests implements admin.AdminService.
func (s *AdminServiceImpl) FetchAllLeaveRequests(ctx context.Context) ([]admin.LeaveEntry, error) {
	if _, _, err := s.session.Require(); err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.List(ctx)
	if err != nil {
		s.session.Observe(err)
		return nil, fmt.Errorf("list leave requests: %w", err)
	}

	ids := make([]string, len(requests))
	for i, r := range requests {
		ids[i] = r.UserID
	}
	dir := s.names(ctx, ids)

	entries := make([]admin.LeaveEntry, len(requests))
	for i, r := range requests {
		entries[i] = admin.LeaveEntry{
			LeaveRequest: r,
			Name:         dir.Resolve(r.UserID, admin.UnknownRequester),
		}
	}
	return entries, nil
}

// Load implements admin.AdminService.
func (s *AdminServiceImpl) Load(ctx context.Context) (admin.Dashboard, error) {
	if _, _, err := s.session.Require(); err != nil {
		return admin.Dashboard{}, err
	}

	dashboard := admin.Dashboard{Date: clock.Today(s.clock)}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries, err := s.FetchTodayAttendance(gctx)
		if err != nil {
			return err
		}
		dashboard.Attendance = entries
		return nil
	})
	g.Go(func() error {
		entries, err := s.FetchAllLeaveRequests(gctx)
		if err != nil {
			return err
		}
		dashboard.LeaveRequests = entries
		return nil
	})
	if err := g.Wait(); err != nil {
		return admin.Dashboard{}, err
	}
	return dashboard, nil
}
