// Package app wires the session manager, role router and workflows around a
// single owned session and drives the presentation through a Navigator.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/workforce/internal/domain/admin"
	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/domain/navigation"
	"github.com/cmlabs-hris/workforce/internal/domain/report"
	"github.com/cmlabs-hris/workforce/internal/pkg/clock"
	adminService "github.com/cmlabs-hris/workforce/internal/service/admin"
	attendanceService "github.com/cmlabs-hris/workforce/internal/service/attendance"
	leaveService "github.com/cmlabs-hris/workforce/internal/service/leave"
	reportService "github.com/cmlabs-hris/workforce/internal/service/report"
	"github.com/cmlabs-hris/workforce/internal/service/router"
	sessionService "github.com/cmlabs-hris/workforce/internal/service/session"
)

// Deps are the ports of one backend, either the remote API or the in-memory
// store.
type Deps struct {
	Provider              identity.Provider
	Profiles              identity.ProfileRepository
	Attendance            attendance.AttendanceRepository
	LeaveRequests         leave.LeaveRequestRepository
	Reports               report.ReportRepository
	Clock                 clock.Clock
	EnforceLeaveDateOrder bool
	Logger                *slog.Logger
}

type App struct {
	Session    identity.SessionService
	Attendance attendance.AttendanceService
	Leave      leave.LeaveService
	Reports    report.ReportService
	Admin      admin.AdminService

	router navigation.Router
	nav    navigation.Navigator
	logger *slog.Logger
}

func New(deps Deps, nav navigation.Navigator) *App {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	session := sessionService.NewSessionService(deps.Provider, deps.Profiles, logger)
	return &App{
		Session:    session,
		Attendance: attendanceService.NewAttendanceService(session, deps.Attendance, deps.Clock, logger),
		Leave:      leaveService.NewLeaveService(session, deps.LeaveRequests, deps.EnforceLeaveDateOrder, logger),
		Reports:    reportService.NewReportService(session, deps.Reports, deps.Clock, logger),
		Admin:      adminService.NewAdminService(session, deps.Attendance, deps.LeaveRequests, deps.Profiles, deps.Clock, logger),
		router:     router.NewRouter(),
		nav:        nav,
		logger:     logger,
	}
}

// Start restores a persisted session and shows its landing screen, or the
// login screen when there is none.
func (a *App) Start(ctx context.Context) (*identity.Identity, error) {
	who, err := a.Session.Restore(ctx)
	if err != nil {
		a.nav.Reset(navigation.ScreenLogin)
		return nil, err
	}
	if who == nil {
		a.nav.Reset(navigation.ScreenLogin)
		return nil, nil
	}
	a.nav.Reset(a.router.LandingFor(who.Role))
	return who, nil
}

func (a *App) Login(ctx context.Context, req identity.LoginRequest) (identity.Identity, error) {
	who, err := a.Session.Login(ctx, req)
	if err != nil {
		return identity.Identity{}, err
	}
	a.nav.Reset(a.router.LandingFor(who.Role))
	return who, nil
}

// Register creates the account and profile, then sends the user to the
// login screen. It does not sign in.
func (a *App) Register(ctx context.Context, req identity.RegisterRequest) error {
	if err := a.Session.Register(ctx, req); err != nil {
		return err
	}
	a.nav.Navigate(navigation.ScreenLogin)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.Session.Logout(ctx); err != nil {
		return err
	}
	a.nav.Reset(navigation.ScreenLogin)
	return nil
}

// Open moves to screen if the current identity may see it.
func (a *App) Open(screen navigation.Screen) error {
	if err := a.guard(screen); err != nil {
		return err
	}
	a.nav.Navigate(screen)
	return nil
}

// AdminDashboard loads today's attendance and every leave request for an
// administrator.
func (a *App) AdminDashboard(ctx context.Context) (admin.Dashboard, error) {
	if err := a.Open(navigation.ScreenAdminDashboard); err != nil {
		return admin.Dashboard{}, err
	}
	dashboard, err := a.Admin.Load(ctx)
	return dashboard, a.Handle(err)
}

// AllLeaveRequests is the admin listing; ListAll itself is not role-gated.
func (a *App) AllLeaveRequests(ctx context.Context) ([]admin.LeaveEntry, error) {
	if err := a.guard(navigation.ScreenAdminDashboard); err != nil {
		return nil, err
	}
	entries, err := a.Admin.FetchAllLeaveRequests(ctx)
	return entries, a.Handle(err)
}

// TodayAttendance is the admin view of everyone's attendance today.
func (a *App) TodayAttendance(ctx context.Context) ([]admin.AttendanceEntry, error) {
	if err := a.guard(navigation.ScreenAdminDashboard); err != nil {
		return nil, err
	}
	entries, err := a.Admin.FetchTodayAttendance(ctx)
	return entries, a.Handle(err)
}

// Handle returns err unchanged, sending the user back to login first when it
// means the session is gone.
func (a *App) Handle(err error) error {
	if errors.Is(err, identity.ErrSessionExpired) || errors.Is(err, identity.ErrNotAuthenticated) {
		a.logger.Info("session lost, returning to login", slog.String("error", err.Error()))
		a.nav.Reset(navigation.ScreenLogin)
	}
	return err
}

func (a *App) guard(screen navigation.Screen) error {
	var who *identity.Identity
	if current, ok := a.Session.Current(); ok {
		who = &current
	}
	return a.router.Guard(who, screen)
}
