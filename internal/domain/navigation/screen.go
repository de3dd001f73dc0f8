package navigation

import (
	"errors"

	"github.com/cmlabs-hris/workforce/internal/domain/identity"
)

type Screen string

const (
	ScreenLogin             Screen = "Login"
	ScreenRegister          Screen = "Register"
	ScreenEmployeeDashboard Screen = "EmployeeDashboard"
	ScreenAdminDashboard    Screen = "AdminDashboard"
	ScreenAbsence           Screen = "Absence"
	ScreenLeaveRequest      Screen = "LeaveRequest"
	ScreenReport            Screen = "Report"
	ScreenDetailReport      Screen = "DetailReport"
	ScreenAddReport         Screen = "AddReport"
)

var (
	ErrAuthenticationRequired = errors.New("log in to open this screen")
	ErrAdminRequired          = errors.New("this screen is only available to administrators")
	ErrUnknownScreen          = errors.New("unknown screen")
)

// Public screens are reachable without an identity.
func (s Screen) Public() bool {
	return s == ScreenLogin || s == ScreenRegister
}

func (s Screen) Known() bool {
	switch s {
	case ScreenLogin, ScreenRegister, ScreenEmployeeDashboard, ScreenAdminDashboard,
		ScreenAbsence, ScreenLeaveRequest, ScreenReport, ScreenDetailReport, ScreenAddReport:
		return true
	}
	return false
}

// Navigator is the presentation side: it shows whatever screen it is told.
type Navigator interface {
	// Reset replaces the history with screen, used after login and logout.
	Reset(screen Screen)
	Navigate(screen Screen)
}

type Router interface {
	LandingFor(role identity.Role) Screen
	Guard(who *identity.Identity, screen Screen) error
}
