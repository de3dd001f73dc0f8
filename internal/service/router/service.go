package router

import (
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/navigation"
)

type RouterImpl struct{}

func NewRouter() navigation.Router {
	return RouterImpl{}
}

// LandingFor implements navigation.Router.
func (RouterImpl) LandingFor(role identity.Role) navigation.Screen {
	if role == identity.RoleAdmin {
		return navigation.ScreenAdminDashboard
	}
	return navigation.ScreenEmployeeDashboard
}

// Guard implements navigation.Router.
func (RouterImpl) Guard(who *identity.Identity, screen navigation.Screen) error {
	if !screen.Known() {
		return navigation.ErrUnknownScreen
	}
	if screen.Public() {
		return nil
	}
	if who == nil {
		return navigation.ErrAuthenticationRequired
	}
	if screen == navigation.ScreenAdminDashboard && !who.IsAdmin() {
		return navigation.ErrAdminRequired
	}
	return nil
}
