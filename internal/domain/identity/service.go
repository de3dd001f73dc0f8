package identity

import (
	"context"

	"github.com/cmlabs-hris/workforce/internal/pkg/liveness"
)

type SessionService interface {
	SessionContext
	Login(ctx context.Context, req LoginRequest) (Identity, error)
	Register(ctx context.Context, req RegisterRequest) error
	Restore(ctx context.Context) (*Identity, error)
	Logout(ctx context.Context) error
	Current() (Identity, bool)
	State() State
}

// SessionContext is the view of the session handed to every workflow.
type SessionContext interface {
	// Require fails with ErrNotAuthenticated without touching the network.
	Require() (Session, liveness.Token, error)
	// Observe lets a workflow report a remote failure; an expired session
	// drops the local identity.
	Observe(err error)
}
