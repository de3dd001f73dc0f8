package identity

import "context"

// Provider is the external identity provider holding credentials.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (userID string, err error)
	SignIn(ctx context.Context, email, password string) (Credential, error)
	SignOut(ctx context.Context, token string) error
	// Discard drops a locally kept credential without contacting the
	// provider.
	Discard(ctx context.Context) error
	// CurrentSession returns nil when no credential survives from a
	// previous run.
	CurrentSession(ctx context.Context) (*Credential, error)
}
