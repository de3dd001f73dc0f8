package credential

import (
	"context"
	"time"
)

type AccountRepository interface {
	Create(ctx context.Context, account Account) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
	UpdateLastSignIn(ctx context.Context, id string, at time.Time) error
}

type AuthSessionRepository interface {
	Create(ctx context.Context, session AuthSession) (AuthSession, error)
	GetByID(ctx context.Context, id string) (AuthSession, error)
	Revoke(ctx context.Context, id string, at time.Time) error
}
