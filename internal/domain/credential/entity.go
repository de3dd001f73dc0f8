package credential

import "time"

// Account is an email/password credential held by the identity provider.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	LastSignInAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthSession backs an issued access token. Signing out revokes it.
type AuthSession struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

func (s AuthSession) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
