package credential

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrEmailExists        = errors.New("user already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrSessionNotFound    = errors.New("auth session not found")
	ErrSessionRevoked     = errors.New("session has been revoked or has expired")
)
