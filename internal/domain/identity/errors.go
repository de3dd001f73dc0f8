package identity

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials   = errors.New("invalid login credentials")
	ErrProfileMissing       = errors.New("signed in, but no user profile exists for this account")
	ErrProfileNotFound      = errors.New("user profile not found")
	ErrNotAuthenticated     = errors.New("not logged in")
	ErrLoginInProgress      = errors.New("a login is already in progress")
	ErrAlreadyAuthenticated = errors.New("already logged in; log out first")
	ErrSessionExpired       = errors.New("session has expired, please log in again")
)

// Registration stages. A failure at StageProfile leaves a provider
// credential without a users row.
const (
	StageSignUp  = "signup"
	StageProfile = "profile"
)

type RegistrationError struct {
	Stage string
	Err   error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registration failed at %s: %v", e.Stage, e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// Orphaned reports whether the provider account was created but the
// profile was not.
func (e *RegistrationError) Orphaned() bool {
	return e.Stage == StageProfile
}
