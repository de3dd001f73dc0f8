package identity

import (
	"time"

	"github.com/cmlabs-hris/workforce/internal/pkg/validator"
)

type Role string

const (
	RoleAdmin    Role = "admin"    // Reviews attendance and leave for everyone
	RoleEmployee Role = "employee" // Default for every other stored value
)

// ParseRole maps a stored role string to a Role. Only "admin" grants admin;
// anything else, including the empty string, is an employee.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleEmployee
}

// Identity is the authenticated user as seen by the workflows.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Role        Role   `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Session pairs the current identity with the provider token it was issued.
type Session struct {
	Identity Identity
	Token    string
}

// Credential is what the identity provider returns after sign-in.
type Credential struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"access_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Profile is a row of the users table. Role is kept as stored.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

func (p Profile) Identity() Identity {
	return Identity{
		ID:          p.ID,
		DisplayName: p.Name,
		Role:        ParseRole(p.Role),
	}
}

func (p Profile) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(p.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type State int

const (
	StateAnonymous State = iota
	StateAuthenticating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}
