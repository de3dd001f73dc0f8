package credential

import (
	"strings"

	"github.com/cmlabs-hris/workforce/internal/pkg/validator"
)

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignUpRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if !validator.IsValidPassword(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters and contain only letters and numbers, with at least one of each",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SignUpResponse struct {
	UserID string `json:"user_id"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignInRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SignInResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

type SessionResponse struct {
	UserID string `json:"user_id"`
}
