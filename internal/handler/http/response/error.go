package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/credential"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
	"github.com/cmlabs-hris/workforce/internal/domain/leave"
	"github.com/cmlabs-hris/workforce/internal/domain/record"
	"github.com/cmlabs-hris/workforce/internal/domain/report"
	"github.com/cmlabs-hris/workforce/internal/pkg/jwt"
	"github.com/cmlabs-hris/workforce/internal/pkg/validator"
)

// Error codes carried in ErrorDetail.Code for domain failures.
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeSessionExpired     = "SESSION_EXPIRED"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeAccountNotFound    = "ACCOUNT_NOT_FOUND"
	CodeProfileNotFound    = "PROFILE_NOT_FOUND"
	CodeProfileExists      = "PROFILE_EXISTS"
	CodeAlreadyCheckedIn   = "ALREADY_CHECKED_IN"
	CodeNotCheckedIn       = "NOT_CHECKED_IN"
	CodeAlreadyCheckedOut  = "ALREADY_CHECKED_OUT"
	CodeAttendanceNotFound = "ATTENDANCE_NOT_FOUND"
	CodeLeaveNotFound      = "LEAVE_REQUEST_NOT_FOUND"
	CodeReportNotFound     = "REPORT_NOT_FOUND"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Credential errors
	case errors.Is(err, credential.ErrInvalidCredentials):
		Fail(w, http.StatusUnauthorized, CodeInvalidCredentials, err.Error())
	case errors.Is(err, credential.ErrSessionRevoked), errors.Is(err, jwt.ErrInvalidToken):
		Fail(w, http.StatusUnauthorized, CodeSessionExpired, err.Error())
	case errors.Is(err, credential.ErrEmailExists):
		Fail(w, http.StatusConflict, CodeEmailExists, err.Error())
	case errors.Is(err, credential.ErrAccountNotFound):
		Fail(w, http.StatusNotFound, CodeAccountNotFound, err.Error())

	// Record access
	case errors.Is(err, record.ErrForbidden):
		Fail(w, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, record.ErrProfileExists):
		Fail(w, http.StatusConflict, CodeProfileExists, err.Error())
	case errors.Is(err, identity.ErrProfileNotFound):
		Fail(w, http.StatusNotFound, CodeProfileNotFound, err.Error())

	// Attendance errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Fail(w, http.StatusConflict, CodeAlreadyCheckedIn, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Fail(w, http.StatusConflict, CodeNotCheckedIn, err.Error())
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Fail(w, http.StatusConflict, CodeAlreadyCheckedOut, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		Fail(w, http.StatusNotFound, CodeAttendanceNotFound, err.Error())

	// Leave and report errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		Fail(w, http.StatusNotFound, CodeLeaveNotFound, err.Error())
	case errors.Is(err, report.ErrReportNotFound):
		Fail(w, http.StatusNotFound, CodeReportNotFound, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
