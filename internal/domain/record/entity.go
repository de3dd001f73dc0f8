// Package record describes the record store served by the API: access
// rules over the users, attendance, leave_requests and laporan tables.
package record

import (
	"context"

	"github.com/cmlabs-hris/workforce/internal/domain/attendance"
	"github.com/cmlabs-hris/workforce/internal/domain/identity"
)

// Caller is the authenticated user behind a request.
type Caller struct {
	UserID string
}

// ProfileStore extends the client-facing profile port with operator actions.
type ProfileStore interface {
	identity.ProfileRepository
	UpdateRoleByEmail(ctx context.Context, email string, role identity.Role) error
}

// AttendanceStore adds the point lookup the check-out endpoint needs for
// its ownership check.
type AttendanceStore interface {
	attendance.AttendanceRepository
	GetByID(ctx context.Context, id string) (attendance.Attendance, error)
}
