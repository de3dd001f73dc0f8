package leave

import (
	"time"

	"github.com/cmlabs-hris/workforce/internal/pkg/validator"
)

// Status is kept as a string so values written by other clients round-trip.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type LeaveRequest struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (l LeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(l.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(l.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if _, ok := validator.IsValidDate(l.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(l.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
