package leave

import (
	"strings"

	"github.com/cmlabs-hris/workforce/internal/pkg/validator"
)

// SubmitRequest carries the leave form. Status is accepted for form
// compatibility but every new request is stored as pending.
type SubmitRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Status    string `json:"status,omitempty"`
}

// Validate checks required fields and date formats. With enforceOrder the
// end date may not precede the start date.
func (r *SubmitRequest) Validate(enforceOrder bool) error {
	var errs validator.ValidationErrors

	r.StartDate = strings.TrimSpace(r.StartDate)
	r.EndDate = strings.TrimSpace(r.EndDate)

	startDate, startErr := validateDate(&errs, "start_date", r.StartDate)
	endDate, endErr := validateDate(&errs, "end_date", r.EndDate)

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if enforceOrder && startErr == nil && endErr == nil && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func validateDate(errs *validator.ValidationErrors, field, value string) (validator.Date, error) {
	if validator.IsEmpty(value) {
		*errs = append(*errs, validator.ValidationError{
			Field:   field,
			Message: field + " is required",
		})
		return validator.Date{}, ErrInvalidDate
	}
	date, err := validator.ParseDate(value)
	if err != nil {
		*errs = append(*errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be in YYYY-MM-DD format",
		})
		return validator.Date{}, ErrInvalidDate
	}
	return date, nil
}

// CreateLeaveRequestRequest is the record store insert body.
type CreateLeaveRequestRequest struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Status    Status `json:"status"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	validateDate(&errs, "start_date", r.StartDate)
	validateDate(&errs, "end_date", r.EndDate)
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
