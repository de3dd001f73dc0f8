package attendance

import "github.com/cmlabs-hris/workforce/internal/pkg/validator"

type CreateAttendanceRequest struct {
	UserID  string `json:"user_id"`
	Date    string `json:"date"`
	CheckIn string `json:"check_in"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsValidClock(r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be in HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	CheckOut string `json:"check_out"`
}

func (r *CheckOutRequest) Validate() error {
	if !validator.IsValidClock(r.CheckOut) {
		return validator.ValidationErrors{{
			Field:   "check_out",
			Message: "check_out must be in HH:MM:SS format",
		}}
	}
	return nil
}
