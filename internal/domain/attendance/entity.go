package attendance

import "github.com/cmlabs-hris/workforce/internal/pkg/validator"

// Attendance is one user's record for one calendar day. Times are wall
// clock HH:MM:SS without offset.
type Attendance struct {
	ID       string  `json:"id"`
	UserID   string  `json:"user_id"`
	Date     string  `json:"date"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
}

func (a Attendance) CheckedIn() bool {
	return a.CheckIn != nil
}

func (a Attendance) CheckedOut() bool {
	return a.CheckOut != nil
}

func (a Attendance) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(a.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(a.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if _, ok := validator.IsValidDate(a.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if a.CheckIn != nil && !validator.IsValidClock(*a.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be in HH:MM:SS format",
		})
	}
	if a.CheckOut != nil && !validator.IsValidClock(*a.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be in HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
