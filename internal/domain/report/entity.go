package report

import (
	"time"

	"github.com/cmlabs-hris/workforce/internal/pkg/validator"
)

// Report is a row of the laporan table; the JSON names follow its columns.
type Report struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"judul"`
	Description string    `json:"deskripsi"`
	Status      string    `json:"status"`
	Date        time.Time `json:"tanggal"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (r Report) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if r.Date.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "tanggal",
			Message: "tanggal is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
