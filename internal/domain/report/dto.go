package report

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/workforce/internal/pkg/validator"
)

type CreateRequest struct {
	Title       string `json:"judul"`
	Description string `json:"deskripsi"`
	Status      string `json:"status"`
}

func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Title = strings.TrimSpace(r.Title)
	r.Status = strings.TrimSpace(r.Status)

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "judul",
			Message: "judul is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "judul",
			Message: "judul must not exceed 255 characters",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "deskripsi",
			Message: "deskripsi is required",
		})
	}
	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CreateReportRequest is the record store insert body.
type CreateReportRequest struct {
	UserID      string    `json:"user_id"`
	Title       string    `json:"judul"`
	Description string    `json:"deskripsi"`
	Status      string    `json:"status"`
	Date        time.Time `json:"tanggal"`
}

func (r *CreateReportRequest) Validate() error {
	req := CreateRequest{Title: r.Title, Description: r.Description, Status: r.Status}
	err := req.Validate()
	var errs validator.ValidationErrors
	if err != nil {
		errs = err.(validator.ValidationErrors)
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

type ListFilter struct {
	UserID *string
}
