package leave

import (
	"errors"
	"testing"

	"github.com/cmlabs-hris/workforce/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestSubmitRequest_Validate(t *testing.T) {
	tests := []struct {
		name         string
		req          SubmitRequest
		enforceOrder bool
		fields       []string
	}{
		{
			name: "valid",
			req:  SubmitRequest{StartDate: "2024-05-01", EndDate: "2024-05-03", Reason: "family"},
		},
		{
			name:   "empty reason",
			req:    SubmitRequest{StartDate: "2024-05-01", EndDate: "2024-05-03", Reason: " "},
			fields: []string{"reason"},
		},
		{
			name:   "missing dates",
			req:    SubmitRequest{Reason: "family"},
			fields: []string{"start_date", "end_date"},
		},
		{
			name:   "bad format",
			req:    SubmitRequest{StartDate: "01-05-2024", EndDate: "2024-05-03", Reason: "family"},
			fields: []string{"start_date"},
		},
		{
			name: "reversed dates allowed by default",
			req:  SubmitRequest{StartDate: "2024-05-03", EndDate: "2024-05-01", Reason: "family"},
		},
		{
			name:         "reversed dates rejected when enforced",
			req:          SubmitRequest{StartDate: "2024-05-03", EndDate: "2024-05-01", Reason: "family"},
			enforceOrder: true,
			fields:       []string{"end_date"},
		},
		{
			name:         "same day allowed when enforced",
			req:          SubmitRequest{StartDate: "2024-05-03", EndDate: "2024-05-03", Reason: "family"},
			enforceOrder: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(tt.enforceOrder)
			if len(tt.fields) == 0 {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			if assert.True(t, errors.As(err, &verrs)) {
				for _, f := range tt.fields {
					assert.True(t, verrs.Has(f), "expected failure on %s, got %v", f, verrs)
				}
			}
		})
	}
}

func TestStatus_Known(t *testing.T) {
	assert.True(t, StatusPending.Known())
	assert.True(t, StatusRejected.Known())
	assert.False(t, Status("cancelled").Known())
}

func TestLeaveRequest_Validate(t *testing.T) {
	ok := LeaveRequest{ID: "l1", UserID: "u1", StartDate: "2024-05-01", EndDate: "2024-05-02", Status: "cancelled"}
	assert.NoError(t, ok.Validate())

	bad := LeaveRequest{ID: "", UserID: "u1", StartDate: "2024-05-01", EndDate: "soon"}
	assert.Error(t, bad.Validate())
}
