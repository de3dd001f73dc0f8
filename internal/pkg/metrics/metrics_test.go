package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordAuth(t *testing.T) {
	before := testutil.ToFloat64(AuthEventsTotal.WithLabelValues("signin", "error"))
	RecordAuth("signin", errors.New("bad password"))
	after := testutil.ToFloat64(AuthEventsTotal.WithLabelValues("signin", "error"))

	assert.Equal(t, before+1, after)
}

func TestRecordAttendance(t *testing.T) {
	before := testutil.ToFloat64(AttendanceEventsTotal.WithLabelValues("check_in", "success"))
	RecordAttendance("check_in", nil)
	after := testutil.ToFloat64(AttendanceEventsTotal.WithLabelValues("check_in", "success"))

	assert.Equal(t, before+1, after)
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "/api/v1/reports", "200"))
	RecordRequest("GET", "/api/v1/reports", "200", 0.01)
	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET", "/api/v1/reports", "200"))

	assert.Equal(t, before+1, after)
}
