// Package metrics provides Prometheus metrics for the workforce API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by route pattern and status class.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "workforce",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// RequestDuration measures request handling duration.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "workforce",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// AuthEventsTotal counts sign-in, sign-up and sign-out outcomes.
	AuthEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "workforce",
			Name:      "auth_events_total",
			Help:      "Total number of authentication events",
		},
		[]string{"event", "outcome"},
	)

	// RateLimitedTotal counts requests rejected by the auth rate limiter.
	RateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "workforce",
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter",
		},
	)

	// AttendanceEventsTotal counts check-ins and check-outs.
	AttendanceEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "workforce",
			Name:      "attendance_events_total",
			Help:      "Total number of attendance writes",
		},
		[]string{"event", "outcome"},
	)
)

// RecordRequest records a handled HTTP request.
func RecordRequest(method, route, status string, duration float64) {
	RequestsTotal.WithLabelValues(method, route, status).Inc()
	RequestDuration.WithLabelValues(method, route).Observe(duration)
}

// RecordAuth records an authentication event.
func RecordAuth(event string, err error) {
	AuthEventsTotal.WithLabelValues(event, outcome(err)).Inc()
}

// RecordAttendance records an attendance write.
func RecordAttendance(event string, err error) {
	AttendanceEventsTotal.WithLabelValues(event, outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
