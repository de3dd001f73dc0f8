package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(2)
	handler := rl.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signin", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1002"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.2:1000"))
}

func TestRateLimiter_EvictsIdle(t *testing.T) {
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(5)
	rl.now = func() time.Time { return now }

	rl.limiter("10.0.0.1")
	now = now.Add(limiterIdleTTL / 2)
	rl.limiter("10.0.0.2")

	now = now.Add(limiterIdleTTL/2 + time.Second)
	rl.evict()

	assert.NotContains(t, rl.limiters, "10.0.0.1")
	assert.Contains(t, rl.limiters, "10.0.0.2")
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:5555"
	assert.Equal(t, "192.0.2.7", clientIP(req))

	req.RemoteAddr = "192.0.2.7"
	assert.Equal(t, "192.0.2.7", clientIP(req))
}
