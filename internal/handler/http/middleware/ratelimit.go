package middleware

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cmlabs-hris/workforce/internal/handler/http/response"
	"github.com/cmlabs-hris/workforce/internal/pkg/metrics"
	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = 3 * time.Minute
	limiterIdleTTL         = 5 * time.Minute
)

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

// NewRateLimiter allows perMinute requests per IP, refilled evenly, with a
// burst of the same size.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	return &RateLimiter{
		limiters: make(map[string]*ipLimiter),
		rate:     rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
		now:      time.Now,
	}
}

// Run evicts idle limiters until ctx is done.
func (rl *RateLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evict()
		}
	}
}

func (rl *RateLimiter) evict() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, l := range rl.limiters {
		if now.Sub(l.lastSeen) > limiterIdleTTL {
			delete(rl.limiters, ip)
		}
	}
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if l, ok := rl.limiters[ip]; ok {
		l.lastSeen = rl.now()
		return l.limiter
	}

	l := rate.NewLimiter(rl.rate, rl.burst)
	rl.limiters[ip] = &ipLimiter{limiter: l, lastSeen: rl.now()}
	return l
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiter(clientIP(r)).Allow() {
			retryAfter := max(int(math.Ceil(1/float64(rl.rate))), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			metrics.RateLimitedTotal.Inc()
			response.TooManyRequests(w, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP relies on chi's RealIP middleware having rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
