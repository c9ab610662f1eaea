package ratelim

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"sanchaari/globals"

	"github.com/julienschmidt/httprouter"
	"golang.org/x/time/rate"
)

// RateLimiter tracks a token bucket per client IP.
type RateLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
}

// NewRateLimiter reads RATE_LIMIT_MAX (requests) and RATE_LIMIT_WINDOW_MS
// from the environment, defaulting to 100 requests per minute.
func NewRateLimiter() *RateLimiter {
	max, err := strconv.Atoi(globals.Getenv("RATE_LIMIT_MAX", "100"))
	if err != nil || max <= 0 {
		max = 100
	}
	windowMs, err := strconv.Atoi(globals.Getenv("RATE_LIMIT_WINDOW_MS", "60000"))
	if err != nil || windowMs <= 0 {
		windowMs = 60000
	}

	window := time.Duration(windowMs) * time.Millisecond
	return &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(max) / window.Seconds()),
		burst:    max,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if limiter, exists := rl.visitors[ip]; exists {
		return limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.visitors[ip] = limiter

	// Drop idle IPs after 10 minutes
	go func() {
		time.Sleep(10 * time.Minute)
		rl.mu.Lock()
		delete(rl.visitors, ip)
		rl.mu.Unlock()
	}()

	return limiter
}

// Limit enforces the per-IP rate limit before calling the next handler.
func (rl *RateLimiter) Limit(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if !rl.getLimiter(r.RemoteAddr).Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next(w, r, ps)
	}
}
