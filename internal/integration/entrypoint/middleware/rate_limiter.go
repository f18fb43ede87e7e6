// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/blessing-poultries/backend/internal/domain/error"
	"github.com/blessing-poultries/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindow is the default time window for rate limiting.
	defaultWindow = 1 * time.Minute
)

// clientWindow tracks request counts for one client within the current window.
type clientWindow struct {
	count       int
	windowStart time.Time
}

// RateLimiter provides fixed-window, per-client-IP rate limiting for the
// login endpoint.
type RateLimiter struct {
	mu          sync.Mutex
	clients     map[string]*clientWindow
	maxAttempts int
	window      time.Duration
}

// NewRateLimiter creates a rate limiter with the default login limits.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMaxAttempts, defaultWindow)
}

// NewRateLimiterWithConfig creates a rate limiter with custom limits.
func NewRateLimiterWithConfig(maxAttempts int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clients:     make(map[string]*clientWindow),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Middleware returns a Gin handler that enforces the limit. Exceeded
// requests get 429 with a Retry-After header.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Limits are disabled when the suite drives the API directly.
		if os.Getenv("E2E_MODE") == "true" || os.Getenv("ENV") == "test" {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, retryAfter := rl.allow(clientIP)
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow records an attempt for the key and reports whether it fits the
// current window, with the time until the window resets when it does not.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	cw, ok := rl.clients[key]
	if !ok || now.Sub(cw.windowStart) >= rl.window {
		rl.clients[key] = &clientWindow{count: 1, windowStart: now}
		return true, 0
	}

	if cw.count < rl.maxAttempts {
		cw.count++
		return true, 0
	}

	return false, cw.windowStart.Add(rl.window).Sub(now)
}

// Reset clears all tracked clients.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.clients = make(map[string]*clientWindow)
}

// Cleanup drops clients whose window has expired. Called opportunistically
// to keep the map from growing without bound.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, cw := range rl.clients {
		if now.Sub(cw.windowStart) >= rl.window {
			delete(rl.clients, key)
		}
	}
}
