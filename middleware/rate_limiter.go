// middleware/rate_limiter.go
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/tastehaven/menu_backend/models"
)

// RateLimiter applies per-IP request limits at the transport layer. The
// auth gate itself does no attempt counting; this only shields the HTTP
// surface from hammering.
type RateLimiter struct {
	ips            map[string]*rate.Limiter
	mu             sync.RWMutex
	defaultLimit   rate.Limit
	defaultBurst   int
	endpointLimits map[string]endpointLimit
}

type endpointLimit struct {
	limit rate.Limit
	burst int
}

func NewRateLimiter() *RateLimiter {
	limiter := &RateLimiter{
		ips:            make(map[string]*rate.Limiter),
		defaultLimit:   rate.Every(100 * time.Millisecond), // 10 requests per second
		defaultBurst:   20,
		endpointLimits: make(map[string]endpointLimit),
	}

	// Login gets a tighter budget than menu reads.
	limiter.endpointLimits["/api/auth/login"] = endpointLimit{
		limit: rate.Every(2 * time.Second),
		burst: 5,
	}
	limiter.endpointLimits["/api/menu"] = endpointLimit{
		limit: rate.Every(50 * time.Millisecond), // 20 requests per second
		burst: 50,
	}

	return limiter
}

func (r *RateLimiter) limiterFor(ip, path string) *rate.Limiter {
	key := ip + path

	r.mu.RLock()
	limiter, exists := r.ips[key]
	r.mu.RUnlock()
	if exists {
		return limiter
	}

	limit := r.defaultLimit
	burst := r.defaultBurst
	if el, ok := r.endpointLimits[path]; ok {
		limit = el.limit
		burst = el.burst
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if limiter, exists = r.ips[key]; exists {
		return limiter
	}
	limiter = rate.NewLimiter(limit, burst)
	r.ips[key] = limiter
	return limiter
}

func (r *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			limiter := r.limiterFor(c.RealIP(), c.Path())
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, models.Response{
					Status:  http.StatusTooManyRequests,
					Message: "Too many requests, please slow down",
				})
			}
			return next(c)
		}
	}
}
