package middleware

import (
	"net/http"
	"sync"
	"time"

	"pannel_pintura/internal/logger"
	"pannel_pintura/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than it takes to refill completely are dropped, so the map only holds
// clients seen recently.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	every     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewRateLimiter(perMinute, burst int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = 1
	}
	if burst <= 0 {
		burst = 1
	}
	interval := time.Minute / time.Duration(perMinute)
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		every:    rate.Every(interval),
		burst:    burst,
		idle:     max(interval*time.Duration(burst), time.Minute),
		now:      time.Now,
	}
}

func (r *RateLimiter) limiter(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastSweep) >= r.idle {
		r.removeIdle(now)
		r.lastSweep = now
	}

	cl, ok := r.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(r.every, r.burst)}
		r.limiters[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// removeIdle drops buckets not used within r.idle. Callers hold r.mu.
func (r *RateLimiter) removeIdle(now time.Time) {
	for key, cl := range r.limiters {
		if now.Sub(cl.lastSeen) > r.idle {
			delete(r.limiters, key)
		}
	}
}

// Size returns the number of tracked clients.
func (r *RateLimiter) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.limiters)
}

// Middleware rejects requests over the limit with 429.
func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !r.limiter(ip).Allow() {
			logger.FromGin(c).Warn().Str("client_ip", ip).Msg("rate limit exceeded")
			appErr := pkg.NewDomainErrorSimple("RATE_LIMITED", "Demasiadas solicitudes, intenta más tarde", http.StatusTooManyRequests)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Next()
	}
}
