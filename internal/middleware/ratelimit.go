package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"gems-assistant/pkg/response"
)

const (
	maxTrackedClients = 1000
	limiterTTL        = 5 * time.Minute
)

// RateLimit throttles chat traffic per client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.chatLimiter.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", c.ClientIP())
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}

// rateLimiter keeps one token bucket per client, evicting idle clients.
type rateLimiter struct {
	// mu makes lookup-or-create atomic so one client never gets two buckets.
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// newRateLimiter returns nil when requestsPerMin <= 0; a nil limiter allows
// everything.
func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) allow(key string) bool {
	if rl == nil {
		return true
	}
	return rl.limiter(key).Allow()
}

func (rl *rateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}
