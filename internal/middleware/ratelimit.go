package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"portfolio-chat/pkg/response"
)

const (
	rateLimiterMaxClients = 10000
	rateLimiterTTL        = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client, forgetting idle clients.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin, burst int) *rateLimiter {
	return newRateLimiterTTL(requestsPerMin, burst, rateLimiterTTL)
}

func newRateLimiterTTL(requestsPerMin, burst int, idleTTL time.Duration) *rateLimiter {
	if burst <= 0 {
		burst = max(requestsPerMin/10, 1)
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](rateLimiterMaxClients, nil, idleTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

// allow re-adds the limiter on every hit: Get does not extend the entry,
// and an expired entry would hand an active client a full burst again.
func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
	}
	rl.limiters.Add(key, limiter)
	return limiter.Allow()
}

// RateLimit throttles requests per client IP. It is a no-op when disabled.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if !mw.limiter.allow(ip) {
			mw.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: rate limit exceeded for %s", ip)
			mw.metrics.IncRateLimited()
			response.Abort(c, response.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
