package middleware

import (
	"portfolio-chat/config"
	"portfolio-chat/internal/metrics"
	"portfolio-chat/pkg/log"
)

type Middleware struct {
	l       log.Logger
	metrics *metrics.Metrics
	cors    config.CORSConfig
	limiter *rateLimiter // nil when rate limiting is disabled
}

func New(l log.Logger, cfg *config.Config, m *metrics.Metrics) Middleware {
	mw := Middleware{
		l:       l,
		metrics: m,
		cors:    cfg.CORS,
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimit.RequestsPerMin, cfg.RateLimit.Burst)
	}
	return mw
}
