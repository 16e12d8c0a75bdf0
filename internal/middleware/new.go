package middleware

import (
	"internship-assistant/config"
	"internship-assistant/pkg/log"
)

// Middleware bundles the gin middlewares shared by every domain.
type Middleware struct {
	l       log.Logger
	cors    config.CORSConfig
	limiter *rateLimiter
}

// New creates the middleware set. A non-positive rate disables rate limiting.
func New(l log.Logger, cors config.CORSConfig, rl config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		cors:    cors,
		limiter: newRateLimiter(rl.RequestsPerSecond, rl.Burst),
	}
}
