package middleware

import (
	"completion-planner/pkg/log"
)

// RateLimitConfig bounds mutating requests per client IP.
type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
	MaxClients     int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg),
	}
}
