package middleware

import (
	"gems-assistant/pkg/log"
)

// AdminKeyHeader carries the administrator API key.
const AdminKeyHeader = "X-Admin-Key"

// RequestIDHeader echoes the per-request ID back to clients.
const RequestIDHeader = "X-Request-ID"

type Middleware struct {
	l           log.Logger
	adminKey    string
	chatLimiter *rateLimiter
}

// New builds the middleware set. chatPerMin <= 0 disables chat rate limiting.
func New(l log.Logger, adminKey string, chatPerMin int) Middleware {
	return Middleware{
		l:           l,
		adminKey:    adminKey,
		chatLimiter: newRateLimiter(chatPerMin),
	}
}
