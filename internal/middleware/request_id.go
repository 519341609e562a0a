package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gems-assistant/pkg/log"
)

// RequestID tags every request with an ID, reusing the caller's X-Request-ID
// when present, and stores it in the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), log.RequestIDKey, id))
		c.Next()
	}
}
