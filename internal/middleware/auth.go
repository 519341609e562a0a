package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"gems-assistant/pkg/response"
)

// Auth admits requests whose X-Admin-Key matches the configured key. With no
// key configured every request is rejected.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(AdminKeyHeader)
		if m.adminKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.adminKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: rejected %s %s from %s", c.Request.Method, c.FullPath(), c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
