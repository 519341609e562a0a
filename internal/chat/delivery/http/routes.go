package http

import (
	"github.com/gin-gonic/gin"

	"gems-assistant/internal/middleware"
)

// RegisterRoutes maps the public chat endpoints. Both are rate limited per
// client.
func RegisterRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	r.POST("/chat", mw.RateLimit(), h.Chat)
	r.GET("/ws/chat", mw.RateLimit(), h.Stream)
}
