package http

import (
	"github.com/gin-gonic/gin"

	"gems-assistant/internal/middleware"
)

// RegisterRoutes maps the admin intent endpoints. Every route requires the
// admin API key.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	intents := rg.Group("/intents", mw.Auth())
	{
		intents.GET("", h.List)
		intents.POST("", h.Create)
		intents.POST("/smart", h.CreateSmart)
		intents.POST("/sync", h.Sync)
		intents.GET("/:id", h.Detail)
		intents.PUT("/:id", h.Update)
		intents.PUT("/:id/smart", h.UpdateSmart)
		intents.DELETE("/:id", h.Delete)
		intents.GET("/:id/preview", h.Preview)
	}
}
