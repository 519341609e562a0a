package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gems-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "GEMS assistant is answering"
	HealthVersion = "1.0.0"
	ServiceName   = "gems-assistant"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the intent store answers.
// @Summary Readiness Check
// @Description Check if the API and its intent store are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Intent store unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if err := srv.db.PingContext(c.Request.Context()); err != nil {
		srv.l.Warnf(c.Request.Context(), "readyCheck: intent store unavailable: %v", err)
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "intent store unavailable",
		})
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
