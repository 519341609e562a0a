package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "gems-assistant/internal/chat/delivery/http"
	intentHTTP "gems-assistant/internal/intent/delivery/http"
	intentRepo "gems-assistant/internal/intent/repository/sqlite"
	intentUC "gems-assistant/internal/intent/usecase"
	"gems-assistant/internal/middleware"
)

// setupIntentDomain initializes the intent admin domain and registers its routes.
func (srv HTTPServer) setupIntentDomain(ctx context.Context, admin *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := intentRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := intentUC.New(repo, srv.l, srv.picker)

	// 3. HTTP Handler
	h := intentHTTP.New(srv.l, uc, srv.intentsPath)

	// 4. Routes: registers /api/v1/admin/intents
	intentHTTP.RegisterRoutes(admin, h, mw)

	srv.l.Infof(ctx, "Intent admin domain registered")
	return nil
}

// setupChatDomain registers the public chat endpoints.
func (srv HTTPServer) setupChatDomain(ctx context.Context, r gin.IRouter, mw middleware.Middleware) error {
	h := chatHTTP.New(srv.l, srv.resolver, srv.allowedOrigins)
	chatHTTP.RegisterRoutes(r, h, mw)

	srv.l.Infof(ctx, "Chat domain registered at POST /chat and GET /ws/chat")
	return nil
}
