package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gems-assistant/internal/middleware"
	"gems-assistant/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.adminKey, srv.chatPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	if srv.metricsPath != "" && srv.gatherer != nil {
		srv.gin.GET(srv.metricsPath, gin.WrapH(promhttp.HandlerFor(srv.gatherer, promhttp.HandlerOpts{})))
	}
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	if err := srv.setupChatDomain(ctx, srv.gin, mw); err != nil {
		return err
	}

	api := srv.gin.Group("/api/v1")
	if err := srv.setupIntentDomain(ctx, api.Group("/admin"), mw); err != nil {
		return err
	}

	if srv.adminKey == "" {
		srv.l.Warnf(ctx, "admin.api_key is empty: every admin request will be rejected")
	}
	return nil
}
