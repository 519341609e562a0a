package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"gems-assistant/internal/chat"
	"gems-assistant/pkg/log"
	"gems-assistant/pkg/random"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db *sql.DB

	// Chat domain
	resolver       chat.Resolver
	allowedOrigins []string
	chatPerMin     int

	// Intent admin domain
	intentsPath string
	adminKey    string
	picker      random.Picker

	// Metrics
	metricsPath string
	gatherer    prometheus.Gatherer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB *sql.DB

	Resolver       chat.Resolver
	AllowedOrigins []string
	ChatPerMin     int

	IntentsPath string
	AdminKey    string
	Picker      random.Picker

	// MetricsPath is served from Gatherer when both are set.
	MetricsPath string
	Gatherer    prometheus.Gatherer
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		db:             cfg.DB,
		resolver:       cfg.Resolver,
		allowedOrigins: cfg.AllowedOrigins,
		chatPerMin:     cfg.ChatPerMin,
		intentsPath:    cfg.IntentsPath,
		adminKey:       cfg.AdminKey,
		picker:         cfg.Picker,
		metricsPath:    cfg.MetricsPath,
		gatherer:       cfg.Gatherer,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("db is required")
	}
	if srv.resolver == nil {
		return errors.New("resolver is required")
	}
	return nil
}
