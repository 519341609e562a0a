package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"gems-assistant/config"
	_ "gems-assistant/docs" // Swagger docs
	"gems-assistant/internal/catalog"
	"gems-assistant/internal/db"
	"gems-assistant/internal/httpserver"
	"gems-assistant/internal/intent"
	intentSQLite "gems-assistant/internal/intent/repository/sqlite"
	intentUC "gems-assistant/internal/intent/usecase"
	"gems-assistant/internal/resolver"
	"gems-assistant/internal/resolver/neural"
	"gems-assistant/pkg/log"
	"gems-assistant/pkg/random"
)

// @title       GEMS Assistant API
// @description Intent resolution service: chat endpoint plus admin management of the live intent catalog.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey AdminKey
// @in   header
// @name X-Admin-Key
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting GEMS Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Dynamic intent store
	conn, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening intent store: %w", err)
	}
	defer conn.Close()
	logger.Infof(ctx, "Intent store: %s", cfg.Database.Path)

	picker := random.New()
	if cfg.Assistant.RNGSeed != 0 {
		picker = random.NewSeeded(cfg.Assistant.RNGSeed)
	}

	intentRepo := intentSQLite.New(conn, logger)

	if cfg.Assistant.SeedOnStart {
		seedIntents(ctx, cfg.Assistant.IntentsPath, intentUC.New(intentRepo, logger, picker), logger)
	}

	// 4. Metrics
	registry := prometheus.NewRegistry()
	var metrics *resolver.Metrics
	if cfg.Metrics.Enabled {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics, err = resolver.NewMetrics(registry)
		if err != nil {
			return fmt.Errorf("registering resolver metrics: %w", err)
		}
	}

	// 5. Resolver
	orch, err := resolver.Build(ctx, resolver.BuildConfig{
		IntentsPath: cfg.Assistant.IntentsPath,
		UseNeural:   cfg.Assistant.UseML,
		Neural: neural.Config{
			ModelPath:      cfg.Assistant.ModelPath,
			DimensionsPath: cfg.Assistant.DimensionsPath,
			IntentsPath:    cfg.Assistant.IntentsPath,
		},
		Picker: picker,
	}, intentRepo, logger, resolver.WithMetrics(metrics))
	if err != nil {
		return fmt.Errorf("building resolver: %w", err)
	}
	logger.Infof(ctx, "Static engine: %s", orch.Mode())

	// 6. HTTP Server
	srvCfg := httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		DB:             conn,
		Resolver:       orch,
		AllowedOrigins: cfg.Websocket.AllowedOrigins,
		ChatPerMin:     cfg.RateLimit.ChatPerMin,
		IntentsPath:    cfg.Assistant.IntentsPath,
		AdminKey:       cfg.Admin.APIKey,
		Picker:         picker,
	}
	if cfg.Metrics.Enabled {
		srvCfg.MetricsPath = cfg.Metrics.Path
		srvCfg.Gatherer = registry
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		return fmt.Errorf("initializing HTTP server: %w", err)
	}

	// 7. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	return g.Wait()
}

// seedIntents copies the definition file into the store. Failures are logged;
// the service still starts and falls back to the static engine.
func seedIntents(ctx context.Context, path string, uc intent.UseCase, logger log.Logger) {
	intents, err := catalog.LoadFile(path)
	if err != nil {
		logger.Warnf(ctx, "Seeding skipped: %v", err)
		return
	}

	out, err := uc.Sync(ctx, intent.SyncInput{Intents: intents})
	if err != nil {
		logger.Warnf(ctx, "Seeding failed: %v", err)
		return
	}
	logger.Infof(ctx, "Seeded intents: added=%d updated=%d skipped=%d", out.Added, out.Updated, out.Skipped)
}
