package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"gems-assistant/config"
	"gems-assistant/internal/cli"
	"gems-assistant/internal/db"
	intentSQLite "gems-assistant/internal/intent/repository/sqlite"
	intentUC "gems-assistant/internal/intent/usecase"
	"gems-assistant/internal/resolver"
	"gems-assistant/internal/resolver/neural"
	"gems-assistant/pkg/log"
	"gems-assistant/pkg/random"
)

func main() {
	if err := cli.Execute(context.Background(), bootstrap, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func bootstrap(ctx context.Context, configPath string) (*cli.App, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	conn, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening intent store: %w", err)
	}

	picker := random.New()
	if cfg.Assistant.RNGSeed != 0 {
		picker = random.NewSeeded(cfg.Assistant.RNGSeed)
	}

	repo := intentSQLite.New(conn, logger)

	orch, err := resolver.Build(ctx, resolver.BuildConfig{
		IntentsPath: cfg.Assistant.IntentsPath,
		UseNeural:   cfg.Assistant.UseML,
		Neural: neural.Config{
			ModelPath:      cfg.Assistant.ModelPath,
			DimensionsPath: cfg.Assistant.DimensionsPath,
		},
		Picker: picker,
	}, repo, logger)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("building resolver: %w", err)
	}

	return &cli.App{
		Intents:       intentUC.New(repo, logger, picker),
		Resolver:      orch,
		IntentsPath:   cfg.Assistant.IntentsPath,
		IsInteractive: stdinIsTerminal,
		Close:         conn.Close,
	}, nil
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}
