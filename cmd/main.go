package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/lyrx/internal/repositories"
	"github.com/desertthunder/lyrx/internal/services"
	"github.com/desertthunder/lyrx/internal/shared"
	"github.com/urfave/cli/v3"
)

const defaultConfigPath = "config.toml"

func main() {
	logger := shared.NewLogger(nil)

	if err := shared.LoadEnv(".env"); err != nil {
		logger.Warn("failed to load .env", "error", err)
	}

	configPath := os.Getenv("LYRX_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config, using defaults", "path", configPath, "error", err)
		}
	}
	shared.ApplyEnv(config)

	lyricsService := services.NewLRCLibService(config.API.BaseURL, config.API.UserAgent, nil)
	apiService := services.NewAPIService(config.API.BaseURL, config.API.UserAgent, nil)

	var store repositories.Store
	if db, err := shared.OpenDatabase(config.Database); err == nil {
		defer db.Close()
		store = repositories.NewSQLiteStore(db)
	} else {
		logger.Warn("database unavailable, favorites and preferences will not persist", "path", config.Database.Path, "error", err)
		store = repositories.NewMemoryStore()
	}

	runner := NewRunner(RunnerOpts{
		Config:     config,
		ConfigPath: configPath,
		Lyrics:     lyricsService,
		API:        apiService,
		Store:      store,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:    "lyrx",
		Usage:   "Search, read and share song lyrics from the terminal",
		Version: "0.3.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				shared.SetLogLevel(logger, log.DebugLevel)
			}
			return ctx, nil
		},
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		}
		logger.Fatalf("application error: %v", err)
	}
}
