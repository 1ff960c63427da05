package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"completion-planner/config"
	_ "completion-planner/docs" // Swagger docs
	"completion-planner/internal/catalog"
	"completion-planner/internal/httpserver"
	"completion-planner/internal/middleware"
	"completion-planner/internal/progress/repository/sqlite"
	"completion-planner/internal/progress/usecase"
	"completion-planner/pkg/log"
)

// @title       Completion Planner API
// @description Hollow Knight and Silksong completion checklists with requirement checking and save-file import.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Completion Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Catalogs
	catalogs, err := catalog.All()
	if err != nil {
		logger.Error(ctx, "Failed to load catalogs: ", err)
		return
	}
	for _, game := range catalog.Games() {
		logger.Infof(ctx, "Catalog %s: %d checks", game, catalogs[game].Size())
	}

	// 4. Storage
	if dir := filepath.Dir(cfg.Storage.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error(ctx, "Failed to create storage directory: ", err)
			return
		}
	}
	db, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite database: %s", cfg.Storage.Path)

	// 5. Progress domain
	progressUC, err := usecase.New(logger, sqlite.New(db, logger), catalogs, usecase.Config{
		DefaultGame: catalog.Game(cfg.Checklist.DefaultGame),
		CacheSize:   cfg.Profiles.CacheSize,
		CacheTTL:    cfg.Profiles.CacheTTL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize progress usecase: ", err)
		return
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		ProgressUseCase: progressUC,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			Burst:          cfg.RateLimit.Burst,
		},
		Ready: func() error { return db.PingContext(ctx) },
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
