package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/akale-dev/pf_ledger_app/internal/core/services"
	"github.com/akale-dev/pf_ledger_app/internal/handlers"
	"github.com/akale-dev/pf_ledger_app/internal/middleware"
	"github.com/akale-dev/pf_ledger_app/internal/repositories/database/sqlite"
	"github.com/akale-dev/pf_ledger_app/pkg/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the durable key-value store backing the ledger
	repo, err := sqlite.NewSnapshotRepository(cfg.SQLitePath, logger)
	if err != nil {
		logger.Error("Failed to open ledger database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			logger.Error("Error closing ledger database", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Ledger database opened.", slog.String("path", cfg.SQLitePath))

	// Wire store, transfer engine and facade; load persisted state (falling
	// back to defaults) before any consumer can reach the facade.
	svcs := services.NewServiceContainer(repo)
	svcs.Store.Initialize(context.Background())
	logger.Info("Ledger state initialized.")

	// Rate limiter for mutation routes
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("error", err.Error()))
		os.Exit(1)
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the frontend origin)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.FrontendBaseURL}
	r.Use(cors.New(corsCfg))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, svcs, limiterInstance)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
