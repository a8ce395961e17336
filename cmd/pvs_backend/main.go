package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/pvs_ledger/internal/core/services"
	"github.com/SscSPs/pvs_ledger/internal/handlers"
	"github.com/SscSPs/pvs_ledger/internal/middleware"
	"github.com/SscSPs/pvs_ledger/internal/platform/config"
	"github.com/SscSPs/pvs_ledger/internal/repositories/database/sqlstore"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title PVS Ledger API
// @version 1.0
// @description Double-entry bookkeeping over SQLite or PostgreSQL.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx := context.Background()

	store, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:     cfg.DBDriver,
		DSN:        cfg.DatabaseURL,
		MoneyScale: cfg.MoneyScale,
		Ping:       cfg.EnableDBCheck,
	})
	if err != nil {
		logger.Error("Failed to open ledger store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			logger.Error("Error closing ledger store", slog.String("error", cerr.Error()))
		}
	}()
	logger.Info("Ledger store opened", slog.String("driver", cfg.DBDriver), slog.Int("money_scale", int(cfg.MoneyScale)))

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := sqlstore.NewSchemaManager(cfg.DBDriver, cfg.DatabaseURL).CreateTables(ctx); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	repos := sqlstore.NewRepositoryProvider(store)
	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(rateLimiter))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
