package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/acme_marketplace/internal/adapters/ratesource"
	"github.com/SscSPs/acme_marketplace/internal/core/domain"
	portsrepo "github.com/SscSPs/acme_marketplace/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/acme_marketplace/internal/core/ports/services"
	"github.com/SscSPs/acme_marketplace/internal/core/services"
	"github.com/SscSPs/acme_marketplace/internal/handlers"
	"github.com/SscSPs/acme_marketplace/internal/middleware"
	"github.com/SscSPs/acme_marketplace/internal/platform/config"
	"github.com/SscSPs/acme_marketplace/internal/repositories/database/pgsql"
	"github.com/SscSPs/acme_marketplace/internal/repositories/memory"
	"github.com/SscSPs/acme_marketplace/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Acme Marketplace API
// @version 1.0
// @description Marketplace backend for inventors, patrons and administrators.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx := context.Background()

	var repos portsrepo.RepositoryProvider
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			logger.Error("Failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}

		repos = pgsql.NewRepositoryProvider(dbPool)
	} else {
		logger.Warn("No database configured, data will not survive a restart")
		repos = memory.NewRepositoryProvider(domain.DefaultSystemConfiguration())
	}

	rateSource, err := newRateSource(cfg)
	if err != nil {
		logger.Error("Failed to configure exchange rate source", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(cfg, repos, rateSource)

	if cfg.AdminPassword != "" {
		if err := serviceContainer.Auth.EnsureAdministrator(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			logger.Error("Failed to bootstrap administrator", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newRateSource picks the HTTP rate source when a URL is configured and the
// static table otherwise.
func newRateSource(cfg *config.Config) (portssvc.ExchangeRateSource, error) {
	if cfg.RateSourceURL != "" {
		return ratesource.NewHTTPSource(cfg.RateSourceURL, cfg.RateSourceAPIKey, cfg.RateSourceTimeout), nil
	}
	static, err := ratesource.ParseStaticRates(cfg.StaticRates)
	if err != nil {
		return nil, err
	}
	return static, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
