package main

import (
	"context"
	"fmt"
	"log"

	"github.com/luminaweb/backend/config"
	httpDelivery "github.com/luminaweb/backend/internal/delivery/http"
	"github.com/luminaweb/backend/internal/domain"
	"github.com/luminaweb/backend/internal/infrastructure/cms"
	"github.com/luminaweb/backend/internal/infrastructure/store"
	"github.com/luminaweb/backend/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := buildLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting Lumina backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("store", cfg.Store.Type))

	ctx := context.Background()

	// Initialize infrastructure dependencies
	stateStore, err := buildStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize state store", zap.Error(err))
	}

	cmsClient := cms.NewClient(cfg.CMS.APIKey, cfg.CMS.BaseURL, cfg.RateLimit.CMS, logger)
	cmsClient.SetTimeout(cfg.CMS.Timeout)
	logger.Info("CMS client configured", zap.String("base_url", cfg.CMS.BaseURL))

	// Initialize usecase layer
	currencyService := usecase.NewCurrencyService(ctx, stateStore, logger)
	cartService := usecase.NewCartService(ctx, stateStore, logger)
	catalogService := usecase.NewCatalogService(cmsClient, currencyService, cfg.CMS.DefaultLocale, logger)

	// Populate the catalog; a CMS outage degrades to the bundled fallback
	if state, err := catalogService.Refresh(ctx, cfg.CMS.DefaultLocale); err == nil {
		logger.Info("initial catalog loaded",
			zap.Int("count", len(state.Products)),
			zap.Bool("degraded", state.Degraded))
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, cartService, currencyService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

// buildLogger returns a development or production zap logger.
func buildLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// buildStore creates the configured state store backend.
func buildStore(ctx context.Context, cfg *config.Config) (domain.StateStore, error) {
	switch cfg.Store.Type {
	case "file":
		return store.NewFileStore(cfg.Store.Path)
	case "redis":
		redisStore, err := store.NewRedisStore(cfg.Store.RedisURL, "lumina:")
		if err != nil {
			return nil, err
		}
		if err := redisStore.Ping(ctx); err != nil {
			return nil, err
		}
		return redisStore, nil
	default:
		return store.NewMemoryStore(), nil
	}
}
