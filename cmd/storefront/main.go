package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/santhe/storefront/internal/api"
	"github.com/santhe/storefront/internal/config"
	"github.com/santhe/storefront/internal/service"
	"github.com/santhe/storefront/internal/session"
	"github.com/santhe/storefront/internal/upstream"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Upstream clients
	clients := upstream.NewClients(upstream.URLs{
		User:    cfg.Upstream.UserServiceURL,
		Product: cfg.Upstream.ProductServiceURL,
		Cart:    cfg.Upstream.CartServiceURL,
		Order:   cfg.Upstream.OrderServiceURL,
		Payment: cfg.Upstream.PaymentServiceURL,
	}, logger)

	// Session store: Redis when configured, process memory otherwise
	var store session.Store
	if cfg.Session.RedisAddr != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisStore, err := session.NewRedisStore(ctx, cfg.Session.RedisAddr, cfg.Session.RedisPassword, cfg.Session.RedisDB, cfg.Session.TTL)
		cancel()
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisStore.Close()
		store = redisStore
		logger.Info("using redis session store", zap.String("addr", cfg.Session.RedisAddr))
	} else {
		store = session.NewMemoryStore(cfg.Session.TTL)
		logger.Info("using in-memory session store")
	}

	sessions := session.NewManager(store, clients.Users, logger)

	// Services
	catalog := service.NewCatalogService(clients.Products, logger)
	cart := service.NewCartService(clients.Cart, catalog, logger)
	checkout := service.NewCheckoutService(clients.Orders, clients.Payments, clients.Cart, logger)

	router := api.NewRouter(cfg, &api.Services{
		Sessions: sessions,
		Catalog:  catalog,
		Cart:     cart,
		Checkout: checkout,
		Clients:  clients,
	}, logger)

	logger.Info("starting storefront",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
