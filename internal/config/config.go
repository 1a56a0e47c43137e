package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Upstream    UpstreamConfig
	Session     SessionConfig
}

// UpstreamConfig holds the base URLs of the backend microservices the
// storefront orchestrates. Defaults match the docker-compose service names.
type UpstreamConfig struct {
	UserServiceURL    string
	ProductServiceURL string
	CartServiceURL    string
	OrderServiceURL   string
	PaymentServiceURL string
}

type SessionConfig struct {
	// RedisAddr empty means sessions are kept in process memory.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SESSION_TTL", "24h")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	ttl, err := time.ParseDuration(getEnvOrViper("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "3000"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Upstream: UpstreamConfig{
			UserServiceURL:    getEnvOrViper("USER_SERVICE_URL", "http://user-service:8000"),
			ProductServiceURL: getEnvOrViper("PRODUCT_SERVICE_URL", "http://product-catalog-service:8000"),
			CartServiceURL:    getEnvOrViper("CART_SERVICE_URL", "http://cart-management-service:8000"),
			OrderServiceURL:   getEnvOrViper("ORDER_SERVICE_URL", "http://order-management-service:8000"),
			PaymentServiceURL: getEnvOrViper("PAYMENT_SERVICE_URL", "http://payment-service:8000"),
		},
		Session: SessionConfig{
			RedisAddr:     getEnvOrViper("REDIS_ADDR", ""),
			RedisPassword: getEnvOrViper("REDIS_PASSWORD", ""),
			RedisDB:       viper.GetInt("REDIS_DB"),
			TTL:           ttl,
		},
	}

	// Validate required fields
	if cfg.Upstream.UserServiceURL == "" {
		return nil, fmt.Errorf("USER_SERVICE_URL is required")
	}
	if cfg.Upstream.ProductServiceURL == "" {
		return nil, fmt.Errorf("PRODUCT_SERVICE_URL is required")
	}
	if cfg.Upstream.CartServiceURL == "" {
		return nil, fmt.Errorf("CART_SERVICE_URL is required")
	}
	if cfg.Upstream.OrderServiceURL == "" {
		return nil, fmt.Errorf("ORDER_SERVICE_URL is required")
	}
	if cfg.Upstream.PaymentServiceURL == "" {
		return nil, fmt.Errorf("PAYMENT_SERVICE_URL is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
