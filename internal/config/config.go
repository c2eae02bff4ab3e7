package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the wallet client
type Config struct {
	// Wallet API configuration
	APIBaseURL string
	APIToken   string
	APITimeout time.Duration

	// Return marker the hosted checkout is expected to redirect to
	CheckoutReturnMarker string

	// Audit export (operator tooling)
	ElasticURL      string
	ElasticUsername string
	ElasticPassword string
	ElasticIndex    string

	// Environment
	Environment string // "development" or "production"
	LogLevel    string
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	timeout := 10 * time.Second
	if raw := os.Getenv("WALLET_API_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid WALLET_API_TIMEOUT: %w", err)
		}
		timeout = parsed
	}

	cfg := &Config{
		APIBaseURL:           strings.TrimRight(os.Getenv("WALLET_API_URL"), "/"),
		APIToken:             os.Getenv("WALLET_API_TOKEN"),
		APITimeout:           timeout,
		CheckoutReturnMarker: getEnvWithDefault("CHECKOUT_RETURN_MARKER", "payment/return"),
		ElasticURL:           getEnvWithDefault("ELASTIC_URL", "http://localhost:9200"),
		ElasticUsername:      os.Getenv("ELASTIC_USERNAME"),
		ElasticPassword:      os.Getenv("ELASTIC_PASSWORD"),
		ElasticIndex:         getEnvWithDefault("ELASTIC_INDEX", "wallet-transactions"),
		Environment:          getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:             getEnvWithDefault("LOG_LEVEL", "INFO"),
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks if all required configuration is present
func (c *Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("WALLET_API_URL is required")
	}
	if c.APIToken == "" {
		return fmt.Errorf("WALLET_API_TOKEN is required")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns the environment variable value or a default
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
