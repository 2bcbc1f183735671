package config

import (
	"fmt"
	"strconv"
)

// ValidateConfig checks that all required configuration values are present
func ValidateConfig(cfg *Config) error {
	if cfg.MongoURI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
		return fmt.Errorf("PORT must be numeric: %q", cfg.ServerPort)
	}
	// Stripe key is only needed by the payment-intent route; allow it to
	// be absent so the rest of the API can run in development.
	return nil
}
