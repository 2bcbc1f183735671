package config

import (
	"fmt"
	"os"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// MongoDB configuration
	MongoURI string
	DBName   string

	// JWT configuration
	JWTSecret string

	// Stripe configuration
	StripeSecretKey string
}

// LoadConfig creates a new Config instance from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:      getEnv("PORT", "5000"),
		MongoURI:        os.Getenv("MONGODB_URI"),
		DBName:          getEnv("DB_NAME", "hostelDB"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
