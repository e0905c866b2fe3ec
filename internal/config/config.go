package config

import (
	"os"
	"strconv"

	dasuerr "github.com/akashic-script/dasu-rules/internal/errors"
)

// Config holds all configuration for the preview tooling
type Config struct {
	Preview PreviewConfig
}

// PreviewConfig holds preview-specific configuration
type PreviewConfig struct {
	// SuccessThreshold is the minimum d6 face counting as a check success
	SuccessThreshold int

	// Profile is the default archetype profile applied to targets
	Profile string

	// Concurrent selects the concurrent resolve path
	Concurrent bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Preview: PreviewConfig{
			SuccessThreshold: getEnvAsIntOrDefault("DASU_SUCCESS_THRESHOLD", 4),
			Profile:          getEnvOrDefault("DASU_PROFILE", "pyre"),
			Concurrent:       getEnvAsBoolOrDefault("DASU_CONCURRENT", false),
		},
	}

	if cfg.Preview.SuccessThreshold < 1 || cfg.Preview.SuccessThreshold > 6 {
		return nil, dasuerr.InvalidArgumentf("DASU_SUCCESS_THRESHOLD must be in [1,6], got %d", cfg.Preview.SuccessThreshold)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
