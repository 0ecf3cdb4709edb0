package config

import (
	"os"
	"strconv"
	"time"

	"stratcore/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Engine   EngineConfig
	Ops      OpsConfig
}

// DatabaseConfig holds database connection settings. The database is
// optional: with an empty URL every store degrades to a no-op and the core
// still serves requests.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// EngineConfig holds overridable engine defaults
type EngineConfig struct {
	SensitivitySamples  int     // trials per parameter
	SimilarityThreshold float64 // symmetry mining retention floor
	FeasibilityGate     float64 // transfer short-circuit threshold
	BaseSeed            int64   // default RNG seed when the caller sends none
}

// OpsConfig holds the diagnostics server settings
type OpsConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:             getEnvOrDefault("DATABASE_URL", ""),
			MaxOpenConns:    getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDurationOrDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Engine: EngineConfig{
			SensitivitySamples:  getEnvIntOrDefault("SENSITIVITY_SAMPLES", 10),
			SimilarityThreshold: getEnvFloatOrDefault("SIMILARITY_THRESHOLD", 0.6),
			FeasibilityGate:     getEnvFloatOrDefault("FEASIBILITY_GATE", 0.3),
			BaseSeed:            int64(getEnvIntOrDefault("BASE_SEED", 42)),
		},
		Ops: OpsConfig{
			Port:    getEnvOrDefault("OPS_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("OPS_ENABLED", true),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Engine.SensitivitySamples < 1 {
		return errors.ConfigInvalid("SENSITIVITY_SAMPLES must be at least 1")
	}
	if config.Engine.SimilarityThreshold < 0 || config.Engine.SimilarityThreshold > 1 {
		return errors.ConfigInvalid("SIMILARITY_THRESHOLD must be in [0,1]")
	}
	if config.Engine.FeasibilityGate < 0 || config.Engine.FeasibilityGate > 1 {
		return errors.ConfigInvalid("FEASIBILITY_GATE must be in [0,1]")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
