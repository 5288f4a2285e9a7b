// Package cli provides common CLI initialization utilities shared by the
// command entry points: .env loading, configuration and logger setup.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"payfeed/internal/config"
	"payfeed/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fallback := log.New(log.DefaultConfig()).WithComponent(log.ComponentConfig)
		fallback.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// SetupLogger initializes structured logging at the configured level and
// sets it as the default logger.
func SetupLogger(cfg *config.Config) *log.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		// Validate has already rejected bad levels; keep a safe default.
		level = log.DefaultConfig().Level
	}
	logger := log.New(log.Config{Level: level, Component: log.ComponentApp})
	log.SetDefault(logger)
	return logger
}
