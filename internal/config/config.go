package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	// Server
	Port            string        `toml:"port"`
	Environment     string        `toml:"environment"`
	ShutdownTimeout time.Duration `toml:"-"`

	// Catalog storage
	CatalogBackend string `toml:"catalog_backend"`
	DatabaseURL    string `toml:"database_url"`

	// Admin bearer tokens for catalog sync. Empty disables the route.
	AdminJWTSecret string `toml:"admin_jwt_secret"`

	// Live assistant throttling, per connection
	LiveUpdateRate  float64 `toml:"live_update_rate"`
	LiveUpdateBurst int     `toml:"live_update_burst"`

	ShutdownTimeoutSeconds int `toml:"shutdown_timeout_seconds"`
}

// Default returns the built-in settings used when neither a file nor the
// environment provides a value
func Default() *Config {
	return &Config{
		Port:                   "8080",
		Environment:            "development",
		CatalogBackend:         BackendMemory,
		LiveUpdateRate:         5,
		LiveUpdateBurst:        10,
		ShutdownTimeoutSeconds: 30,
	}
}

// Load builds the configuration from defaults, then the TOML file named by
// CONFIG_FILE (if any), then environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if path := getEnv("CONFIG_FILE", ""); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.CatalogBackend = getEnv("CATALOG_BACKEND", cfg.CatalogBackend)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.AdminJWTSecret = getEnv("ADMIN_JWT_SECRET", cfg.AdminJWTSecret)
	cfg.LiveUpdateRate = getEnvFloat("LIVE_UPDATE_RATE", cfg.LiveUpdateRate)
	cfg.LiveUpdateBurst = getEnvInt("LIVE_UPDATE_BURST", cfg.LiveUpdateBurst)
	cfg.ShutdownTimeoutSeconds = getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", cfg.ShutdownTimeoutSeconds)
	cfg.ShutdownTimeout = time.Duration(cfg.ShutdownTimeoutSeconds) * time.Second

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.CatalogBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres catalog backend")
		}
	default:
		return fmt.Errorf("unknown catalog backend %q", c.CatalogBackend)
	}

	if c.LiveUpdateRate <= 0 {
		return fmt.Errorf("live update rate must be positive, got %v", c.LiveUpdateRate)
	}
	if c.LiveUpdateBurst < 1 {
		return fmt.Errorf("live update burst must be at least 1, got %d", c.LiveUpdateBurst)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
