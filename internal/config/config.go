// Package config provides configuration loading and validation for the
// portfolio API.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the runtime configuration. Values come from the environment
// (a .env file is loaded by the CLI before this runs); every field has a
// working default for local development.
type Config struct {
	Port     int    // HTTP listen port
	MongoURI string // MongoDB connection string
	MongoDB  string // Database name
	LogLevel string // zap level: debug, info, warn, error
	LogPath  string // Log file path; empty disables file output
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		Port:     envInt("PORT", 8080),
		MongoURI: envString("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:  envString("MONGODB_DB", "portfolio"),
		LogLevel: envString("LOG_LEVEL", "info"),
		LogPath:  os.Getenv("LOG_PATH"),
	}
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: invalid port %d", c.Port)
	}
	if c.MongoURI == "" {
		return fmt.Errorf("config error: MONGODB_URI must not be empty")
	}
	if c.MongoDB == "" {
		return fmt.Errorf("config error: MONGODB_DB must not be empty")
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
