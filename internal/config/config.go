// Package config loads the backend configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all process configuration. It is loaded once in main and
// passed to the components that need it, there is no ambient global state.
type Config struct {
	// Port the HTTP server listens on
	Port string

	// DBPath is the path of the SQLite database file
	DBPath string

	// UploadRoot is the writable directory receipt assets are stored under
	UploadRoot string

	// MaxUploadBytes is the maximum accepted receipt file size
	MaxUploadBytes int64

	// CORSAllowOrigins is a space separated list of allowed CORS origins.
	// CORS is disabled when empty.
	CORSAllowOrigins string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		DBPath:           getEnv("DB_PATH", "data/pocketledger.db"),
		UploadRoot:       getEnv("UPLOAD_ROOT", "data/uploads/receipts"),
		MaxUploadBytes:   getEnvInt64("MAX_UPLOAD_BYTES", 16<<20),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", ""),
	}
}

// Validate returns an error when the configuration is unusable.
func (c *Config) Validate() error {
	if port, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	} else if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("invalid upload limit %d: must be positive", c.MaxUploadBytes)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
