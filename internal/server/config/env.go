package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// godotenv never overrides variables already set in the process environment.
func defaultLoadDotEnv() error { return godotenv.Load() }

// loadDotEnv is a seam for tests.
var loadDotEnv = defaultLoadDotEnv

// parseEnv overlays DATABASE_URL, PORT, LOG_LEVEL and DISPLAY_TIMEZONE.
// A .env file in the working directory is read first when present.
func parseEnv(config *Config) error {
	if err := loadDotEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read .env: %w", err)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("PORT has invalid value %q", v)
		}
		config.ListenAddr = ":" + v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
	if v := os.Getenv("DISPLAY_TIMEZONE"); v != "" {
		config.TimeZone = v
	}
	return nil
}
