package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the analytics tooling. Everything
// comes from environment variables with sensible defaults, so a bare
// invocation works without any .env file.
type Config struct {
	LogLevel string // LOG_LEVEL: debug, info, warn, error
	LogFile  string // LOG_FILE: rotated JSON log destination

	// Timezone optionally normalizes hour/day bucketing into the
	// account's zone (ANALYTICS_TIMEZONE, IANA name like "Asia/Tokyo").
	// Empty means each timestamp's own UTC offset is used as-is.
	Timezone string
}

// Load reads configuration from the environment. A .env file is loaded
// first if present; missing files are fine.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", "threadpulse.log"),
		Timezone: os.Getenv("ANALYTICS_TIMEZONE"),
	}
}

// Location resolves the configured timezone. Returns nil when no timezone
// is configured, which tells the engine to honor each timestamp's offset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid ANALYTICS_TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
