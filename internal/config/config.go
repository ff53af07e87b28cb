package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// MaxBatchRecords caps how many records one upload may carry.
	MaxBatchRecords int

	// TablesPath optionally points at a YAML file overriding the built-in
	// field-mapping and validation tables.
	TablesPath string

	// Aviation Weather station-lookup configuration.
	AVWXEnabled   bool
	AVWXBaseURL   string
	AVWXTimeout   time.Duration
	AVWXCacheSize int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	avwxTimeout, err := parseDuration("AVWX_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	maxBatch, err := parsePositiveInt("MAX_BATCH_RECORDS", 1000)
	if err != nil {
		return nil, err
	}

	cacheSize, err := parsePositiveInt("AVWX_CACHE_SIZE", 1000)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		MaxBatchRecords: maxBatch,
		TablesPath:      os.Getenv("TABLES_PATH"),
		AVWXEnabled:     os.Getenv("AVWX_ENABLED") == "true",
		AVWXBaseURL:     envOrDefault("AVWX_BASE_URL", "https://aviationweather.gov"),
		AVWXTimeout:     avwxTimeout,
		AVWXCacheSize:   cacheSize,
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	if cfg.AVWXEnabled && cfg.AVWXBaseURL == "" {
		return nil, errors.New("AVWX_ENABLED is true but AVWX_BASE_URL is not set")
	}

	return cfg, nil
}

// envOrDefault returns the environment variable's value, or def when unset.
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDuration(key, def string) (time.Duration, error) {
	s := envOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}
