// Package config binds environment variables (optionally from a .env file)
// into the application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/linksheet/internal/domain"
)

type EnvConfig struct {
	APP_PORT               string
	LOG_FILE_PATH          string
	MAX_FILE_SIZE_MB       int
	MAX_HEADER_SEARCH_ROWS int
	MAX_URL_LENGTH         int
	RATE_LIMIT_PER_SECOND  float64
}

var DefaultEnvConfig EnvConfig

// LoadEnvConfig populates DefaultEnvConfig from the environment. A missing
// .env file is not an error. MAX_URL_LENGTH is clamped to its hard ceiling
// here so the core never sees an out-of-range value.
func LoadEnvConfig() error {
	_ = godotenv.Load()

	cfg := EnvConfig{
		APP_PORT:      getEnv("APP_PORT", "8080"),
		LOG_FILE_PATH: getEnv("LOG_FILE_PATH", ""),
	}

	var err error
	if cfg.MAX_FILE_SIZE_MB, err = getEnvInt("MAX_FILE_SIZE_MB", domain.DefaultMaxFileSizeMB); err != nil {
		return err
	}
	if cfg.MAX_HEADER_SEARCH_ROWS, err = getEnvInt("MAX_HEADER_SEARCH_ROWS", domain.DefaultMaxHeaderSearchRows); err != nil {
		return err
	}
	if cfg.MAX_URL_LENGTH, err = getEnvInt("MAX_URL_LENGTH", domain.DefaultMaxURLLength); err != nil {
		return err
	}
	if cfg.MAX_URL_LENGTH > domain.MaxURLLengthCeiling {
		cfg.MAX_URL_LENGTH = domain.MaxURLLengthCeiling
	}
	if cfg.RATE_LIMIT_PER_SECOND, err = getEnvFloat("RATE_LIMIT_PER_SECOND", 10); err != nil {
		return err
	}

	if cfg.MAX_FILE_SIZE_MB <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE_MB must be positive, got %d", cfg.MAX_FILE_SIZE_MB)
	}
	if cfg.MAX_HEADER_SEARCH_ROWS <= 0 {
		return fmt.Errorf("MAX_HEADER_SEARCH_ROWS must be positive, got %d", cfg.MAX_HEADER_SEARCH_ROWS)
	}

	DefaultEnvConfig = cfg
	return nil
}

// ProcessingOptions derives the per-call limits handed to the core.
func (c EnvConfig) ProcessingOptions() domain.ProcessingOptions {
	return domain.ProcessingOptions{
		MaxFileSizeBytes:    int64(c.MAX_FILE_SIZE_MB) * 1024 * 1024,
		MaxHeaderSearchRows: c.MAX_HEADER_SEARCH_ROWS,
		MaxURLLength:        c.MAX_URL_LENGTH,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, v)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, v)
	}
	return f, nil
}
