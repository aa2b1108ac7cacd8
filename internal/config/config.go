// Package config reads runtime settings from NAFWIZ_* environment
// variables.
package config

import (
	"os"
	"strconv"
	"strings"
)

// LogFormat selects the slog handler used for use-case logging.
type LogFormat string

const (
	LogText LogFormat = "text"
	LogJSON LogFormat = "json"
)

// Config holds all runtime configuration.
type Config struct {
	// CatalogDir overrides the built-in catalogs; empty means built-in only.
	CatalogDir   string
	OutputDir    string
	Addr         string
	LogCalls     bool
	LogFormat    LogFormat
	HolidayYears int
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		OutputDir:    ".",
		Addr:         ":8080",
		LogFormat:    LogText,
		HolidayYears: 2,
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for unset or invalid values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("NAFWIZ_CATALOG_DIR"); v != "" {
		cfg.CatalogDir = v
	}
	if v := os.Getenv("NAFWIZ_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("NAFWIZ_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("NAFWIZ_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("NAFWIZ_LOG_FORMAT"); v != "" {
		switch f := LogFormat(strings.ToLower(v)); f {
		case LogText, LogJSON:
			cfg.LogFormat = f
		}
	}
	if v := os.Getenv("NAFWIZ_HOLIDAY_YEARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HolidayYears = n
		}
	}

	return cfg
}
