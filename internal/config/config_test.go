package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, LogText, cfg.LogFormat)
	assert.Equal(t, 2, cfg.HolidayYears)
	assert.Empty(t, cfg.CatalogDir)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("NAFWIZ_CATALOG_DIR", "/etc/nafwiz")
	t.Setenv("NAFWIZ_OUTPUT_DIR", "/tmp/out")
	t.Setenv("NAFWIZ_ADDR", "127.0.0.1:9000")
	t.Setenv("NAFWIZ_LOG_CALLS", "true")
	t.Setenv("NAFWIZ_LOG_FORMAT", "JSON")
	t.Setenv("NAFWIZ_HOLIDAY_YEARS", "4")

	cfg := LoadConfig()

	assert.Equal(t, "/etc/nafwiz", cfg.CatalogDir)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.True(t, cfg.LogCalls)
	assert.Equal(t, LogJSON, cfg.LogFormat)
	assert.Equal(t, 4, cfg.HolidayYears)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("NAFWIZ_LOG_FORMAT", "xml")
	t.Setenv("NAFWIZ_HOLIDAY_YEARS", "0")
	t.Setenv("NAFWIZ_LOG_CALLS", "maybe")

	cfg := LoadConfig()

	assert.Equal(t, LogText, cfg.LogFormat)
	assert.Equal(t, 2, cfg.HolidayYears)
	assert.False(t, cfg.LogCalls)
}
