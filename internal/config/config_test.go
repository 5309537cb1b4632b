package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smascreen/internal/model"
)

var envKeys = []string{
	"SCREEN_SYMBOLS", "SCREEN_TOLERANCE", "DATA_PROVIDER", "ALPACA_API_KEY", "ALPACA_SECRET_KEY",
	"EODHD_API_KEY", "HTTPS_PROXY", "OUTPUT_DIR", "METRICS_TEXTFILE", "CRON_SCHEDULE", "LOG_LEVEL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultSymbols, cfg.Screen.Symbols)
	assert.Equal(t, 0.02, cfg.Screen.Tolerance)
	assert.Equal(t, 325, cfg.Screen.Period)
	assert.Equal(t, "2y", cfg.Screen.Lookback)
	assert.Equal(t, model.DefaultLookback, cfg.LookbackSpan())
	assert.False(t, cfg.Screen.DedupeSymbols)
	assert.Equal(t, "yahoo", cfg.DataSource.Provider)
	assert.True(t, cfg.DataSource.Adjusted)
	assert.Equal(t, 30*time.Second, cfg.DataSource.Timeout)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Schedule.Cron)
}

func TestDefaultSymbols(t *testing.T) {
	assert.Len(t, DefaultSymbols, 542)
	assert.Equal(t, "SPY", DefaultSymbols[0])
	assert.Equal(t, "PA=F", DefaultSymbols[len(DefaultSymbols)-1])
	assert.Contains(t, DefaultSymbols, "BRK-B")
	assert.Contains(t, DefaultSymbols, "TD.TO")

	seen := map[string]int{}
	for _, s := range DefaultSymbols {
		seen[s]++
	}
	assert.Equal(t, 2, seen["MARA"])
	assert.Equal(t, 2, seen["TD.TO"])
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
screen:
  symbols: [AAPL, MSFT]
  tolerance: 0
  lookback: 18mo
  dedupe_symbols: true
data_source:
  provider: eodhd
  api_key: secret
  adjusted: false
  timeout: 5s
  breaker_cooldown: 2m
output:
  dir: out
  metrics_textfile: out/metrics.prom
schedule:
  cron: "0 30 17 * * 1-5"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"AAPL", "MSFT"}, cfg.Screen.Symbols)
	assert.Equal(t, 0.0, cfg.Screen.Tolerance)
	assert.Equal(t, model.Lookback{Months: 18}, cfg.LookbackSpan())
	assert.True(t, cfg.Screen.DedupeSymbols)
	assert.Equal(t, 325, cfg.Screen.Period)
	assert.Equal(t, "eodhd", cfg.DataSource.Provider)
	assert.False(t, cfg.DataSource.Adjusted)
	assert.Equal(t, 5*time.Second, cfg.DataSource.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.DataSource.BreakerCooldown)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "out/metrics.prom", cfg.Output.MetricsTextfile)
	assert.Equal(t, "0 30 17 * * 1-5", cfg.Schedule.Cron)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "screen:\n  symbols: [AAPL]\n")
	t.Setenv("SCREEN_SYMBOLS", " SPY, ES=F ,,TD.TO ")
	t.Setenv("SCREEN_TOLERANCE", "0.05")
	t.Setenv("DATA_PROVIDER", "Alpaca")
	t.Setenv("ALPACA_API_KEY", "key")
	t.Setenv("ALPACA_SECRET_KEY", "secret")
	t.Setenv("OUTPUT_DIR", "/tmp/screens")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("HTTPS_PROXY", "http://proxy:8080")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"SPY", "ES=F", "TD.TO"}, cfg.Screen.Symbols)
	assert.Equal(t, 0.05, cfg.Screen.Tolerance)
	assert.Equal(t, "alpaca", cfg.DataSource.Provider)
	assert.Equal(t, "key", cfg.DataSource.APIKey)
	assert.Equal(t, "secret", cfg.DataSource.APISecret)
	assert.Equal(t, "/tmp/screens", cfg.Output.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "http://proxy:8080", cfg.Proxy)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "screen: [not, a, map"))
	assert.Error(t, err)

	t.Setenv("SCREEN_TOLERANCE", "two percent")
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative tolerance", func(c *Config) { c.Screen.Tolerance = -0.01 }},
		{"no symbols", func(c *Config) { c.Screen.Symbols = nil }},
		{"blank symbol", func(c *Config) { c.Screen.Symbols = []string{"AAPL", ""} }},
		{"zero period", func(c *Config) { c.Screen.Period = 0 }},
		{"bad lookback", func(c *Config) { c.Screen.Lookback = "2 weeks" }},
		{"unknown provider", func(c *Config) { c.DataSource.Provider = "stooq" }},
		{"alpaca without secret", func(c *Config) {
			c.DataSource.Provider = "alpaca"
			c.DataSource.APIKey = "key"
		}},
		{"eodhd without key", func(c *Config) { c.DataSource.Provider = "eodhd" }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"zero timeout", func(c *Config) { c.DataSource.Timeout = 0 }},
		{"bad base url", func(c *Config) { c.DataSource.BaseURL = "not a url" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, Default().Validate())
}
