package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"smascreen/internal/calculator"
	"smascreen/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Screen struct {
		Symbols       []string `yaml:"symbols" validate:"required,min=1,dive,required"`
		Tolerance     float64  `yaml:"tolerance" validate:"gte=0"`
		Period        int      `yaml:"period" validate:"gte=1"`
		Lookback      string   `yaml:"lookback" validate:"required"`
		DedupeSymbols bool     `yaml:"dedupe_symbols"`
	} `yaml:"screen"`
	DataSource struct {
		Provider        string        `yaml:"provider" validate:"oneof=yahoo alpaca eodhd"`
		BaseURL         string        `yaml:"base_url" validate:"omitempty,url"`
		APIKey          string        `yaml:"api_key"`
		APISecret       string        `yaml:"api_secret"`
		Feed            string        `yaml:"feed" validate:"omitempty,oneof=iex sip otc delayed_sip"`
		Adjusted        bool          `yaml:"adjusted"`
		Timeout         time.Duration `yaml:"timeout" validate:"gt=0"`
		RateLimit       float64       `yaml:"rate_limit" validate:"gte=0"`
		RateBurst       int           `yaml:"rate_burst" validate:"gte=0"`
		BreakerFailures uint32        `yaml:"breaker_failures"`
		BreakerCooldown time.Duration `yaml:"breaker_cooldown" validate:"gte=0"`
	} `yaml:"data_source"`
	Output struct {
		Dir             string `yaml:"dir"`
		MetricsTextfile string `yaml:"metrics_textfile"`
	} `yaml:"output"`
	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`
	Log struct {
		Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg := &Config{}
	cfg.Screen.Symbols = append([]string(nil), DefaultSymbols...)
	cfg.Screen.Tolerance = 0.02
	cfg.Screen.Period = calculator.DefaultSMAPeriod
	cfg.Screen.Lookback = model.DefaultLookback.String()
	cfg.DataSource.Provider = "yahoo"
	cfg.DataSource.Adjusted = true
	cfg.DataSource.Timeout = 30 * time.Second
	cfg.DataSource.RateLimit = 2
	cfg.DataSource.RateBurst = 1
	cfg.DataSource.BreakerFailures = 10
	cfg.DataSource.BreakerCooldown = 60 * time.Second
	cfg.Output.Dir = "."
	cfg.Log.Level = "info"
	return cfg
}

// Load reads config from a YAML file over the defaults, then applies
// environment variable overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SCREEN_SYMBOLS"); v != "" {
		cfg.Screen.Symbols = splitSymbols(v)
	}
	if v := os.Getenv("SCREEN_TOLERANCE"); v != "" {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("SCREEN_TOLERANCE: %w", err)
		}
		cfg.Screen.Tolerance = tol
	}
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = strings.ToLower(v)
	}
	switch cfg.DataSource.Provider {
	case "alpaca":
		if v := os.Getenv("ALPACA_API_KEY"); v != "" {
			cfg.DataSource.APIKey = v
		}
		if v := os.Getenv("ALPACA_SECRET_KEY"); v != "" {
			cfg.DataSource.APISecret = v
		}
	case "eodhd":
		if v := os.Getenv("EODHD_API_KEY"); v != "" {
			cfg.DataSource.APIKey = v
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("METRICS_TEXTFILE"); v != "" {
		cfg.Output.MetricsTextfile = v
	}
	if v := os.Getenv("CRON_SCHEDULE"); v != "" {
		cfg.Schedule.Cron = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}

	// Defaults for keys present but blank in the file
	if cfg.Screen.Lookback == "" {
		cfg.Screen.Lookback = model.DefaultLookback.String()
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "."
	}

	return cfg, nil
}

// Validate checks field constraints and provider credentials.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if math.IsInf(c.Screen.Tolerance, 0) {
		return fmt.Errorf("screen.tolerance must be finite")
	}
	if _, err := model.ParseLookback(c.Screen.Lookback); err != nil {
		return fmt.Errorf("screen.lookback: %w", err)
	}
	switch c.DataSource.Provider {
	case "alpaca":
		if c.DataSource.APIKey == "" || c.DataSource.APISecret == "" {
			return fmt.Errorf("data_source.api_key and data_source.api_secret are required for alpaca")
		}
	case "eodhd":
		if c.DataSource.APIKey == "" {
			return fmt.Errorf("data_source.api_key is required for eodhd")
		}
	}
	return nil
}

// LookbackSpan returns the parsed lookback, falling back to the default.
func (c *Config) LookbackSpan() model.Lookback {
	l, err := model.ParseLookback(c.Screen.Lookback)
	if err != nil {
		return model.DefaultLookback
	}
	return l
}

func splitSymbols(v string) []string {
	parts := strings.Split(v, ",")
	symbols := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			symbols = append(symbols, p)
		}
	}
	return symbols
}
