package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smascreen/internal/collector"
	"smascreen/internal/config"
	"smascreen/internal/metrics"
	"smascreen/internal/recorder"
	"smascreen/internal/scheduler"
	"smascreen/internal/screener"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Caller().Logger()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("load .env")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.DefaultContextLogger = &log.Logger
	log.Info().Str("config", cfgPath).Msg("smascreen starting")

	// Init fetcher
	fetcher := newFetcher(cfg)
	guarded := collector.NewGuardedFetcher(fetcher, collector.GuardSettings{
		RatePerSecond:   cfg.DataSource.RateLimit,
		Burst:           cfg.DataSource.RateBurst,
		BreakerFailures: cfg.DataSource.BreakerFailures,
		BreakerCooldown: cfg.DataSource.BreakerCooldown,
	})
	log.Info().Str("provider", fetcher.Name()).Str("breaker", guarded.State()).Msg("data source ready")

	// Init metrics and screener
	reg := metrics.NewRegistry()
	scr := screener.New(guarded,
		screener.WithPeriod(cfg.Screen.Period),
		screener.WithLookback(cfg.LookbackSpan()),
		screener.WithDedupe(cfg.Screen.DedupeSymbols),
		screener.WithObserver(reg),
	)

	// Init recorder
	var rec recorder.Recorder
	rec, err = recorder.NewFileRecorder(cfg.Output.Dir, scr.Period())
	if err != nil {
		log.Fatal().Err(err).Msg("init file recorder")
	}
	defer rec.Close()

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, scr, rec, cfg.Screen.Symbols, cfg.Screen.Tolerance).
		WithMetrics(reg, cfg.Output.MetricsTextfile)

	// One-shot mode
	if cfg.Schedule.Cron == "" {
		if _, err := sched.RunNow(); err != nil {
			log.Error().Err(err).Msg("screening run")
			rec.Close()
			os.Exit(1)
		}
		return
	}

	if err := sched.Register(cfg.Schedule.Cron); err != nil {
		log.Fatal().Err(err).Msg("register cron task")
	}
	sched.Start()
	defer sched.Stop()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, screening now")
		go func() {
			if _, err := sched.RunNow(); err != nil {
				log.Error().Err(err).Msg("screening run")
			}
		}()
	}

	log.Info().Str("cron", cfg.Schedule.Cron).Msg("smascreen is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping...")
	cancel()
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	ds := cfg.DataSource
	switch ds.Provider {
	case "alpaca":
		return collector.NewAlpacaFetcher(ds.APIKey, ds.APISecret, ds.Feed, ds.Adjusted)
	case "eodhd":
		opts := []collector.EODHDOption{collector.WithEODHDAdjusted(ds.Adjusted)}
		if ds.BaseURL != "" {
			opts = append(opts, collector.WithEODHDBaseURL(ds.BaseURL))
		}
		return collector.NewEODHDFetcher(ds.APIKey, cfg.Proxy, ds.Timeout, opts...)
	default:
		f := collector.NewYahooFetcher(cfg.Proxy, ds.Timeout, ds.Adjusted)
		if ds.BaseURL != "" {
			f.BaseURL = ds.BaseURL
		}
		return f
	}
}
