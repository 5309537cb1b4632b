package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"smascreen/internal/metrics"
	"smascreen/internal/model"
	"smascreen/internal/recorder"
	"smascreen/internal/screener"
)

// Scheduler runs screening jobs on a cron schedule or on demand.
type Scheduler struct {
	Cron        *cron.Cron
	Screener    *screener.Screener
	Recorder    recorder.Recorder
	Metrics     *metrics.Registry // optional
	MetricsPath string
	Symbols     []string
	Tolerance   float64
	Ctx         context.Context
	Now         func() time.Time
}

// NewScheduler creates a new Scheduler. Overlapping runs are skipped.
func NewScheduler(ctx context.Context, scr *screener.Screener, rec recorder.Recorder, symbols []string, tolerance float64) *Scheduler {
	logger := cronLogger{}
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		Screener:  scr,
		Recorder:  rec,
		Symbols:   symbols,
		Tolerance: tolerance,
		Ctx:       ctx,
		Now:       time.Now,
	}
}

// WithMetrics attaches a metrics registry written to path after every run.
func (s *Scheduler) WithMetrics(reg *metrics.Registry, path string) *Scheduler {
	s.Metrics = reg
	s.MetricsPath = path
	return s
}

// Register adds the screening job under a six-field cron spec (seconds first).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.screenTask); err != nil {
		return fmt.Errorf("register screening task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Int("jobs", len(s.Cron.Entries())).Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes one screening run immediately (one-shot mode / RUN_ON_START).
// The result is returned even when recording it failed.
func (s *Scheduler) RunNow() (*model.ScreeningResult, error) {
	runID := uuid.NewString()
	logger := log.With().Str("run_id", runID).Logger()
	ctx := logger.WithContext(s.Ctx)

	logger.Info().Int("symbols", len(s.Symbols)).Float64("tolerance", s.Tolerance).
		Int("period", s.Screener.Period()).Msg("screening run started")

	res, err := s.Screener.Screen(ctx, s.Symbols, s.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("screen: %w", err)
	}

	logger.Info().
		Int("matches", len(res.Symbols)).
		Int("rejected", res.Count(model.OutcomeRejected)).
		Int("unavailable", res.Count(model.OutcomeUnavailable)).
		Int("insufficient", res.Count(model.OutcomeInsufficient)).
		Int("degenerate", res.Count(model.OutcomeDegenerate)).
		Int("failed", res.Count(model.OutcomeFailed)).
		Dur("elapsed", res.FinishedAt.Sub(res.StartedAt)).
		Msg("screening run finished")
	logger.Debug().Msg(recorder.FormatSummary(res))

	if s.Metrics != nil {
		s.Metrics.ObserveRun(res)
		if err := s.Metrics.WriteTextfile(s.MetricsPath); err != nil {
			logger.Error().Err(err).Msg("write metrics")
		}
	}

	if err := s.Recorder.Record(s.Now(), res.Symbols); err != nil {
		logger.Error().Err(err).Msg("record result")
		return res, fmt.Errorf("record result: %w", err)
	}
	return res, nil
}

func (s *Scheduler) screenTask() {
	if _, err := s.RunNow(); err != nil {
		log.Error().Err(err).Msg("scheduled screening run")
	}
}

// cronLogger routes cron's own messages through zerolog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	event(log.Debug(), keysAndValues).Msg("cron: " + msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	event(log.Error().Err(err), keysAndValues).Msg("cron: " + msg)
}

func event(e *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	if len(keysAndValues) > 0 {
		e = e.Fields(keysAndValues)
	}
	return e
}
