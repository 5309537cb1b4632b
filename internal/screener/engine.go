package screener

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"smascreen/internal/calculator"
	"smascreen/internal/collector"
	"smascreen/internal/model"
)

var (
	// ErrInvalidTolerance is returned by Screen for a negative or non-finite tolerance.
	ErrInvalidTolerance = errors.New("tolerance must be a finite fraction >= 0")
	// ErrEvaluationPanic marks a symbol whose evaluation panicked.
	ErrEvaluationPanic = errors.New("evaluation panicked")
)

// Observer receives every per-symbol evaluation as it completes.
type Observer interface {
	ObserveEvaluation(ev model.Evaluation)
}

// Screener classifies symbols by how close their latest close is to their
// trailing simple moving average.
type Screener struct {
	fetcher  collector.Fetcher
	period   int
	lookback model.Lookback
	dedupe   bool
	observer Observer
	now      func() time.Time
}

// Option configures a Screener.
type Option func(*Screener)

// WithPeriod sets the moving-average window.
func WithPeriod(n int) Option {
	return func(s *Screener) {
		if n > 0 {
			s.period = n
		}
	}
}

// WithLookback sets the history span requested per symbol.
func WithLookback(l model.Lookback) Option {
	return func(s *Screener) {
		if !l.IsZero() {
			s.lookback = l
		}
	}
}

// WithDedupe evaluates only the first occurrence of a repeated symbol.
func WithDedupe(dedupe bool) Option {
	return func(s *Screener) { s.dedupe = dedupe }
}

// WithObserver registers an observer for per-symbol evaluations.
func WithObserver(o Observer) Option {
	return func(s *Screener) { s.observer = o }
}

// WithClock overrides the clock used for run timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Screener) { s.now = now }
}

// New creates a Screener reading history from fetcher.
func New(fetcher collector.Fetcher, opts ...Option) *Screener {
	s := &Screener{
		fetcher:  fetcher,
		period:   calculator.DefaultSMAPeriod,
		lookback: model.DefaultLookback,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Period returns the moving-average window in use.
func (s *Screener) Period() int { return s.period }

// Screen evaluates symbols one at a time, in order, and collects those whose
// latest close lies within tolerance of the latest moving average. Symbols
// that cannot be evaluated are skipped; they never stop the run.
func (s *Screener) Screen(ctx context.Context, symbols []string, tolerance float64) (*model.ScreeningResult, error) {
	if tolerance < 0 || math.IsNaN(tolerance) || math.IsInf(tolerance, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTolerance, tolerance)
	}
	logger := zerolog.Ctx(ctx)

	res := &model.ScreeningResult{
		Symbols:     make([]string, 0, len(symbols)),
		Evaluations: make([]model.Evaluation, 0, len(symbols)),
		Tolerance:   tolerance,
		Period:      s.period,
		Lookback:    s.lookback,
		StartedAt:   s.now(),
	}

	seen := make(map[string]bool, len(symbols))
	for _, symbol := range symbols {
		if s.dedupe {
			if seen[symbol] {
				logger.Debug().Str("symbol", symbol).Msg("duplicate symbol ignored")
				continue
			}
			seen[symbol] = true
		}

		ev := s.Evaluate(ctx, symbol, tolerance)
		res.Evaluations = append(res.Evaluations, ev)
		if ev.Passed() {
			res.Symbols = append(res.Symbols, symbol)
		}
		if s.observer != nil {
			s.observer.ObserveEvaluation(ev)
		}

		if ev.Outcome.Skipped() {
			logger.Debug().Str("symbol", symbol).Str("outcome", string(ev.Outcome)).Err(ev.Err).Msg("symbol skipped")
		} else {
			logger.Debug().Str("symbol", symbol).Str("outcome", string(ev.Outcome)).
				Float64("close", ev.Close).Float64("sma", ev.SMA).Float64("deviation", ev.Deviation).
				Msg("symbol evaluated")
		}
	}

	res.FinishedAt = s.now()
	return res, nil
}

// Evaluate screens a single symbol. It never panics and never returns an
// error: every failure is folded into the evaluation's outcome.
func (s *Screener) Evaluate(ctx context.Context, symbol string, tolerance float64) (ev model.Evaluation) {
	ev = model.Evaluation{Symbol: symbol}
	defer func() {
		if r := recover(); r != nil {
			ev = model.Evaluation{
				Symbol:  symbol,
				Outcome: model.OutcomeFailed,
				Err:     fmt.Errorf("%w: %v", ErrEvaluationPanic, r),
			}
		}
	}()

	series, err := s.fetcher.FetchHistory(ctx, symbol, s.lookback)
	if err != nil {
		ev.Outcome = model.OutcomeUnavailable
		ev.Err = err
		return ev
	}
	if series == nil {
		ev.Outcome = model.OutcomeUnavailable
		ev.Err = fmt.Errorf("%s: %w: empty response", symbol, collector.ErrDataUnavailable)
		return ev
	}
	ev.Points = series.Len()

	sma, err := calculator.NewSMASeries(series.Closes(), s.period)
	if err != nil {
		ev.Outcome = model.OutcomeFailed
		ev.Err = err
		return ev
	}
	smaLatest, err := sma.Latest()
	if err != nil {
		ev.Outcome = model.OutcomeInsufficient
		ev.Err = fmt.Errorf("%d points for a %d-period average: %w", ev.Points, s.period, err)
		return ev
	}
	last, _ := series.Latest()
	ev.Close = last.Close
	ev.SMA = smaLatest

	dev, err := calculator.CalculateDeviation(ev.Close, ev.SMA)
	if err != nil {
		ev.Outcome = model.OutcomeDegenerate
		ev.Err = err
		return ev
	}
	ev.Deviation = dev

	if calculator.WithinTolerance(dev, tolerance) {
		ev.Outcome = model.OutcomeMatched
	} else {
		ev.Outcome = model.OutcomeRejected
	}
	return ev
}
