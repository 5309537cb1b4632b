package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"smascreen/internal/model"
)

// GuardSettings configures GuardedFetcher. Zero values disable the matching guard.
type GuardSettings struct {
	RatePerSecond   float64
	Burst           int
	BreakerFailures uint32        // consecutive provider failures that open the breaker
	BreakerCooldown time.Duration // how long the breaker stays open
}

// GuardedFetcher throttles requests to the wrapped provider and stops
// calling it while it is failing repeatedly. Requests rejected by either
// guard fail with ErrDataUnavailable like any other provider failure.
type GuardedFetcher struct {
	inner   Fetcher
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

// NewGuardedFetcher wraps inner with a rate limiter and a circuit breaker.
func NewGuardedFetcher(inner Fetcher, s GuardSettings) *GuardedFetcher {
	g := &GuardedFetcher{inner: inner}
	if s.RatePerSecond > 0 {
		burst := s.Burst
		if burst <= 0 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(s.RatePerSecond), burst)
	}
	if s.BreakerFailures > 0 {
		failures := s.BreakerFailures
		g.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    inner.Name(),
			Timeout: s.BreakerCooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			// An unknown symbol says nothing about the provider's health.
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, ErrSymbolNotFound)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("provider", name).Str("from", from.String()).Str("to", to.String()).
					Msg("provider circuit breaker state changed")
			},
		})
	}
	return g
}

func (g *GuardedFetcher) Name() string { return g.inner.Name() }

// State returns the breaker state, or "disabled".
func (g *GuardedFetcher) State() string {
	if g.breaker == nil {
		return "disabled"
	}
	return g.breaker.State().String()
}

func (g *GuardedFetcher) FetchHistory(ctx context.Context, symbol string, lookback model.Lookback) (*model.PriceSeries, error) {
	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, unavailable(g.Name(), symbol, fmt.Errorf("rate limiter: %w", err))
		}
	}
	if g.breaker == nil {
		return g.inner.FetchHistory(ctx, symbol, lookback)
	}
	out, err := g.breaker.Execute(func() (interface{}, error) {
		return g.inner.FetchHistory(ctx, symbol, lookback)
	})
	if err != nil {
		if errors.Is(err, ErrDataUnavailable) {
			return nil, err
		}
		return nil, unavailable(g.Name(), symbol, fmt.Errorf("circuit breaker: %w", err))
	}
	return out.(*model.PriceSeries), nil
}
