package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"smascreen/internal/model"
)

// alpacaBars is the part of *marketdata.Client the fetcher needs.
type alpacaBars interface {
	GetBars(symbol string, req marketdata.GetBarsRequest) ([]marketdata.Bar, error)
}

// AlpacaFetcher implements Fetcher using Alpaca market data daily bars.
type AlpacaFetcher struct {
	Client   alpacaBars
	Feed     string // "iex" or "sip"
	Adjusted bool
	Now      func() time.Time
}

// NewAlpacaFetcher creates a fetcher backed by the Alpaca market data API.
func NewAlpacaFetcher(apiKey, apiSecret, feed string, adjusted bool) *AlpacaFetcher {
	if feed == "" {
		feed = "iex"
	}
	return &AlpacaFetcher{
		Client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
		}),
		Feed:     feed,
		Adjusted: adjusted,
		Now:      time.Now,
	}
}

func (f *AlpacaFetcher) Name() string { return "alpaca" }

// FetchHistory downloads daily bars covering lookback, ending now.
func (f *AlpacaFetcher) FetchHistory(ctx context.Context, symbol string, lookback model.Lookback) (*model.PriceSeries, error) {
	if err := ctx.Err(); err != nil {
		return nil, unavailable(f.Name(), symbol, err)
	}
	now := time.Now()
	if f.Now != nil {
		now = f.Now()
	}
	adjustment := marketdata.Raw
	if f.Adjusted {
		adjustment = marketdata.All
	}
	bars, err := f.Client.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Adjustment: adjustment,
		Start:      lookback.Start(now),
		End:        now,
		Feed:       marketdata.Feed(f.Feed),
	})
	if err != nil {
		return nil, unavailable(f.Name(), symbol, fmt.Errorf("get bars: %w", err))
	}
	if len(bars) == 0 {
		return nil, unavailable(f.Name(), symbol, ErrSymbolNotFound)
	}
	return alpacaSeries(symbol, bars, now), nil
}

func alpacaSeries(symbol string, bars []marketdata.Bar, fetchedAt time.Time) *model.PriceSeries {
	points := make([]model.PricePoint, 0, len(bars))
	for _, b := range bars {
		points = append(points, model.PricePoint{Time: b.Timestamp, Close: b.Close})
	}
	sortPoints(points)
	return &model.PriceSeries{
		Symbol:    symbol,
		Source:    "alpaca",
		Points:    points,
		FetchedAt: fetchedAt,
	}
}
