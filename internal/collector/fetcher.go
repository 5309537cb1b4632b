package collector

import (
	"context"
	"errors"
	"fmt"

	"smascreen/internal/model"
)

var (
	// ErrDataUnavailable wraps every failure to obtain usable history for a symbol.
	ErrDataUnavailable = errors.New("data unavailable")
	// ErrSymbolNotFound marks an unknown or delisted symbol. It wraps ErrDataUnavailable.
	ErrSymbolNotFound = fmt.Errorf("%w: symbol not found", ErrDataUnavailable)
)

// Fetcher defines the interface for fetching daily price history.
type Fetcher interface {
	FetchHistory(ctx context.Context, symbol string, lookback model.Lookback) (*model.PriceSeries, error)
	Name() string
}

// unavailable wraps err as ErrDataUnavailable unless it already is.
func unavailable(provider, symbol string, err error) error {
	if errors.Is(err, ErrDataUnavailable) {
		return fmt.Errorf("%s %s: %w", provider, symbol, err)
	}
	return fmt.Errorf("%s %s: %w: %w", provider, symbol, ErrDataUnavailable, err)
}
