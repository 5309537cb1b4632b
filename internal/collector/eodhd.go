package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"smascreen/internal/model"
)

// DefaultEODHDBaseURL is the base URL for the EODHD API.
const DefaultEODHDBaseURL = "https://eodhd.com/api"

// EODHDFetcher implements Fetcher using the EODHD end-of-day API.
type EODHDFetcher struct {
	baseURL         string
	apiKey          string
	defaultExchange string
	adjusted        bool
	client          *http.Client
	now             func() time.Time
}

// EODHDOption configures an EODHDFetcher.
type EODHDOption func(*EODHDFetcher)

// WithEODHDBaseURL sets a custom base URL.
func WithEODHDBaseURL(baseURL string) EODHDOption {
	return func(f *EODHDFetcher) {
		f.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithEODHDHTTPClient sets a custom HTTP client.
func WithEODHDHTTPClient(c *http.Client) EODHDOption {
	return func(f *EODHDFetcher) {
		f.client = c
	}
}

// WithEODHDAdjusted selects adjusted closes.
func WithEODHDAdjusted(adjusted bool) EODHDOption {
	return func(f *EODHDFetcher) {
		f.adjusted = adjusted
	}
}

// WithEODHDClock overrides the clock used to compute the request window.
func WithEODHDClock(now func() time.Time) EODHDOption {
	return func(f *EODHDFetcher) {
		f.now = now
	}
}

// NewEODHDFetcher creates a fetcher. Symbols without an exchange suffix
// are looked up on the US exchange.
func NewEODHDFetcher(apiKey, proxyURL string, timeout time.Duration, opts ...EODHDOption) *EODHDFetcher {
	f := &EODHDFetcher{
		baseURL:         DefaultEODHDBaseURL,
		apiKey:          apiKey,
		defaultExchange: "US",
		client:          newHTTPClient(proxyURL, timeout),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *EODHDFetcher) Name() string { return "eodhd" }

// eodBar is a single day's end-of-day price data.
type eodBar struct {
	Date          string   `json:"date"`
	Close         *float64 `json:"close"`
	AdjustedClose *float64 `json:"adjusted_close"`
}

func (f *EODHDFetcher) ticker(symbol string) string {
	if strings.Contains(symbol, ".") {
		return symbol
	}
	return symbol + "." + f.defaultExchange
}

// FetchHistory downloads daily closes covering lookback, ending today.
func (f *EODHDFetcher) FetchHistory(ctx context.Context, symbol string, lookback model.Lookback) (*model.PriceSeries, error) {
	now := f.now()
	params := url.Values{}
	params.Set("from", lookback.Start(now).Format("2006-01-02"))
	params.Set("to", now.Format("2006-01-02"))
	params.Set("period", "d")
	params.Set("order", "a")
	params.Set("api_token", f.apiKey)
	params.Set("fmt", "json")
	reqURL := fmt.Sprintf("%s/eod/%s?%s", f.baseURL, url.PathEscape(f.ticker(symbol)), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, unavailable(f.Name(), symbol, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, unavailable(f.Name(), symbol, fmt.Errorf("execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, unavailable(f.Name(), symbol, ErrSymbolNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, unavailable(f.Name(), symbol, fmt.Errorf("status %d, body: %s", resp.StatusCode, truncate(body)))
	}

	var bars []eodBar
	if err := json.NewDecoder(resp.Body).Decode(&bars); err != nil {
		return nil, unavailable(f.Name(), symbol, fmt.Errorf("decode response: %w", err))
	}

	points := make([]model.PricePoint, 0, len(bars))
	for _, b := range bars {
		c := b.Close
		if f.adjusted && b.AdjustedClose != nil {
			c = b.AdjustedClose
		}
		if c == nil {
			continue
		}
		t, err := time.Parse("2006-01-02", b.Date)
		if err != nil {
			return nil, unavailable(f.Name(), symbol, fmt.Errorf("parse date %q: %w", b.Date, err))
		}
		points = append(points, model.PricePoint{Time: t, Close: *c})
	}
	sortPoints(points)

	return &model.PriceSeries{
		Symbol:    symbol,
		Source:    f.Name(),
		Points:    points,
		FetchedAt: now,
	}, nil
}
