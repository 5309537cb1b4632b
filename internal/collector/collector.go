package collector

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"smascreen/internal/model"
)

// DefaultTimeout bounds a single provider request.
const DefaultTimeout = 30 * time.Second

const maxErrorBody = 256

// newHTTPClient builds a client with optional proxy support.
func newHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}

// sortPoints puts a series into chronological order.
func sortPoints(points []model.PricePoint) {
	sort.SliceStable(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Series map[string][]float64
	Errors map[string]error
	// Panics makes FetchHistory panic for the listed symbols.
	Panics map[string]bool

	mu    sync.Mutex
	calls []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchHistory(_ context.Context, symbol string, lookback model.Lookback) (*model.PriceSeries, error) {
	m.mu.Lock()
	m.calls = append(m.calls, symbol)
	m.mu.Unlock()

	if m.Panics[symbol] {
		panic("mock fetcher: " + symbol)
	}
	if err, ok := m.Errors[symbol]; ok {
		return nil, unavailable("mock", symbol, err)
	}
	closes, ok := m.Series[symbol]
	if !ok {
		return nil, unavailable("mock", symbol, ErrSymbolNotFound)
	}
	return MockSeries(symbol, closes), nil
}

// Calls returns the symbols requested so far, in request order.
func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockSeries wraps closes into a daily series ending today.
func MockSeries(symbol string, closes []float64) *model.PriceSeries {
	now := time.Now()
	points := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = model.PricePoint{
			Time:  now.AddDate(0, 0, -(len(closes) - 1 - i)),
			Close: c,
		}
	}
	return &model.PriceSeries{
		Symbol:    symbol,
		Source:    "mock",
		Points:    points,
		FetchedAt: now,
	}
}
