package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"smascreen/internal/model"
)

// DefaultYahooBaseURL is the public Yahoo Finance chart host.
const DefaultYahooBaseURL = "https://query1.finance.yahoo.com"

// YahooFetcher implements Fetcher using Yahoo Finance public API.
type YahooFetcher struct {
	BaseURL   string
	Client    *http.Client
	Adjusted  bool              // use split/dividend adjusted closes when present
	SymbolMap map[string]string // maps internal symbol to Yahoo ticker
	Now       func() time.Time
}

// NewYahooFetcher creates a new Yahoo Finance fetcher.
func NewYahooFetcher(proxyURL string, timeout time.Duration, adjusted bool) *YahooFetcher {
	return &YahooFetcher{
		BaseURL:  DefaultYahooBaseURL,
		Client:   newHTTPClient(proxyURL, timeout),
		Adjusted: adjusted,
		SymbolMap: map[string]string{
			"SPX500": "^GSPC",
			"SPX":    "^GSPC",
			"SP500":  "^GSPC",
		},
		Now: time.Now,
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

func (f *YahooFetcher) yahooSymbol(symbol string) string {
	if mapped, ok := f.SymbolMap[symbol]; ok {
		return mapped
	}
	return symbol
}

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchHistory downloads daily closes covering lookback, ending now.
func (f *YahooFetcher) FetchHistory(ctx context.Context, symbol string, lookback model.Lookback) (*model.PriceSeries, error) {
	now := time.Now()
	if f.Now != nil {
		now = f.Now()
	}
	base := f.BaseURL
	if base == "" {
		base = DefaultYahooBaseURL
	}
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("period1", fmt.Sprint(lookback.Start(now).Unix()))
	q.Set("period2", fmt.Sprint(now.Unix()))
	q.Set("events", "div,splits")
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", base, url.PathEscape(f.yahooSymbol(symbol)), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, unavailable(f.Name(), symbol, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, unavailable(f.Name(), symbol, fmt.Errorf("fetch: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, unavailable(f.Name(), symbol, fmt.Errorf("read body: %w", err))
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, unavailable(f.Name(), symbol, ErrSymbolNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, unavailable(f.Name(), symbol, fmt.Errorf("status %d, body: %s", resp.StatusCode, truncate(body)))
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, unavailable(f.Name(), symbol, fmt.Errorf("decode: %w", err))
	}
	if chart.Chart.Error != nil {
		return nil, unavailable(f.Name(), symbol, fmt.Errorf("api error %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description))
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, unavailable(f.Name(), symbol, fmt.Errorf("no data returned"))
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, unavailable(f.Name(), symbol, fmt.Errorf("missing quote indicators"))
	}
	closes := result.Indicators.Quote[0].Close
	if f.Adjusted && len(result.Indicators.AdjClose) > 0 && len(result.Indicators.AdjClose[0].AdjClose) > 0 {
		closes = result.Indicators.AdjClose[0].AdjClose
	}
	if len(closes) != len(result.Timestamp) {
		return nil, unavailable(f.Name(), symbol, fmt.Errorf("%d closes for %d timestamps", len(closes), len(result.Timestamp)))
	}

	points := make([]model.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		c := closes[i]
		if c == nil || math.IsNaN(*c) {
			continue // null bars (holidays, halted sessions)
		}
		points = append(points, model.PricePoint{Time: time.Unix(ts, 0).UTC(), Close: *c})
	}
	sortPoints(points)

	return &model.PriceSeries{
		Symbol:    symbol,
		Source:    f.Name(),
		Points:    points,
		FetchedAt: now,
	}, nil
}
