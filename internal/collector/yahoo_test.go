package collector

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smascreen/internal/model"
)

const yahooOK = `{"chart":{"result":[{
  "timestamp":[1700179200,1700006400,1700092800,1700265600],
  "indicators":{
    "quote":[{"close":[103.0,101.0,null,104.0]}],
    "adjclose":[{"adjclose":[51.5,50.5,null,52.0]}]
  }}],"error":null}}`

func newYahooServer(t *testing.T, status int, body string, gotPath *string) *YahooFetcher {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotPath != nil {
			*gotPath = r.URL.EscapedPath() + "?" + r.URL.RawQuery
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	f := NewYahooFetcher("", time.Second, false)
	f.BaseURL = srv.URL
	f.Client = srv.Client()
	f.Now = func() time.Time { return time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC) }
	return f
}

func TestYahooFetcher_ParsesAndSortsCloses(t *testing.T) {
	var path string
	f := newYahooServer(t, http.StatusOK, yahooOK, &path)

	s, err := f.FetchHistory(context.Background(), "ES=F", model.DefaultLookback)
	require.NoError(t, err)

	assert.Equal(t, "yahoo", s.Source)
	assert.Equal(t, []float64{101, 103, 104}, s.Closes(), "null close dropped, oldest first")
	assert.True(t, strings.HasPrefix(path, "/v8/finance/chart/ES=F?"), path)
	assert.Contains(t, path, "interval=1d")
	assert.Contains(t, path, "period1=1729296000") // 2024-10-19
	assert.Contains(t, path, "period2=1792368000") // 2026-10-19
}

func TestYahooFetcher_AdjustedCloses(t *testing.T) {
	f := newYahooServer(t, http.StatusOK, yahooOK, nil)
	f.Adjusted = true

	s, err := f.FetchHistory(context.Background(), "AAPL", model.DefaultLookback)
	require.NoError(t, err)
	assert.Equal(t, []float64{50.5, 51.5, 52.0}, s.Closes())
}

func TestYahooFetcher_SymbolAlias(t *testing.T) {
	var path string
	f := newYahooServer(t, http.StatusOK, yahooOK, &path)

	_, err := f.FetchHistory(context.Background(), "SPX500", model.DefaultLookback)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/v8/finance/chart/%5EGSPC?"), path)
}

func TestYahooFetcher_Failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		notFound bool
	}{
		{"unknown symbol", http.StatusNotFound, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`, true},
		{"rate limited", http.StatusTooManyRequests, `Too Many Requests`, false},
		{"api error", http.StatusOK, `{"chart":{"result":null,"error":{"code":"Bad Request","description":"invalid range"}}}`, false},
		{"malformed json", http.StatusOK, `{"chart":`, false},
		{"empty result", http.StatusOK, `{"chart":{"result":[],"error":null}}`, false},
		{"missing quote", http.StatusOK, `{"chart":{"result":[{"timestamp":[1],"indicators":{"quote":[]}}],"error":null}}`, false},
		{"misaligned arrays", http.StatusOK, `{"chart":{"result":[{"timestamp":[1,2],"indicators":{"quote":[{"close":[1.0]}]}}],"error":null}}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newYahooServer(t, tt.status, tt.body, nil)
			s, err := f.FetchHistory(context.Background(), "XYZ", model.DefaultLookback)
			assert.Nil(t, s)
			require.ErrorIs(t, err, ErrDataUnavailable)
			assert.Equal(t, tt.notFound, errors.Is(err, ErrSymbolNotFound))
		})
	}
}

func TestYahooFetcher_NetworkError(t *testing.T) {
	f := newYahooServer(t, http.StatusOK, yahooOK, nil)
	f.BaseURL = "http://127.0.0.1:1"

	_, err := f.FetchHistory(context.Background(), "AAPL", model.DefaultLookback)
	assert.ErrorIs(t, err, ErrDataUnavailable)
}
