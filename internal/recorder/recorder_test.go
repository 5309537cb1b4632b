package recorder

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smascreen/internal/model"
)

func TestFormatReport(t *testing.T) {
	assert.Equal(t, "Stocks close to their 325-day SMA:\nAAPL\nMSFT\n", FormatReport([]string{"AAPL", "MSFT"}, 325))
	assert.Equal(t, "No stocks found close to their 325-day SMA within the tolerance level.", FormatReport(nil, 325))
	assert.Equal(t, "No stocks found close to their 200-day SMA within the tolerance level.", FormatReport([]string{}, 200))
}

func TestFileRecorder_Record(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	rec, err := NewFileRecorder(dir, 325)
	require.NoError(t, err)
	defer rec.Close()

	date := time.Date(2026, 10, 19, 18, 30, 0, 0, time.UTC)
	require.NoError(t, rec.Record(date, []string{"AAPL", "KO"}))

	path := filepath.Join(dir, "2026-10-19.txt")
	assert.Equal(t, path, rec.Path(date))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Stocks close to their 325-day SMA:\nAAPL\nKO\n", string(data))

	// same day overwrites
	require.NoError(t, rec.Record(date, nil))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "No stocks found close to their 325-day SMA within the tolerance level.", string(data))
}

func TestFileRecorder_DuplicatesKept(t *testing.T) {
	rec, err := NewFileRecorder(t.TempDir(), 325)
	require.NoError(t, err)

	date := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, rec.Record(date, []string{"A", "B", "A"}))
	data, err := os.ReadFile(rec.Path(date))
	require.NoError(t, err)
	assert.Equal(t, "Stocks close to their 325-day SMA:\nA\nB\nA\n", string(data))
}

func TestFileRecorder_BadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := NewFileRecorder(filepath.Join(file, "sub"), 325)
	assert.Error(t, err)
}

func TestNoopRecorder(t *testing.T) {
	var rec Recorder = NewNoopRecorder()
	assert.NoError(t, rec.Record(time.Now(), []string{"A"}))
	assert.NoError(t, rec.Close())
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "+2.00%", FormatPercent(0.02))
	assert.Equal(t, "-1.50%", FormatPercent(-0.015))
	assert.Equal(t, "0.00%", FormatPercent(0))
	assert.Equal(t, "+12.35%", FormatPercent(0.12345))
}

func TestFormatSummary(t *testing.T) {
	res := &model.ScreeningResult{
		Symbols:   []string{"A"},
		Tolerance: 0.02,
		Period:    325,
		Evaluations: []model.Evaluation{
			{Symbol: "A", Close: 102, SMA: 100, Deviation: 0.02, Outcome: model.OutcomeMatched},
			{Symbol: "B", Close: 110, SMA: 100, Deviation: 0.1, Outcome: model.OutcomeRejected},
			{Symbol: "C", Outcome: model.OutcomeUnavailable},
		},
	}
	out := FormatSummary(res)
	assert.Contains(t, out, "SMA325 proximity | tolerance 2.00% | 3 symbols")
	assert.Contains(t, out, "MATCHED")
	assert.Contains(t, out, "DATA_UNAVAILABLE")
	assert.NotContains(t, out, "FAILED")
	assert.Contains(t, out, "close 102.00  sma 100.00  +2.00%")
	assert.NotContains(t, out, "110.00")
}
