package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLookback(t *testing.T) {
	tests := []struct {
		in   string
		want Lookback
	}{
		{"2y", Lookback{Years: 2}},
		{"18mo", Lookback{Months: 18}},
		{"500d", Lookback{Days: 500}},
		{"1y6mo", Lookback{Years: 1, Months: 6}},
		{" 1Y2MO3D ", Lookback{Years: 1, Months: 2, Days: 3}},
	}
	for _, tt := range tests {
		got, err := ParseLookback(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseLookback_Invalid(t *testing.T) {
	for _, in := range []string{"", "y", "2w", "0y", "2y-1d"} {
		_, err := ParseLookback(in)
		assert.Error(t, err, in)
	}
}

func TestLookback_StartAndString(t *testing.T) {
	end := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 10, 19, 0, 0, 0, 0, time.UTC), DefaultLookback.Start(end))
	assert.Equal(t, "2y", DefaultLookback.String())
	assert.Equal(t, "1y6mo10d", Lookback{Years: 1, Months: 6, Days: 10}.String())
}

func TestPriceSeries_Helpers(t *testing.T) {
	var empty *PriceSeries
	assert.Equal(t, 0, empty.Len())
	_, ok := empty.Latest()
	assert.False(t, ok)

	s := &PriceSeries{Points: []PricePoint{{Close: 1}, {Close: 2}, {Close: 3}}}
	assert.Equal(t, []float64{1, 2, 3}, s.Closes())
	last, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, 3.0, last.Close)
}
