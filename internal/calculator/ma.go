package calculator

import (
	"errors"
	"math"
)

// DefaultSMAPeriod is the screening moving-average window in trading days.
const DefaultSMAPeriod = 325

var (
	// ErrInsufficientData is returned when a series is shorter than the averaging period.
	ErrInsufficientData = errors.New("not enough data for SMA calculation")
	// ErrZeroAverage is returned when a deviation is requested against a zero average.
	ErrZeroAverage = errors.New("moving average is zero")
	// ErrNonFinite is returned when a deviation is NaN or infinite.
	ErrNonFinite = errors.New("deviation is not finite")
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, ErrInsufficientData
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// SMASeries is a trailing simple moving average aligned to its input series.
// Positions before the first full window are undefined.
type SMASeries struct {
	Period int
	n      int
	values []float64 // values[k] ends at input position k+Period-1
}

// NewSMASeries computes the trailing average at every position of prices.
// Each window is summed independently so every value matches CalculateSMA
// on the corresponding prefix exactly.
func NewSMASeries(prices []float64, period int) (*SMASeries, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	s := &SMASeries{Period: period, n: len(prices)}
	if len(prices) < period {
		return s, nil
	}
	s.values = make([]float64, 0, len(prices)-period+1)
	for end := period; end <= len(prices); end++ {
		v, err := CalculateSMA(prices[:end], period)
		if err != nil {
			return nil, err
		}
		s.values = append(s.values, v)
	}
	return s, nil
}

// Len returns the length of the input series.
func (s *SMASeries) Len() int { return s.n }

// Defined returns how many positions carry a value.
func (s *SMASeries) Defined() int { return len(s.values) }

// At returns the average ending at input position i.
func (s *SMASeries) At(i int) (float64, bool) {
	k := i - (s.Period - 1)
	if i < 0 || i >= s.n || k < 0 {
		return 0, false
	}
	return s.values[k], true
}

// Latest returns the average at the final input position.
func (s *SMASeries) Latest() (float64, error) {
	v, ok := s.At(s.n - 1)
	if !ok {
		return 0, ErrInsufficientData
	}
	return v, nil
}

// CalculateDeviation returns the fractional distance of price from ma:
// (price - ma) / ma.
func CalculateDeviation(price, ma float64) (float64, error) {
	if ma == 0 {
		return 0, ErrZeroAverage
	}
	dev := (price - ma) / ma
	if math.IsNaN(dev) || math.IsInf(dev, 0) {
		return 0, ErrNonFinite
	}
	return dev, nil
}

// WithinTolerance reports whether |deviation| <= tolerance.
func WithinTolerance(deviation, tolerance float64) bool {
	return math.Abs(deviation) <= tolerance
}
