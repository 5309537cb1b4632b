package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Lookback is a calendar span of history requested from a provider.
type Lookback struct {
	Years  int
	Months int
	Days   int
}

// DefaultLookback covers two years of daily closes, comfortably more than
// 325 trading days once weekends and holidays are removed.
var DefaultLookback = Lookback{Years: 2}

// ParseLookback parses spans such as "2y", "18mo", "500d" or "1y6mo".
func ParseLookback(s string) (Lookback, error) {
	var l Lookback
	rest := strings.TrimSpace(strings.ToLower(s))
	if rest == "" {
		return l, fmt.Errorf("empty lookback")
	}
	for rest != "" {
		i := 0
		for i < len(rest) && rest[i] >= '0' && rest[i] <= '9' {
			i++
		}
		if i == 0 {
			return Lookback{}, fmt.Errorf("lookback %q: expected a number at %q", s, rest)
		}
		n, err := strconv.Atoi(rest[:i])
		if err != nil {
			return Lookback{}, fmt.Errorf("lookback %q: %w", s, err)
		}
		rest = rest[i:]
		switch {
		case strings.HasPrefix(rest, "mo"):
			l.Months += n
			rest = rest[2:]
		case strings.HasPrefix(rest, "y"):
			l.Years += n
			rest = rest[1:]
		case strings.HasPrefix(rest, "d"):
			l.Days += n
			rest = rest[1:]
		default:
			return Lookback{}, fmt.Errorf("lookback %q: unknown unit at %q", s, rest)
		}
	}
	if l.IsZero() {
		return Lookback{}, fmt.Errorf("lookback %q: span must be positive", s)
	}
	return l, nil
}

// IsZero reports whether the span is empty.
func (l Lookback) IsZero() bool {
	return l.Years == 0 && l.Months == 0 && l.Days == 0
}

// Start returns the first calendar instant covered when the window ends at end.
func (l Lookback) Start(end time.Time) time.Time {
	return end.AddDate(-l.Years, -l.Months, -l.Days)
}

func (l Lookback) String() string {
	var b strings.Builder
	if l.Years > 0 {
		fmt.Fprintf(&b, "%dy", l.Years)
	}
	if l.Months > 0 {
		fmt.Fprintf(&b, "%dmo", l.Months)
	}
	if l.Days > 0 {
		fmt.Fprintf(&b, "%dd", l.Days)
	}
	if b.Len() == 0 {
		return "0d"
	}
	return b.String()
}
