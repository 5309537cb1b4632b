package recorder

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"smascreen/internal/model"
)

// FormatReport renders the plain-text listing written for a run.
func FormatReport(symbols []string, period int) string {
	if len(symbols) == 0 {
		return fmt.Sprintf("No stocks found close to their %d-day SMA within the tolerance level.", period)
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Stocks close to their %d-day SMA:\n", period))
	for _, s := range symbols {
		b.WriteString(s)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPercent renders a fractional deviation as a signed percentage with two decimals.
func FormatPercent(fraction float64) string {
	d := decimal.NewFromFloat(fraction).Shift(2).Round(2)
	if d.IsPositive() {
		return "+" + d.StringFixed(2) + "%"
	}
	return d.StringFixed(2) + "%"
}

// FormatSummary renders a human-readable digest of a run for the log.
func FormatSummary(res *model.ScreeningResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("SMA%d proximity | tolerance %s | %d symbols\n",
		res.Period, strings.TrimPrefix(FormatPercent(res.Tolerance), "+"), len(res.Evaluations)))
	for _, o := range model.Outcomes {
		if n := res.Count(o); n > 0 {
			b.WriteString(fmt.Sprintf("  %-22s %d\n", o, n))
		}
	}
	for _, ev := range res.Matches() {
		b.WriteString(fmt.Sprintf("  %-10s close %s  sma %s  %s\n", ev.Symbol,
			decimal.NewFromFloat(ev.Close).StringFixed(2),
			decimal.NewFromFloat(ev.SMA).StringFixed(2),
			FormatPercent(ev.Deviation)))
	}
	return b.String()
}
