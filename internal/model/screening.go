package model

import "time"

// Outcome classifies how a single symbol's evaluation ended.
type Outcome string

const (
	OutcomeMatched      Outcome = "MATCHED"
	OutcomeRejected     Outcome = "REJECTED"
	OutcomeUnavailable  Outcome = "DATA_UNAVAILABLE"
	OutcomeInsufficient Outcome = "INSUFFICIENT_HISTORY"
	OutcomeDegenerate   Outcome = "DEGENERATE_AVERAGE"
	OutcomeFailed       Outcome = "FAILED"
)

// Outcomes lists every outcome in reporting order.
var Outcomes = []Outcome{
	OutcomeMatched,
	OutcomeRejected,
	OutcomeUnavailable,
	OutcomeInsufficient,
	OutcomeDegenerate,
	OutcomeFailed,
}

// Skipped reports whether the symbol could not be classified at all.
func (o Outcome) Skipped() bool {
	return o != OutcomeMatched && o != OutcomeRejected
}

// Evaluation is the result of screening one symbol. Close, SMA and
// Deviation are only meaningful when the symbol was classified.
type Evaluation struct {
	Symbol    string
	Points    int
	Close     float64
	SMA       float64
	Deviation float64 // (Close - SMA) / SMA
	Outcome   Outcome
	Err       error
}

// Passed reports whether the symbol is within tolerance of its average.
func (e Evaluation) Passed() bool {
	return e.Outcome == OutcomeMatched
}

// ScreeningResult is the output of one screening run.
type ScreeningResult struct {
	Symbols     []string // passing symbols, input order
	Evaluations []Evaluation
	Tolerance   float64
	Period      int
	Lookback    Lookback
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Count returns how many evaluations ended with the given outcome.
func (r *ScreeningResult) Count(o Outcome) int {
	n := 0
	for _, e := range r.Evaluations {
		if e.Outcome == o {
			n++
		}
	}
	return n
}

// Matches returns the evaluations of the passing symbols, input order.
func (r *ScreeningResult) Matches() []Evaluation {
	matches := make([]Evaluation, 0, len(r.Symbols))
	for _, e := range r.Evaluations {
		if e.Passed() {
			matches = append(matches, e)
		}
	}
	return matches
}
