package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	"smascreen/internal/model"
)

// Registry holds the screening metrics. It implements screener.Observer so
// per-symbol outcomes are counted as they happen.
type Registry struct {
	reg *prometheus.Registry

	Symbols     *prometheus.CounterVec
	Runs        prometheus.Counter
	Matches     prometheus.Gauge
	LastRun     prometheus.Gauge
	RunDuration prometheus.Gauge
	Deviation   prometheus.Histogram
}

// NewRegistry creates a registry with all screening metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		Symbols: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smascreen_symbols_total",
				Help: "Symbols evaluated, by outcome",
			},
			[]string{"outcome"},
		),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "smascreen_runs_total",
			Help: "Completed screening runs",
		}),
		Matches: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "smascreen_last_run_matches",
			Help: "Symbols within tolerance in the last run",
		}),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "smascreen_last_run_timestamp_seconds",
			Help: "Unix time the last run finished",
		}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "smascreen_last_run_duration_seconds",
			Help: "Wall time of the last run",
		}),
		Deviation: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "smascreen_abs_deviation",
			Help:    "Absolute deviation of close from the moving average for classified symbols",
			Buckets: []float64{0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5},
		}),
	}
	r.reg.MustRegister(r.Symbols, r.Runs, r.Matches, r.LastRun, r.RunDuration, r.Deviation)
	for _, o := range model.Outcomes {
		r.Symbols.WithLabelValues(string(o))
	}
	return r
}

// ObserveEvaluation counts one symbol's outcome.
func (r *Registry) ObserveEvaluation(ev model.Evaluation) {
	r.Symbols.WithLabelValues(string(ev.Outcome)).Inc()
	if !ev.Outcome.Skipped() {
		d := ev.Deviation
		if d < 0 {
			d = -d
		}
		r.Deviation.Observe(d)
	}
}

// ObserveRun records run-level gauges once a run has finished.
func (r *Registry) ObserveRun(res *model.ScreeningResult) {
	r.Runs.Inc()
	r.Matches.Set(float64(len(res.Symbols)))
	r.LastRun.Set(float64(res.FinishedAt.Unix()))
	r.RunDuration.Set(res.FinishedAt.Sub(res.StartedAt).Seconds())
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile writes the metrics in the node_exporter textfile format.
func (r *Registry) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
