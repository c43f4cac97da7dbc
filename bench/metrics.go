package bench

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric label names.
const (
	SolverLabel = "solver"
	GraphLabel  = "graph"
)

// Recorder exports solve timings, failures and correctness as Prometheus
// metrics. A nil *Recorder records nothing.
type Recorder struct {
	duration    *prometheus.HistogramVec
	errors      *prometheus.CounterVec
	correctness *prometheus.GaugeVec
}

// NewRecorder creates the metrics and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hamilton_solve_duration_seconds",
				Help:    "Wall time of successful TSP solves",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
			},
			[]string{SolverLabel, GraphLabel},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hamilton_solve_errors_total",
				Help: "Number of TSP solves that returned an error",
			},
			[]string{SolverLabel, GraphLabel},
		),
		correctness: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hamilton_solve_correctness",
				Help: "Optimum divided by cost of the latest solve (1 is optimal)",
			},
			[]string{SolverLabel, GraphLabel},
		),
	}
	for _, c := range []prometheus.Collector{r.duration, r.errors, r.correctness} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("NewRecorder: %w", err)
		}
	}

	return r, nil
}

// Observe records one measurement for graph. err is the solve error, if any.
func (r *Recorder) Observe(graph string, m Measurement, err error) {
	if r == nil {
		return
	}
	if err != nil {
		r.errors.WithLabelValues(m.Solver, graph).Inc()
		return
	}
	r.duration.WithLabelValues(m.Solver, graph).Observe(m.Duration.Seconds())
	if m.Optimum > 0 {
		r.correctness.WithLabelValues(m.Solver, graph).Set(m.Correctness)
	}
}
