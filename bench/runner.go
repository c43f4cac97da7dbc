package bench

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hamilton/matrix"
	"github.com/katalvlaran/hamilton/tsp"
)

// OracleMaxNodes is the largest graph whose optimum Runner computes with
// Held–Karp when no closed form is known. Larger symmetric graphs get a
// 1-tree lower bound instead.
const OracleMaxNodes = 13

var discardLogger logrus.FieldLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}()

// Row is one line of a suite report.
type Row struct {
	Case  string
	Graph string
	Measurement
	Err error

	// LowerBound is set when Optimum is a 1-tree lower bound rather than
	// the optimum; Correctness then underestimates optimum/cost.
	LowerBound bool
}

// Runner executes suites. The zero value runs silently without metrics.
type Runner struct {
	Logger   logrus.FieldLogger
	Recorder *Recorder
}

// NewRunner returns a Runner logging to log and recording into rec; both
// may be nil.
func NewRunner(log logrus.FieldLogger, rec *Recorder) *Runner {
	return &Runner{Logger: log, Recorder: rec}
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Logger != nil {
		return r.Logger
	}

	return discardLogger
}

// reference returns the value correctness ratios are taken against: the
// closed-form optimum of inst, a Held–Karp optimum up to OracleMaxNodes, or
// a 1-tree bound seeded with a local-search incumbent for larger symmetric
// graphs. It returns 0 when none applies.
func reference(g tsp.Graph, inst Instance, log logrus.FieldLogger) (value float64, bound bool) {
	if inst.Optimum > 0 {
		return inst.Optimum, false
	}
	if g.NodeCount() <= OracleMaxNodes {
		if res, err := tsp.TSPHeldKarp(g, tsp.DefaultOptions()); err == nil {
			return res.Cost, false
		}

		return 0, false
	}
	if err := matrix.ValidateSymmetric(inst.Dense, 0); err != nil {
		return 0, false
	}

	var (
		opts = tsp.DefaultOptions()
		cfg  = tsp.DefaultOneTreeConfig()
	)
	opts.TwoOpt, opts.Logger = true, log
	if ub, err := tsp.TSPNearestNeighbor(g, opts); err == nil {
		cfg.UB = ub.Cost
	}
	lb, err := tsp.OneTreeLowerBound(g, cfg, opts)
	if err != nil || lb <= 0 {
		return 0, false
	}

	return lb, true
}

// Run executes every case of s in order and returns one Row per
// (size, algorithm). Solver failures are reported in Row.Err and do not stop
// the run; generation failures and cancellation of ctx do.
func (r *Runner) Run(ctx context.Context, s *Suite) ([]Row, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	var (
		log  = r.logger()
		rows []Row
	)
	for _, c := range s.Cases {
		algos, err := c.algorithms()
		if err != nil {
			return rows, fmt.Errorf("Runner.Run: %w", err)
		}
		opts := c.Options()
		opts.Logger = log

		for _, size := range c.Sizes {
			inst, err := c.Generate(size)
			if err != nil {
				return rows, fmt.Errorf("Runner.Run: %w", err)
			}
			g, err := tsp.NewMatrixGraph(inst.Dense)
			if err != nil {
				return rows, fmt.Errorf("Runner.Run: %w", err)
			}
			optimum, bound := reference(g, inst, log)

			for _, algo := range algos {
				if err = ctx.Err(); err != nil {
					return rows, fmt.Errorf("Runner.Run: %w", err)
				}
				m, err := Measure(g, algo.String(), Solver(algo, opts), optimum)
				r.Recorder.Observe(inst.Label, m, err)

				entry := log.WithFields(logrus.Fields{
					"case":     c.Name,
					"graph":    inst.Label,
					"solver":   m.Solver,
					"duration": m.Duration,
				})
				if err != nil {
					entry.WithError(err).Warn("solve failed")
				} else {
					entry.WithFields(logrus.Fields{
						"cost":        m.Cost,
						"correctness": m.Correctness,
						"lower_bound": bound,
					}).Info("solved")
				}
				rows = append(rows, Row{Case: c.Name, Graph: inst.Label, Measurement: m, Err: err, LowerBound: bound})
			}
		}
	}

	return rows, nil
}
