package bench

import (
	"fmt"
	"time"

	"github.com/katalvlaran/hamilton/matrix"
	"github.com/katalvlaran/hamilton/tsp"
)

// SolverFunc solves one graph.
type SolverFunc func(g tsp.Graph) (tsp.TSResult, error)

// Solver returns a SolverFunc running algo through tsp.Solve with opts.
func Solver(algo tsp.Algorithm, opts tsp.Options) SolverFunc {
	opts.Algo = algo

	return func(g tsp.Graph) (tsp.TSResult, error) {
		return tsp.Solve(g, opts)
	}
}

// Measurement is the outcome of one timed solve.
type Measurement struct {
	Solver   string
	N        int
	Duration time.Duration
	Cost     float64
	Tour     []int

	// Correctness is Optimum/Cost; 0 when no optimum was supplied.
	Optimum     float64
	Correctness float64
}

// Measure times solver on g. When optimum > 0 the correctness ratio
// optimum/cost is computed as well; otherwise it is left at 0.
// A solver error is returned together with the elapsed time.
func Measure(g tsp.Graph, name string, solver SolverFunc, optimum float64) (Measurement, error) {
	m := Measurement{Solver: name, N: g.NodeCount(), Optimum: optimum}

	start := time.Now()
	res, err := solver(g)
	m.Duration = time.Since(start)
	if err != nil {
		return m, fmt.Errorf("Measure(%s, n=%d): %w", name, m.N, err)
	}
	m.Cost, m.Tour = res.Cost, res.Tour
	m.Correctness = correctness(optimum, res.Cost)

	return m, nil
}

// MeasureGenerated builds a graph with gen and measures solver on it.
func MeasureGenerated(gen func() (*matrix.Dense, error), name string, solver SolverFunc, optimum float64) (Measurement, error) {
	d, err := gen()
	if err != nil {
		return Measurement{Solver: name}, fmt.Errorf("MeasureGenerated(%s): %w", name, err)
	}
	g, err := tsp.NewMatrixGraph(d)
	if err != nil {
		return Measurement{Solver: name}, fmt.Errorf("MeasureGenerated(%s): %w", name, err)
	}

	return Measure(g, name, solver, optimum)
}

func correctness(optimum, cost float64) float64 {
	switch {
	case optimum <= 0:
		return 0
	case cost <= 0:
		return 1
	default:
		return optimum / cost
	}
}
