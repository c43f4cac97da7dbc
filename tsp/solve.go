// Package tsp - unified dispatcher.
//
// Solve routes to the solver named by Options.Algo; SolveMatrix wraps a
// weight matrix first. Every solver returns costs rounded to 1e-9.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/hamilton/matrix"
)

// Solve runs the solver selected by opts.Algo on g.
//
// Errors: ErrUnsupportedAlgorithm for an unknown Algo; otherwise those of the
// chosen solver.
func Solve(g Graph, opts Options) (TSResult, error) {
	switch opts.Algo {
	case ExactHeldKarp:
		return TSPHeldKarp(g, opts)
	case BranchAndBound:
		return TSPBranchAndBound(g, opts)
	case NearestNeighbor:
		return TSPNearestNeighbor(g, opts)
	case BruteForce:
		return TSPBruteForce(g, opts)
	case Christofides:
		return TSPChristofides(g, opts)
	default:
		return TSResult{}, fmt.Errorf("Solve: %s: %w", opts.Algo, ErrUnsupportedAlgorithm)
	}
}

// SolveMatrix treats m as the weight matrix of the graph and calls Solve.
func SolveMatrix(m matrix.Matrix, opts Options) (TSResult, error) {
	g, err := NewMatrixGraph(m)
	if err != nil {
		return TSResult{}, err
	}

	return Solve(g, opts)
}
