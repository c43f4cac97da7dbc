package tsp

import (
	"fmt"

	"github.com/katalvlaran/hamilton/matrix"
)

// Graph is the weight provider consumed by every solver.
//
// Vertices are 0..NodeCount()-1 and vertex 0 is the fixed tour start.
// Weight must be defined for every ordered pair i ≠ j of a complete graph;
// an error or +Inf marks the edge as missing. Weights are symmetric unless
// the provider is explicitly directed.
type Graph interface {
	NodeCount() int
	Weight(i, j int) (float64, error)
}

// MatrixGraph adapts a square matrix.Matrix to Graph; entry (i, j) is the
// weight of i→j. The diagonal is ignored.
type MatrixGraph struct {
	m matrix.Matrix
}

var _ Graph = (*MatrixGraph)(nil)

// NewMatrixGraph wraps m. It fails with ErrInvalidConfiguration if m is nil
// or not square.
func NewMatrixGraph(m matrix.Matrix) (*MatrixGraph, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("NewMatrixGraph: %w: %w", ErrInvalidConfiguration, err)
	}

	return &MatrixGraph{m: m}, nil
}

// NodeCount returns the matrix order.
func (g *MatrixGraph) NodeCount() int { return g.m.Rows() }

// Weight returns m[i][j].
func (g *MatrixGraph) Weight(i, j int) (float64, error) { return g.m.At(i, j) }

// Matrix returns the wrapped matrix.
func (g *MatrixGraph) Matrix() matrix.Matrix { return g.m }
