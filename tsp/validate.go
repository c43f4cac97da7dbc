// Package tsp - input validation and weight prefetch shared by all solvers.
//
// Every solver first calls loadWeights, which copies the provider into a
// dense row-major buffer read by the hot loops.
//
// Policy:
//   - nil graph or zero vertices ⇒ ErrInvalidConfiguration.
//   - NaN or negative off-diagonal weight ⇒ ErrNegativeWeight.
//   - provider error or +Inf ⇒ stored as +Inf; solvers raise ErrMissingEdge
//     only where they actually need that edge.
package tsp

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hamilton/matrix"
)

var discardLogger logrus.FieldLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}()

// weights is the prefetched n×n weight buffer: w[i*n+j] is i→j.
type weights struct {
	n int
	w []float64
}

var _ matrix.Matrix = (*weights)(nil)

// at is a fast accessor into the dense weight buffer.
func (ws *weights) at(i, j int) float64 { return ws.w[i*ws.n+j] }

// Rows, Cols, At, Set and Clone expose the buffer as a matrix.Matrix.
func (ws *weights) Rows() int { return ws.n }
func (ws *weights) Cols() int { return ws.n }

func (ws *weights) At(i, j int) (float64, error) {
	if i < 0 || i >= ws.n || j < 0 || j >= ws.n {
		return 0, tspErrorf("weights.At", "(%d,%d)", matrix.ErrIndexOutOfBounds, i, j)
	}

	return ws.w[i*ws.n+j], nil
}

func (ws *weights) Set(i, j int, v float64) error {
	if i < 0 || i >= ws.n || j < 0 || j >= ws.n {
		return tspErrorf("weights.Set", "(%d,%d)", matrix.ErrIndexOutOfBounds, i, j)
	}
	ws.w[i*ws.n+j] = v

	return nil
}

func (ws *weights) Clone() matrix.Matrix {
	w := make([]float64, len(ws.w))
	copy(w, ws.w)

	return &weights{n: ws.n, w: w}
}

// symmetric reports whether w(i,j) == w(j,i) for every pair; mirrored
// missing edges count as equal.
func (ws *weights) symmetric() bool { return matrix.ValidateSymmetric(ws, 0) == nil }

// edge returns w(i, j) or ErrMissingEdge if it is +Inf.
func (ws *weights) edge(method string, i, j int) (float64, error) {
	c := ws.w[i*ws.n+j]
	if math.IsInf(c, 1) {
		return 0, tspErrorf(method, "edge %d→%d", ErrMissingEdge, i, j)
	}

	return c, nil
}

// loadWeights validates g and copies its weights into a dense buffer.
// Complexity: O(n²) time and memory.
func loadWeights(method string, g Graph) (*weights, error) {
	if g == nil {
		return nil, tspErrorf(method, "nil graph", ErrInvalidConfiguration)
	}
	n := g.NodeCount()
	if n <= 0 {
		return nil, tspErrorf(method, "graph has %d vertices, vertex 0 is required", ErrInvalidConfiguration, n)
	}

	var (
		ws   = &weights{n: n, w: make([]float64, n*n)}
		i, j int
		x    float64
		err  error
		inf  = math.Inf(1)
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // the diagonal stays 0
			}
			x, err = g.Weight(i, j)
			if err != nil {
				ws.w[i*n+j] = inf
				continue
			}
			if math.IsNaN(x) || x < 0 {
				return nil, tspErrorf(method, "w(%d,%d)=%v", ErrNegativeWeight, i, j, x)
			}
			ws.w[i*n+j] = x
		}
	}

	return ws, nil
}

// validateOptions checks knobs shared by every solver.
func validateOptions(method string, opts Options) error {
	if opts.Workers < 0 {
		return tspErrorf(method, "workers=%d", ErrInvalidConfiguration, opts.Workers)
	}
	if opts.TimeLimit < 0 {
		return tspErrorf(method, "time limit=%s", ErrInvalidConfiguration, opts.TimeLimit)
	}

	return nil
}

// validateSize rejects graphs larger than a solver supports.
func validateSize(method string, n, limit int) error {
	if n > limit {
		return tspErrorf(method, "%d vertices exceeds limit %d", ErrInvalidConfiguration, n, limit)
	}

	return nil
}
