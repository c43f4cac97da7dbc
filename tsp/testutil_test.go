package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/matrix"
	"github.com/katalvlaran/hamilton/tsp"
)

// fourNode is the classic 4-city instance with optimum 80.
var fourNode = [][]float64{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
}

// mustGraph wraps a literal matrix as a tsp.Graph.
func mustGraph(t testing.TB, rows [][]float64) *tsp.MatrixGraph {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	g, err := tsp.NewMatrixGraph(m)
	require.NoError(t, err)

	return g
}

// randomRows returns a complete n×n weight matrix with integer weights in
// [1, 100]; symmetric unless directed is set.
func randomRows(rng *rand.Rand, n int, directed bool) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (!directed && j < i) {
				continue
			}
			w := float64(1 + rng.Intn(100))
			rows[i][j] = w
			if !directed {
				rows[j][i] = w
			}
		}
	}

	return rows
}

// funcGraph is a Graph backed by a closure, for providers that fail.
type funcGraph struct {
	n int
	w func(i, j int) (float64, error)
}

func (g funcGraph) NodeCount() int                   { return g.n }
func (g funcGraph) Weight(i, j int) (float64, error) { return g.w(i, j) }

// requireTour asserts res is a valid tour on g whose cost matches TourCost.
func requireTour(t *testing.T, g tsp.Graph, res tsp.TSResult) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(res.Tour, g.NodeCount()))
	c, err := tsp.TourCost(g, res.Tour)
	require.NoError(t, err)
	require.InDelta(t, c, res.Cost, 1e-9)
}

// exactOptions returns options for an exact branch-and-bound run.
func exactOptions() tsp.Options {
	opts := tsp.DefaultOptions()
	opts.FrontierCap = tsp.NoFrontierCap

	return opts
}

var inf = math.Inf(1)
