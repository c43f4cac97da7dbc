package tsp_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/tsp"
)

func TestTSPHeldKarp_FourNode(t *testing.T) {
	g := mustGraph(t, fourNode)

	res, err := tsp.TSPHeldKarp(g, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 80.0, res.Cost)
	ok := slices.Equal(res.Tour, []int{0, 1, 3, 2, 0}) || slices.Equal(res.Tour, []int{0, 2, 3, 1, 0})
	require.True(t, ok, "unexpected tour %v", res.Tour)
}

func TestTSPHeldKarp_TinyGraphs(t *testing.T) {
	res, err := tsp.TSPHeldKarp(mustGraph(t, [][]float64{{0}}), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Tour)
	require.Zero(t, res.Cost)

	res, err = tsp.TSPHeldKarp(mustGraph(t, [][]float64{{0, 3}, {4, 0}}), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 0}, res.Tour)
	require.Equal(t, 7.0, res.Cost)
}

func TestTSPHeldKarp_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 2; n <= 8; n++ {
		for _, directed := range []bool{false, true} {
			g := mustGraph(t, randomRows(rng, n, directed))

			want, err := tsp.TSPBruteForce(g, tsp.DefaultOptions())
			require.NoError(t, err)
			got, err := tsp.TSPHeldKarp(g, tsp.DefaultOptions())
			require.NoError(t, err)

			requireTour(t, g, got)
			require.InDelta(t, want.Cost, got.Cost, 1e-9, "n=%d directed=%v", n, directed)
		}
	}
}

func TestTSPHeldKarp_ParallelEqualsSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g := mustGraph(t, randomRows(rng, 11, false))

	seq, err := tsp.TSPHeldKarp(g, tsp.DefaultOptions())
	require.NoError(t, err)

	opts := tsp.DefaultOptions()
	opts.Workers = 4
	par, err := tsp.TSPHeldKarp(g, opts)
	require.NoError(t, err)

	require.Equal(t, seq, par)
}

func TestTSPHeldKarp_Errors(t *testing.T) {
	missing := [][]float64{
		{0, 1, inf},
		{1, 0, 1},
		{inf, 1, 0},
	}
	_, err := tsp.TSPHeldKarp(mustGraph(t, missing), tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrMissingEdge)

	negative := [][]float64{{0, -1}, {1, 0}}
	_, err = tsp.TSPHeldKarp(mustGraph(t, negative), tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)

	_, err = tsp.TSPHeldKarp(nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidConfiguration)

	empty := funcGraph{n: 0, w: func(int, int) (float64, error) { return 0, nil }}
	_, err = tsp.TSPHeldKarp(empty, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidConfiguration)

	huge := funcGraph{n: tsp.MaxHeldKarpNodes + 1, w: func(int, int) (float64, error) { return 1, nil }}
	_, err = tsp.TSPHeldKarp(huge, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidConfiguration)

	opts := tsp.DefaultOptions()
	opts.Workers = -1
	_, err = tsp.TSPHeldKarp(mustGraph(t, fourNode), opts)
	require.ErrorIs(t, err, tsp.ErrInvalidConfiguration)
}
