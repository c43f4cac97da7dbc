package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/builder"
	"github.com/katalvlaran/hamilton/tsp"
)

func TestTSPChristofides_Small(t *testing.T) {
	g := mustGraph(t, fourNode)
	res, err := tsp.TSPChristofides(g, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2, 0}, res.Tour)
	require.Equal(t, 80.0, res.Cost)

	res, err = tsp.TSPChristofides(mustGraph(t, [][]float64{{0}}), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Tour)

	res, err = tsp.TSPChristofides(mustGraph(t, [][]float64{{0, 2}, {2, 0}}), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 0}, res.Tour)
	require.Equal(t, 4.0, res.Cost)
}

func TestTSPChristofides_CircleIsPerimeter(t *testing.T) {
	for _, n := range []int{5, 7, 10} {
		d, err := builder.Circle(n)
		require.NoError(t, err)
		g, err := tsp.NewMatrixGraph(d)
		require.NoError(t, err)

		res, err := tsp.TSPChristofides(g, tsp.DefaultOptions())
		require.NoError(t, err)
		requireTour(t, g, res)
		require.InDelta(t, builder.CircleOptimum(n, 1), res.Cost, 1e-9, "n=%d", n)
	}
}

func TestTSPChristofides_NeverBelowOptimum(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for trial := 0; trial < 30; trial++ {
		n := 2 + rng.Intn(8)
		g := mustGraph(t, randomRows(rng, n, false))
		opt, err := tsp.TSPHeldKarp(g, tsp.DefaultOptions())
		require.NoError(t, err)

		plain, err := tsp.TSPChristofides(g, tsp.DefaultOptions())
		require.NoError(t, err)
		requireTour(t, g, plain)
		require.GreaterOrEqual(t, plain.Cost, opt.Cost-1e-9)

		opts := tsp.DefaultOptions()
		opts.TwoOpt, opts.ThreeOpt = true, true
		polished, err := tsp.TSPChristofides(g, opts)
		require.NoError(t, err)
		requireTour(t, g, polished)
		require.LessOrEqual(t, polished.Cost, plain.Cost+1e-9)
		require.GreaterOrEqual(t, polished.Cost, opt.Cost-1e-9)
	}
}

func TestTSPChristofides_Errors(t *testing.T) {
	_, err := tsp.TSPChristofides(mustGraph(t, stuckDirected), tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidConfiguration)

	// {0, 1} and {2, 3} are not connected.
	_, err = tsp.TSPChristofides(mustGraph(t, [][]float64{
		{0, 1, inf, inf},
		{1, 0, inf, inf},
		{inf, inf, 0, 1},
		{inf, inf, 1, 0},
	}), tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrMissingEdge)

	_, err = tsp.TSPChristofides(nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidConfiguration)
}
