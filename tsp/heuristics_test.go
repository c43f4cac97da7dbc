package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/tsp"
)

func TestTSPNearestNeighbor_Greedy(t *testing.T) {
	// From 0 the closest is 1 (10); from 1 it is 3 (25); then 2.
	res, err := tsp.TSPNearestNeighbor(mustGraph(t, fourNode), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2, 0}, res.Tour)
	require.Equal(t, 80.0, res.Cost)
}

func TestTSPNearestNeighbor_TiesPickSmallestIndex(t *testing.T) {
	g := mustGraph(t, [][]float64{
		{0, 2, 2, 2},
		{2, 0, 2, 2},
		{2, 2, 0, 2},
		{2, 2, 2, 0},
	})
	res, err := tsp.TSPNearestNeighbor(g, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
}

func TestTSPNearestNeighbor_NeverBelowOptimum(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for trial := 0; trial < 10; trial++ {
		g := mustGraph(t, randomRows(rng, 8, trial%2 == 1))
		opt, err := tsp.TSPHeldKarp(g, tsp.DefaultOptions())
		require.NoError(t, err)

		plain, err := tsp.TSPNearestNeighbor(g, tsp.DefaultOptions())
		require.NoError(t, err)
		requireTour(t, g, plain)
		require.GreaterOrEqual(t, plain.Cost, opt.Cost-1e-9)

		opts := tsp.DefaultOptions()
		opts.TwoOpt = true
		polished, err := tsp.TSPNearestNeighbor(g, opts)
		require.NoError(t, err)
		requireTour(t, g, polished)
		require.LessOrEqual(t, polished.Cost, plain.Cost+1e-9)
		require.GreaterOrEqual(t, polished.Cost, opt.Cost-1e-9)
	}
}

func TestTSPNearestNeighbor_MissingEdge(t *testing.T) {
	g := mustGraph(t, [][]float64{
		{0, 1, inf},
		{1, 0, 1},
		{inf, 1, 0},
	})
	_, err := tsp.TSPNearestNeighbor(g, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrMissingEdge)
}

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	// Unit square corners 0(0,0) 1(1,0) 2(1,1) 3(0,1); 0→2→1→3 crosses.
	const d = 1.4142135623730951
	g := mustGraph(t, [][]float64{
		{0, 1, d, 1},
		{1, 0, 1, d},
		{d, 1, 0, 1},
		{1, d, 1, 0},
	})
	res, err := tsp.TwoOpt(g, []int{0, 2, 1, 3, 0}, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 4.0, res.Cost)
	requireTour(t, g, res)

	_, err = tsp.TwoOpt(g, []int{0, 1, 1, 3, 0}, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidTour)
}

func TestTSPBruteForce(t *testing.T) {
	res, err := tsp.TSPBruteForce(mustGraph(t, fourNode), tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2, 0}, res.Tour) // first minimum in lexicographic order
	require.Equal(t, 80.0, res.Cost)

	big := funcGraph{n: tsp.MaxBruteForceNodes + 1, w: func(int, int) (float64, error) { return 1, nil }}
	_, err = tsp.TSPBruteForce(big, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidConfiguration)
}

func TestSolve_Dispatch(t *testing.T) {
	g := mustGraph(t, fourNode)
	for _, algo := range tsp.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			opts := exactOptions()
			opts.Algo = algo
			res, err := tsp.Solve(g, opts)
			require.NoError(t, err)
			require.Equal(t, 80.0, res.Cost)

			parsed, err := tsp.ParseAlgorithm(algo.String())
			require.NoError(t, err)
			require.Equal(t, algo, parsed)
		})
	}

	opts := tsp.DefaultOptions()
	opts.Algo = tsp.Algorithm(99)
	_, err := tsp.Solve(g, opts)
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)

	_, err = tsp.ParseAlgorithm("simulated-annealing")
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
}

func TestSolveMatrix(t *testing.T) {
	m := mustGraph(t, fourNode).Matrix()
	res, err := tsp.SolveMatrix(m, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 80.0, res.Cost)

	_, err = tsp.SolveMatrix(nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidConfiguration)
}
