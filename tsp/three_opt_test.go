package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/tsp"
)

// stuckDirected is a directed instance where 2-opt cannot improve
// 0→1→2→3→4→0 (cost 23) but the segment swap reaches the optimum 17.
var stuckDirected = [][]float64{
	{0, 5, 9, 7, 3},
	{1, 0, 6, 8, 9},
	{7, 9, 0, 3, 9},
	{3, 9, 9, 0, 1},
	{8, 3, 1, 3, 0},
}

func TestThreeOpt_SegmentSwapOnDirected(t *testing.T) {
	g := mustGraph(t, stuckDirected)
	start := []int{0, 1, 2, 3, 4, 0}

	two, err := tsp.TwoOpt(g, start, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 23.0, two.Cost)

	three, err := tsp.ThreeOpt(g, start, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 3, 4, 1, 0}, three.Tour)
	require.Equal(t, 17.0, three.Cost)
	requireTour(t, g, three)
	require.Equal(t, []int{0, 1, 2, 3, 4, 0}, start, "input must not be modified")
}

func TestThreeOpt_UncrossesSquare(t *testing.T) {
	const d = 1.4142135623730951
	g := mustGraph(t, [][]float64{
		{0, 1, d, 1},
		{1, 0, 1, d},
		{d, 1, 0, 1},
		{1, d, 1, 0},
	})
	res, err := tsp.ThreeOpt(g, []int{0, 2, 1, 3, 0}, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
	require.Equal(t, 4.0, res.Cost)
}

func TestThreeOpt_NeverWorseNeverBelowOptimum(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 40; trial++ {
		n := 3 + rng.Intn(6)
		g := mustGraph(t, randomRows(rng, n, trial%2 == 0))
		opt, err := tsp.TSPHeldKarp(g, tsp.DefaultOptions())
		require.NoError(t, err)

		tour := []int{0}
		for _, v := range rng.Perm(n-1) {
			tour = append(tour, v+1)
		}
		tour = append(tour, 0)
		before, err := tsp.TourCost(g, tour)
		require.NoError(t, err)

		res, err := tsp.ThreeOpt(g, tour, tsp.DefaultOptions())
		require.NoError(t, err)
		requireTour(t, g, res)
		require.LessOrEqual(t, res.Cost, before+1e-9)
		require.GreaterOrEqual(t, res.Cost, opt.Cost-1e-9)
	}
}

func TestThreeOpt_Errors(t *testing.T) {
	g := mustGraph(t, fourNode)
	_, err := tsp.ThreeOpt(g, []int{0, 1, 2, 0}, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidTour)

	holed := mustGraph(t, [][]float64{
		{0, 1, 1, 1},
		{1, 0, inf, 1},
		{1, inf, 0, 1},
		{1, 1, 1, 0},
	})
	_, err = tsp.ThreeOpt(holed, []int{0, 1, 2, 3, 0}, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrMissingEdge)

	res, err := tsp.ThreeOpt(mustGraph(t, [][]float64{{0}}), []int{0}, tsp.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []int{0}, res.Tour)
}

func TestTSPNearestNeighbor_ThreeOpt(t *testing.T) {
	g := mustGraph(t, stuckDirected)
	opts := tsp.DefaultOptions()
	opts.TwoOpt, opts.ThreeOpt = true, true

	res, err := tsp.TSPNearestNeighbor(g, opts)
	require.NoError(t, err)
	requireTour(t, g, res)
	require.Equal(t, 17.0, res.Cost)
}
