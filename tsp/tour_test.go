package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/tsp"
)

func TestValidateTour(t *testing.T) {
	cases := []struct {
		name string
		tour []int
		n    int
		want error
	}{
		{"single", []int{0}, 1, nil},
		{"single wrong", []int{0, 0}, 1, tsp.ErrInvalidTour},
		{"valid", []int{0, 2, 1, 3, 0}, 4, nil},
		{"short", []int{0, 1, 0}, 4, tsp.ErrInvalidTour},
		{"open", []int{0, 1, 2, 3, 1}, 4, tsp.ErrInvalidTour},
		{"wrong start", []int{1, 0, 2, 3, 1}, 4, tsp.ErrInvalidTour},
		{"repeat", []int{0, 1, 1, 2, 0}, 4, tsp.ErrInvalidTour},
		{"out of range", []int{0, 1, 7, 2, 0}, 4, tsp.ErrInvalidTour},
		{"zero n", nil, 0, tsp.ErrInvalidConfiguration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidateTour(tc.tour, tc.n)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestTourCost(t *testing.T) {
	g := mustGraph(t, fourNode)

	c, err := tsp.TourCost(g, []int{0, 1, 3, 2, 0})
	require.NoError(t, err)
	require.Equal(t, 80.0, c)

	c, err = tsp.TourCost(g, []int{0})
	require.NoError(t, err)
	require.Zero(t, c)

	_, err = tsp.TourCost(g, []int{0, 9, 0})
	require.ErrorIs(t, err, tsp.ErrInvalidTour)

	missing := mustGraph(t, [][]float64{{0, inf}, {1, 0}})
	_, err = tsp.TourCost(missing, []int{0, 1, 0})
	require.ErrorIs(t, err, tsp.ErrMissingEdge)

	_, err = tsp.TourCost(nil, []int{0})
	require.ErrorIs(t, err, tsp.ErrInvalidConfiguration)
}

func TestReverseTour(t *testing.T) {
	require.Equal(t, []int{0, 2, 3, 1, 0}, tsp.ReverseTour([]int{0, 1, 3, 2, 0}))
}
