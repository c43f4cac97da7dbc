package tsp

import (
	"math"

	"github.com/sirupsen/logrus"
)

// TSPNearestNeighbor builds a tour greedily: starting at 0, it repeatedly
// moves to the closest unvisited vertex (ties go to the smallest index) and
// finally returns to 0. With opts.TwoOpt and opts.ThreeOpt the tour is then
// improved by TwoOpt and ThreeOpt, in that order.
//
// The result is a valid tour but not necessarily optimal.
//
// Errors: ErrInvalidConfiguration, ErrNegativeWeight, and ErrMissingEdge when
// every unvisited vertex is unreachable or the closing edge is missing.
//
// Complexity: O(n²) time, O(n) extra space.
func TSPNearestNeighbor(g Graph, opts Options) (TSResult, error) {
	const method = "TSPNearestNeighbor"
	if err := validateOptions(method, opts); err != nil {
		return TSResult{}, err
	}
	ws, err := loadWeights(method, g)
	if err != nil {
		return TSResult{}, err
	}
	n := ws.n
	if n == 1 {
		return trivialTour(), nil
	}

	var (
		tour    = make([]int, 1, n+1)
		visited = make([]bool, n)
		cur     = 0
		best    int
		bestW   float64
		step, v int
	)
	visited[0] = true
	for step = 1; step < n; step++ {
		best, bestW = -1, math.Inf(1)
		for v = 1; v < n; v++ {
			if !visited[v] && ws.at(cur, v) < bestW {
				best, bestW = v, ws.at(cur, v)
			}
		}
		if best < 0 {
			return TSResult{}, tspErrorf(method, "no edge leaves %d", ErrMissingEdge, cur)
		}
		visited[best] = true
		tour = append(tour, best)
		cur = best
	}
	if _, err = ws.edge(method, cur, 0); err != nil {
		return TSResult{}, err
	}
	tour = append(tour, 0)
	cost := ws.cycleCost(tour)

	if opts.TwoOpt {
		tour, cost = ws.twoOpt(tour, cost)
	}
	if opts.ThreeOpt {
		tour, cost = ws.threeOpt(tour, cost)
	}
	opts.logger().WithFields(logrus.Fields{
		"solver":    NearestNeighbor.String(),
		"cost":      cost,
		"two_opt":   opts.TwoOpt,
		"three_opt": opts.ThreeOpt,
	}).Debug("solved")

	return TSResult{Tour: tour, Cost: round1e9(cost)}, nil
}
