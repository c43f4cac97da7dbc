// Package tsp - 2-opt local search.
//
// A 2-opt move on a closed tour T cuts the arcs (a→b) and (c→d), where
// a=T[i−1], b=T[i], c=T[k], d=T[k+1] for 1 ≤ i < k ≤ n−1, and reconnects
// (a→c), (b→d) by reversing T[i..k]. On symmetric weights
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d).
//
// On asymmetric weights the reversed segment changes direction, so Δ also
// includes the difference between its two traversal costs.
//
// The scan is deterministic first-improvement: after each accepted move it
// restarts from i = 1. Moves through missing (+Inf) edges are never taken.
//
// Complexity: O(n²) checks per pass (O(n³) on asymmetric weights).
package tsp

import "math"

// moveEps is the minimal improvement a local-search move must achieve.
const moveEps = 1e-12

// TwoOpt improves tour on g by 2-opt until no improving move remains.
// The input is not modified; the result starts and ends at 0.
//
// Errors: ErrInvalidConfiguration, ErrNegativeWeight, ErrInvalidTour for a
// malformed tour, ErrMissingEdge if tour itself uses a missing edge.
func TwoOpt(g Graph, tour []int, opts Options) (TSResult, error) {
	const method = "TwoOpt"
	if err := validateOptions(method, opts); err != nil {
		return TSResult{}, err
	}
	ws, err := loadWeights(method, g)
	if err != nil {
		return TSResult{}, err
	}
	if err = ValidateTour(tour, ws.n); err != nil {
		return TSResult{}, err
	}
	if ws.n == 1 {
		return trivialTour(), nil
	}
	for i := 0; i < ws.n; i++ {
		if _, err = ws.edge(method, tour[i], tour[i+1]); err != nil {
			return TSResult{}, err
		}
	}

	cur := make([]int, len(tour))
	copy(cur, tour)
	cur, cost := ws.twoOpt(cur, ws.cycleCost(cur))

	return TSResult{Tour: cur, Cost: round1e9(cost)}, nil
}

// twoOpt runs the local search in place on a finite-cost tour and returns it
// with its updated cost.
func (ws *weights) twoOpt(tour []int, cost float64) ([]int, float64) {
	var (
		n          = ws.n
		symmetric  = ws.symmetric()
		a, b, c, d int
		i, k       int
		delta      float64
	)
	for improved := true; improved; {
		improved = false
	scan:
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d = tour[i-1], tour[i], tour[k], tour[k+1]
				delta = ws.at(a, c) + ws.at(b, d) - ws.at(a, b) - ws.at(c, d)
				if !symmetric {
					delta += ws.pathCost(tour[i:k+1], true) - ws.pathCost(tour[i:k+1], false)
				}
				if math.IsNaN(delta) || math.IsInf(delta, 0) || delta >= -moveEps {
					continue
				}
				reverseSegment(tour, i, k)
				cost += delta
				improved = true

				break scan
			}
		}
	}

	return tour, cost
}

// pathCost sums the arcs along seg, backwards when reversed is set.
func (ws *weights) pathCost(seg []int, reversed bool) float64 {
	var sum float64
	for p := 0; p+1 < len(seg); p++ {
		if reversed {
			sum += ws.at(seg[p+1], seg[p])
		} else {
			sum += ws.at(seg[p], seg[p+1])
		}
	}

	return sum
}

// reverseSegment reverses tour[i..k] in place.
func reverseSegment(tour []int, i, k int) {
	for ; i < k; i, k = i+1, k-1 {
		tour[i], tour[k] = tour[k], tour[i]
	}
}
