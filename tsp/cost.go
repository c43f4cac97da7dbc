package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms/opt levels without affecting optimality.
const roundScale = 1e9

// round1e9 rounds x to the nearest 1e-9; ±Inf and NaN pass through.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// TourCost sums w(tour[i], tour[i+1]) along tour using g.
// A single-vertex tour [0] costs 0.
//
// Errors: ErrInvalidConfiguration for a nil graph, ErrInvalidTour for
// out-of-range indices, ErrMissingEdge for an undefined edge,
// ErrNegativeWeight for a negative or NaN weight.
//
// Complexity: O(len(tour)).
func TourCost(g Graph, tour []int) (float64, error) {
	const method = "TourCost"
	if g == nil {
		return 0, tspErrorf(method, "nil graph", ErrInvalidConfiguration)
	}
	var (
		n   = g.NodeCount()
		sum float64
		i   int
		u   int
		v   int
		w   float64
		err error
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, tspErrorf(method, "edge %d→%d outside [0,%d)", ErrInvalidTour, u, v, n)
		}
		if u == v {
			continue
		}
		w, err = g.Weight(u, v)
		if err != nil || math.IsInf(w, 1) {
			return 0, tspErrorf(method, "edge %d→%d", ErrMissingEdge, u, v)
		}
		if math.IsNaN(w) || w < 0 {
			return 0, tspErrorf(method, "w(%d,%d)=%v", ErrNegativeWeight, u, v, w)
		}
		sum += w
	}

	return round1e9(sum), nil
}

// cycleCost sums the prefetched weights along a closed tour.
func (ws *weights) cycleCost(tour []int) float64 {
	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		sum += ws.at(tour[i], tour[i+1])
	}

	return sum
}
