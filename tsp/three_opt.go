// Package tsp - 3-opt local search.
//
// A 3-opt move cuts the closed tour T at the arcs (a→b), (c→d) and (e→f),
// where a=T[i−1], b=T[i], c=T[j−1], d=T[j], e=T[k−1], f=T[k] and
// 1 ≤ i < j < k ≤ n. With P=T[:i], S1=T[i:j], S2=T[j:k] and the tail
// S3=T[k:n] the tour is rebuilt as P + X + Y + S3.
//
// Symmetric weights: (X, Y) ranges over the seven non-identity reconnections
// of {S1, rev(S1)} and {S2, rev(S2)}. Interior arcs keep their cost, so
//
//	Δ = w(a,first X) + w(last X,first Y) + w(last Y,f) − w(a,b) − w(c,d) − w(e,f).
//
// Asymmetric weights: reversing a segment changes its cost, so only the
// orientation-preserving swap P + S2 + S1 + S3 is tried (3-opt*), with the
// same boundary Δ.
//
// First improvement in a fixed (i, j, k) order, restarting after each move.
// Moves through missing (+Inf) edges are never taken.
//
// Complexity: O(n³) candidate moves per pass.
package tsp

import "math"

// segment names one of the two movable pieces of a 3-opt cut and its
// orientation.
type segment uint8

const (
	segS1  segment = iota // S1 forward
	segS1R                // S1 reversed
	segS2                 // S2 forward
	segS2R                // S2 reversed
)

var (
	symmetricMoves = [...][2]segment{
		{segS1R, segS2}, {segS1, segS2R}, {segS1R, segS2R},
		{segS2, segS1}, {segS2, segS1R}, {segS2R, segS1}, {segS2R, segS1R},
	}
	asymmetricMoves = [...][2]segment{{segS2, segS1}}
)

// ends returns the first and last vertex of s given b=first(S1),
// c=last(S1), d=first(S2), e=last(S2).
func (s segment) ends(b, c, d, e int) (first, last int) {
	switch s {
	case segS1:
		return b, c
	case segS1R:
		return c, b
	case segS2:
		return d, e
	default:
		return e, d
	}
}

// appendTo appends s, taken from s1 or s2, to out.
func (s segment) appendTo(out, s1, s2 []int) []int {
	seg := s1
	if s == segS2 || s == segS2R {
		seg = s2
	}
	if s == segS1 || s == segS2 {
		return append(out, seg...)
	}
	for p := len(seg) - 1; p >= 0; p-- {
		out = append(out, seg[p])
	}

	return out
}

// ThreeOpt improves tour on g by 3-opt until no improving move remains.
// The input is not modified; the result starts and ends at 0.
//
// Errors: ErrInvalidConfiguration, ErrNegativeWeight, ErrInvalidTour for a
// malformed tour, ErrMissingEdge if tour itself uses a missing edge.
func ThreeOpt(g Graph, tour []int, opts Options) (TSResult, error) {
	const method = "ThreeOpt"
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
	cur, cost := ws.threeOpt(cur, ws.cycleCost(cur))

	return TSResult{Tour: cur, Cost: round1e9(cost)}, nil
}

// threeOpt runs the local search on a finite-cost tour and returns the
// improved tour with its updated cost.
func (ws *weights) threeOpt(tour []int, cost float64) ([]int, float64) {
	moves := symmetricMoves[:]
	if !ws.symmetric() {
		moves = asymmetricMoves[:]
	}

	var (
		n                = ws.n
		i, j, k          int
		a, b, c, d, e, f int
		xf, xl, yf, yl   int
		removed, delta   float64
	)
	for improved := true; improved; {
		improved = false
	scan:
		for i = 1; i <= n-2; i++ {
			for j = i + 1; j <= n-1; j++ {
				for k = j + 1; k <= n; k++ {
					a, b = tour[i-1], tour[i]
					c, d = tour[j-1], tour[j]
					e, f = tour[k-1], tour[k]
					removed = ws.at(a, b) + ws.at(c, d) + ws.at(e, f)
					for _, mv := range moves {
						xf, xl = mv[0].ends(b, c, d, e)
						yf, yl = mv[1].ends(b, c, d, e)
						delta = ws.at(a, xf) + ws.at(xl, yf) + ws.at(yl, f) - removed
						if math.IsNaN(delta) || math.IsInf(delta, 0) || delta >= -moveEps {
							continue
						}
						tour = reconnect(tour, i, j, k, mv)
						cost += delta
						improved = true

						break scan
					}
				}
			}
		}
	}

	return tour, cost
}

// reconnect builds P + X + Y + S3 + [start] for the cut (i, j, k).
func reconnect(tour []int, i, j, k int, mv [2]segment) []int {
	n := len(tour) - 1
	out := make([]int, 0, n+1)
	out = append(out, tour[:i]...)
	out = mv[0].appendTo(out, tour[i:j], tour[j:k])
	out = mv[1].appendTo(out, tour[i:j], tour[j:k])
	out = append(out, tour[k:n]...)

	return append(out, tour[0])
}
