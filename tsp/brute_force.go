package tsp

import "math"

// TSPBruteForce enumerates every ordering of vertices 1..n-1 in
// lexicographic order and keeps the first cheapest cycle. It is the oracle
// the other solvers are checked against.
//
// Errors: ErrInvalidConfiguration (including n > MaxBruteForceNodes),
// ErrNegativeWeight, and ErrMissingEdge when no ordering uses only
// defined edges.
//
// Complexity: O(n!·n) time, O(n) space.
func TSPBruteForce(g Graph, opts Options) (TSResult, error) {
	const method = "TSPBruteForce"
	if err := validateOptions(method, opts); err != nil {
		return TSResult{}, err
	}
	ws, err := loadWeights(method, g)
	if err != nil {
		return TSResult{}, err
	}
	n := ws.n
	if err = validateSize(method, n, MaxBruteForceNodes); err != nil {
		return TSResult{}, err
	}
	if n == 1 {
		return trivialTour(), nil
	}

	var (
		perm     = make([]int, n+1) // perm[0] == perm[n] == 0
		best     []int
		bestCost = math.Inf(1)
		c        float64
	)
	for i := 1; i < n; i++ {
		perm[i] = i
	}
	for {
		c = ws.cycleCost(perm)
		if c < bestCost {
			bestCost = c
			best = append(best[:0], perm...)
		}
		if !nextPermutation(perm[1:n]) {
			break
		}
	}
	if best == nil {
		return TSResult{}, tspErrorf(method, "no Hamiltonian cycle", ErrMissingEdge)
	}

	return TSResult{Tour: best, Cost: round1e9(bestCost)}, nil
}

// nextPermutation rearranges p into its lexicographic successor and reports
// false once p is the last (descending) permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
