package tsp

// ValidateTour reports whether tour is a closed Hamiltonian cycle over n
// vertices starting and ending at vertex 0:
//
//	n == 1: tour == [0]
//	n ≥ 2:  len(tour) == n+1, tour[0] == tour[n] == 0,
//	        each vertex of [0, n) appears exactly once in tour[0:n].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	const method = "ValidateTour"
	if n <= 0 {
		return tspErrorf(method, "n=%d", ErrInvalidConfiguration, n)
	}
	if n == 1 {
		if len(tour) != 1 || tour[0] != 0 {
			return tspErrorf(method, "single-vertex tour must be [0], got %v", ErrInvalidTour, tour)
		}

		return nil
	}
	if len(tour) != n+1 {
		return tspErrorf(method, "len=%d, want %d", ErrInvalidTour, len(tour), n+1)
	}
	if tour[0] != 0 || tour[n] != 0 {
		return tspErrorf(method, "tour must start and end at 0, got %v", ErrInvalidTour, tour)
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return tspErrorf(method, "vertex %d outside [0,%d)", ErrInvalidTour, v, n)
		}
		if seen[v] {
			return tspErrorf(method, "vertex %d repeated", ErrInvalidTour, v)
		}
		seen[v] = true
	}

	return nil
}

// ReverseTour returns the same cycle traversed in the opposite direction,
// still anchored at vertex 0.
func ReverseTour(tour []int) []int {
	out := make([]int, len(tour))
	for i := range tour {
		out[i] = tour[len(tour)-1-i]
	}

	return out
}

// trivialTour is the single-vertex answer shared by every solver.
func trivialTour() TSResult {
	return TSResult{Tour: []int{0}, Cost: 0}
}
