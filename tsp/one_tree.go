// Package tsp - Held–Karp 1-tree (Lagrangian) lower bound for symmetric TSP.
//
// For multipliers π define reduced costs c'(i,j) = w(i,j) + π_i + π_j. A
// minimum 1-tree T(π) is a minimum spanning tree over V\{0} plus the two
// cheapest edges at vertex 0, all under c'. Then
//
//	L(π) = c'(T(π)) − 2·Σ π_i
//
// is a lower bound on every tour cost. π follows the subgradient
// s_i = deg_T(i) − 2; the best L seen is returned.
//
// Step size: with a finite incumbent UB, t = α·(UB − L)/‖s‖², otherwise
// t = α/(1 + iter). The loop stops early when T(π) is itself a tour.
//
// Determinism: no RNG; Prim and root-edge selection break ties by index.
//
// Complexity: O(MaxIter · n²) time, O(n²) memory.
package tsp

import (
	"math"

	"github.com/sirupsen/logrus"
)

// OneTreeConfig controls the subgradient loop of OneTreeLowerBound.
type OneTreeConfig struct {
	// MaxIter is the number of subgradient iterations; values < 1 mean 1.
	MaxIter int

	// Alpha ∈ (0, 2) scales the step; other values fall back to 0.9.
	Alpha float64

	// UB is an optional incumbent tour cost driving the adaptive step.
	// Ignored unless finite and > 0.
	UB float64
}

// DefaultOneTreeConfig returns 32 iterations, α = 0.9 and no incumbent.
func DefaultOneTreeConfig() OneTreeConfig {
	return OneTreeConfig{
		MaxIter: 32,
		Alpha:   0.9,
		UB:      math.Inf(1),
	}
}

// OneTreeLowerBound returns the Held–Karp 1-tree bound of g rooted at
// vertex 0, stabilised to 1e-9. For n ≤ 2 it returns the only tour cost.
//
// Errors: ErrInvalidConfiguration (including asymmetric weights),
// ErrNegativeWeight, and ErrMissingEdge when no 1-tree exists (V\{0} is
// disconnected or vertex 0 has fewer than two finite edges).
func OneTreeLowerBound(g Graph, cfg OneTreeConfig, opts Options) (float64, error) {
	const method = "OneTreeLowerBound"
	if err := validateOptions(method, opts); err != nil {
		return 0, err
	}
	ws, err := loadWeights(method, g)
	if err != nil {
		return 0, err
	}
	if !ws.symmetric() {
		return 0, tspErrorf(method, "asymmetric weights", ErrInvalidConfiguration)
	}
	switch ws.n {
	case 1:
		return 0, nil
	case 2:
		c, err := ws.edge(method, 0, 1)
		if err != nil {
			return 0, err
		}

		return round1e9(2 * c), nil
	}
	if cfg.MaxIter < 1 {
		cfg.MaxIter = 1
	}
	if !(cfg.Alpha > 0 && cfg.Alpha < 2) {
		cfg.Alpha = 0.9
	}
	haveUB := cfg.UB > 0 && !math.IsInf(cfg.UB, 0)

	var (
		t     = newOneTree(ws)
		best  = math.Inf(-1)
		iter  int
		bound float64
		sumPi float64
		norm2 float64
		step  float64
		i, s  int
	)
	for iter = 0; iter < cfg.MaxIter; iter++ {
		reduced, ok := t.build()
		if !ok {
			return 0, tspErrorf(method, "no 1-tree rooted at 0", ErrMissingEdge)
		}

		sumPi, norm2 = 0, 0
		for i = 0; i < t.n; i++ {
			sumPi += t.pi[i]
			s = t.deg[i] - 2
			norm2 += float64(s * s)
		}
		bound = reduced - 2*sumPi
		best = math.Max(best, bound)
		if norm2 == 0 {
			break // T(π) is a tour
		}

		if haveUB {
			step = cfg.Alpha * math.Max(0, cfg.UB-bound) / norm2
		} else {
			step = cfg.Alpha / (1 + float64(iter))
		}
		if step == 0 {
			break
		}
		for i = 0; i < t.n; i++ {
			t.pi[i] += step * float64(t.deg[i]-2)
		}
	}
	opts.logger().WithFields(logrus.Fields{
		"n":          ws.n,
		"iterations": min(iter+1, cfg.MaxIter),
		"bound":      best,
	}).Debug("1-tree bound")

	return round1e9(best), nil
}

// oneTree holds the multipliers and Prim scratch space reused across
// subgradient iterations.
type oneTree struct {
	n      int
	ws     *weights
	pi     []float64
	deg    []int
	inTree []bool
	parent []int
	key    []float64
}

func newOneTree(ws *weights) *oneTree {
	return &oneTree{
		n:      ws.n,
		ws:     ws,
		pi:     make([]float64, ws.n),
		deg:    make([]int, ws.n),
		inTree: make([]bool, ws.n),
		parent: make([]int, ws.n),
		key:    make([]float64, ws.n),
	}
}

// reduced returns c'(u,v).
func (t *oneTree) reduced(u, v int) float64 { return t.ws.at(u, v) + t.pi[u] + t.pi[v] }

// build computes a minimum 1-tree under the current π, fills t.deg and
// returns its reduced cost. ok is false when no 1-tree exists.
func (t *oneTree) build() (cost float64, ok bool) {
	var (
		inf     = math.Inf(1)
		v, best int
		c       float64
	)
	for v = 0; v < t.n; v++ {
		t.deg[v] = 0
		t.inTree[v] = false
		t.parent[v] = -1
		t.key[v] = inf
	}

	// Prim over V\{0}, seeded at 1.
	t.key[1] = 0
	for range t.n - 1 {
		best = -1
		for v = 1; v < t.n; v++ {
			if !t.inTree[v] && (best < 0 || t.key[v] < t.key[best]) {
				best = v
			}
		}
		if best < 0 || math.IsInf(t.key[best], 1) {
			return 0, false
		}
		t.inTree[best] = true
		if p := t.parent[best]; p >= 0 {
			cost += t.reduced(best, p)
			t.deg[best]++
			t.deg[p]++
		}
		for v = 1; v < t.n; v++ {
			if t.inTree[v] {
				continue
			}
			if c = t.reduced(best, v); c < t.key[v] {
				t.key[v], t.parent[v] = c, best
			}
		}
	}

	// Two cheapest edges at the root.
	var (
		m1, m2 = inf, inf
		t1, t2 = -1, -1
	)
	for v = 1; v < t.n; v++ {
		c = t.reduced(0, v)
		switch {
		case c < m1:
			m2, t2 = m1, t1
			m1, t1 = c, v
		case c < m2:
			m2, t2 = c, v
		}
	}
	if math.IsInf(m2, 1) {
		return 0, false
	}
	cost += m1 + m2
	t.deg[0] += 2
	t.deg[t1]++
	t.deg[t2]++

	return cost, true
}
