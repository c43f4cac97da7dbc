// Package tsp - Christofides-style tour construction.
//
// TSPChristofides builds a tour from a minimum spanning tree:
//
//  1. Prim's MST rooted at 0 (ties by index).
//  2. Odd-degree vertices are paired greedily: the first unmatched odd
//     vertex takes its nearest unmatched odd partner.
//  3. Hierholzer's algorithm walks the MST ∪ matching multigraph from 0.
//  4. Repeated vertices are skipped, and the tour is oriented so that
//     Tour[1] < Tour[n−1].
//
// The greedy pairing is not a minimum-weight perfect matching, so the
// 1.5·OPT factor of Christofides is not claimed; the result is a valid tour.
// Symmetric graphs only.
//
// Complexity: O(n²) time, O(n) extra space besides the weight buffer.
package tsp

import (
	"math"

	"github.com/sirupsen/logrus"
)

// TSPChristofides returns the tour described above, optionally polished by
// TwoOpt and ThreeOpt (opts.TwoOpt, opts.ThreeOpt).
//
// Errors: ErrInvalidConfiguration (including asymmetric weights),
// ErrNegativeWeight, and ErrMissingEdge when the finite edges do not connect
// the graph, an odd vertex has no finite partner, or the shortcut tour needs
// a missing edge.
func TSPChristofides(g Graph, opts Options) (TSResult, error) {
	const method = "TSPChristofides"
	if err := validateOptions(method, opts); err != nil {
		return TSResult{}, err
	}
	ws, err := loadWeights(method, g)
	if err != nil {
		return TSResult{}, err
	}
	if !ws.symmetric() {
		return TSResult{}, tspErrorf(method, "asymmetric weights", ErrInvalidConfiguration)
	}
	n := ws.n
	if n == 1 {
		return trivialTour(), nil
	}

	adj, err := ws.spanningTree(method)
	if err != nil {
		return TSResult{}, err
	}
	if err = ws.matchOdd(method, adj); err != nil {
		return TSResult{}, err
	}
	tour := shortcut(eulerCircuit(adj, 0), n)
	if tour[1] > tour[n-1] {
		tour = ReverseTour(tour)
	}
	for i := 0; i < n; i++ {
		if _, err = ws.edge(method, tour[i], tour[i+1]); err != nil {
			return TSResult{}, err
		}
	}
	cost := ws.cycleCost(tour)

	if opts.TwoOpt {
		tour, cost = ws.twoOpt(tour, cost)
	}
	if opts.ThreeOpt {
		tour, cost = ws.threeOpt(tour, cost)
	}
	opts.logger().WithFields(logrus.Fields{
		"solver":    Christofides.String(),
		"cost":      cost,
		"two_opt":   opts.TwoOpt,
		"three_opt": opts.ThreeOpt,
	}).Debug("solved")

	return TSResult{Tour: tour, Cost: round1e9(cost)}, nil
}

// spanningTree returns the adjacency lists of Prim's minimum spanning tree
// rooted at 0.
func (ws *weights) spanningTree(method string) ([][]int, error) {
	var (
		n      = ws.n
		inTree = make([]bool, n)
		key    = make([]float64, n)
		parent = make([]int, n)
		adj    = make([][]int, n)
		u, v   int
	)
	for v = range key {
		key[v] = math.Inf(1)
		parent[v] = -1
	}
	key[0] = 0

	for range n {
		u = -1
		for v = 0; v < n; v++ {
			if !inTree[v] && (u < 0 || key[v] < key[u]) {
				u = v
			}
		}
		if math.IsInf(key[u], 1) {
			return nil, tspErrorf(method, "vertex %d unreachable", ErrMissingEdge, u)
		}
		inTree[u] = true
		if p := parent[u]; p >= 0 {
			adj[u] = append(adj[u], p)
			adj[p] = append(adj[p], u)
		}
		for v = 0; v < n; v++ {
			if !inTree[v] && ws.at(u, v) < key[v] {
				key[v], parent[v] = ws.at(u, v), u
			}
		}
	}

	return adj, nil
}

// matchOdd adds a greedy pairing of the odd-degree vertices of adj to adj.
func (ws *weights) matchOdd(method string, adj [][]int) error {
	var odd []int
	for v := range adj {
		if len(adj[v])&1 == 1 {
			odd = append(odd, v)
		}
	}
	for len(odd) > 1 {
		u := odd[0]
		odd = odd[1:]
		best, bestW := -1, math.Inf(1)
		for i, v := range odd {
			if ws.at(u, v) < bestW {
				best, bestW = i, ws.at(u, v)
			}
		}
		if best < 0 {
			return tspErrorf(method, "odd vertex %d has no finite partner", ErrMissingEdge, u)
		}
		v := odd[best]
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
		odd = append(odd[:best], odd[best+1:]...)
	}

	return nil
}

// eulerCircuit returns a closed walk from start using every edge of the
// undirected multigraph adj exactly once (Hierholzer). adj is consumed.
func eulerCircuit(adj [][]int, start int) []int {
	var (
		circuit []int
		stack   = []int{start}
	)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if len(adj[u]) == 0 {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]
			continue
		}
		v := adj[u][len(adj[u])-1]
		adj[u] = adj[u][:len(adj[u])-1]
		for i, x := range adj[v] {
			if x == u {
				adj[v] = append(adj[v][:i], adj[v][i+1:]...)
				break
			}
		}
		stack = append(stack, v)
	}

	return circuit
}

// shortcut keeps the first visit of every vertex of walk and closes the
// tour at walk[0].
func shortcut(walk []int, n int) []int {
	var (
		seen = make([]bool, n)
		tour = make([]int, 0, n+1)
	)
	for _, v := range walk {
		if !seen[v] {
			seen[v] = true
			tour = append(tour, v)
		}
	}

	return append(tour, walk[0])
}
