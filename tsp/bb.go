// Package tsp - Branch-and-Bound (best-first search with reduced-cost bounds).
//
// TSPBranchAndBound explores partial tours rooted at vertex 0. Each search
// node owns a reduced cost matrix and a lower bound on every completion:
//
//   - Root: reduce(W) where W is the weight matrix; bound = reduction cost.
//   - Child P→x with last = P.vertex: copy P's matrix, remember the reduced
//     weight r = P.m[last][x], forbid row last, column x, the reverse edge
//     x→last and (unless x is the final vertex) the premature closure x→0;
//     reduce again for extra. bound = P.bound + r + extra.
//   - A child that visits every vertex is terminal; its bound is the exact
//     cycle cost taken from W, so popping it yields the answer.
//
// The frontier is kept sorted by bound (insertion order among ties). Each
// iteration pops the minimum, returns it if terminal, otherwise inserts its
// children (ascending vertex order) and truncates the frontier to
// Options.FrontierCap. With NoFrontierCap this is the classical exact
// algorithm; with a finite cap it is a beam search whose result is never
// below the optimum and which may exhaust (ErrSearchExhausted).
//
// Nodes live in an arena addressed by index. A node stores its parent's
// index and the elapsed path is rebuilt on demand. Matrices are released as
// soon as a node is expanded or pruned.
//
// Complexity: worst case exponential; per expansion O(k·n²) for k children.
package tsp

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hamilton/bitset"
)

// searchNode is one state of the search. The root has parent == -1.
type searchNode struct {
	parent     int
	vertex     int           // vertex committed last
	depth      int           // number of vertices on the elapsed path
	remaining  bitset.BitSet // vertices not yet visited
	m          costMatrix    // nil slice once expanded or pruned
	lowerBound float64
}

// searchTree is the arena of every node created by one search.
type searchTree struct {
	ws    *weights
	nodes []searchNode
}

// newSearchTree creates the arena and its root node (index 0).
func newSearchTree(ws *weights) *searchTree {
	m := newCostMatrix(ws)
	lb := m.reduce()

	t := &searchTree{ws: ws}
	t.nodes = append(t.nodes, searchNode{
		parent:     -1,
		vertex:     0,
		depth:      1,
		remaining:  bitset.Full(ws.n).Without(0),
		m:          m,
		lowerBound: lb,
	})

	return t
}

// add appends n to the arena and returns its index.
func (t *searchTree) add(n searchNode) int {
	t.nodes = append(t.nodes, n)

	return len(t.nodes) - 1
}

// release drops the matrix of node id.
func (t *searchTree) release(id int) {
	t.nodes[id].m = costMatrix{}
}

// path rebuilds the elapsed path [0, …, vertex] of node id.
func (t *searchTree) path(id int) []int {
	out := make([]int, t.nodes[id].depth)
	for i := len(out) - 1; id >= 0; i-- {
		out[i] = t.nodes[id].vertex
		id = t.nodes[id].parent
	}

	return out
}

// child builds the state reached from node pid by visiting x next.
// It only reads the arena, so several children may be built concurrently.
func (t *searchTree) child(pid, x int) searchNode {
	var (
		p    = &t.nodes[pid]
		last = p.vertex
		inf  = math.Inf(1)
	)
	node := searchNode{
		parent:    pid,
		vertex:    x,
		depth:     p.depth + 1,
		remaining: p.remaining.Without(x),
	}

	if node.remaining.IsEmpty() {
		tour := append(t.path(pid), x, 0)
		node.lowerBound = t.ws.cycleCost(tour)

		return node
	}

	edge := p.m.at(last, x)
	if math.IsInf(edge, 1) {
		node.lowerBound = inf

		return node
	}
	m := p.m.clone()
	m.blockRow(last)
	m.blockCol(x)
	m.set(x, last, inf)
	m.set(x, 0, inf)
	extra := m.reduce()

	node.m = m
	node.lowerBound = p.lowerBound + edge + extra

	return node
}

// expand builds one child per remaining vertex of pid, in ascending vertex
// order. With workers > 1 the children are built in parallel.
func (t *searchTree) expand(pid, workers int) []searchNode {
	cands := t.nodes[pid].remaining.Elements()
	out := make([]searchNode, len(cands))
	if workers <= 1 || len(cands) < 2 {
		for i, x := range cands {
			out[i] = t.child(pid, x)
		}

		return out
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, x := range cands {
		eg.Go(func() error {
			out[i] = t.child(pid, x)
			return nil
		})
	}
	_ = eg.Wait() // children never fail

	return out
}

// TSPBranchAndBound solves the TSP by best-first branch-and-bound with a
// frontier of at most opts.FrontierCap nodes.
//
// Errors:
//   - ErrInvalidConfiguration for FrontierCap ≤ 0, bad options, nil/empty
//     graphs or n > MaxBranchAndBoundNodes.
//   - ErrNegativeWeight for negative or NaN weights.
//   - ErrSearchExhausted if the capped frontier empties without a tour.
//   - ErrMissingEdge if the uncapped search proves no tour exists.
//   - ErrTimeLimit if opts.TimeLimit elapses.
func TSPBranchAndBound(g Graph, opts Options) (TSResult, error) {
	const method = "TSPBranchAndBound"
	if err := validateOptions(method, opts); err != nil {
		return TSResult{}, err
	}
	if opts.FrontierCap <= 0 {
		return TSResult{}, tspErrorf(method, "frontier cap=%d", ErrInvalidConfiguration, opts.FrontierCap)
	}
	ws, err := loadWeights(method, g)
	if err != nil {
		return TSResult{}, err
	}
	if err = validateSize(method, ws.n, MaxBranchAndBoundNodes); err != nil {
		return TSResult{}, err
	}
	if ws.n == 1 {
		return trivialTour(), nil
	}

	var (
		log      = opts.logger().WithField("solver", BranchAndBound.String())
		tree     = newSearchTree(ws)
		front    frontier
		pruned   int
		popped   int
		deadline time.Time
		workers  = opts.workers()
	)
	if opts.TimeLimit > 0 {
		deadline = time.Now().Add(opts.TimeLimit)
	}
	front.push(0, tree.nodes[0].lowerBound)

	for {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return TSResult{}, tspErrorf(method, "after %d expansions", ErrTimeLimit, popped)
		}
		item, ok := front.popMin()
		if !ok {
			break
		}
		popped++
		node := tree.nodes[item.id]
		log.WithFields(logrus.Fields{
			"node":  item.id,
			"depth": node.depth,
			"bound": item.bound,
		}).Debug("pop")

		if node.remaining.IsEmpty() {
			tour := append(tree.path(item.id), 0)
			log.WithFields(logrus.Fields{
				"cost":     node.lowerBound,
				"expanded": popped,
				"nodes":    len(tree.nodes),
			}).Debug("solved")

			return TSResult{Tour: tour, Cost: round1e9(node.lowerBound)}, nil
		}

		children := tree.expand(item.id, workers)
		tree.release(item.id)
		for _, c := range children {
			if math.IsInf(c.lowerBound, 1) {
				continue // no completion through this edge
			}
			front.push(tree.add(c), c.lowerBound)
		}
		if dropped := front.truncate(opts.FrontierCap); len(dropped) > 0 {
			for _, d := range dropped {
				tree.release(d.id)
			}
			pruned += len(dropped)
			log.WithFields(logrus.Fields{"dropped": len(dropped), "width": front.Len()}).Debug("truncate")
		}
	}

	if pruned > 0 {
		return TSResult{}, tspErrorf(method, "%d states pruned by cap %d", ErrSearchExhausted, pruned, opts.FrontierCap)
	}

	return TSResult{}, tspErrorf(method, "no Hamiltonian cycle", ErrMissingEdge)
}
