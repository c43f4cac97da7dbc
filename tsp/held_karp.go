// Package tsp - Held–Karp exact solver.
//
// TSPHeldKarp fills a SubsetTable bottom-up by subset size:
//
//  1. Seed: table[{k}, k] = w(0,k) for every k in 1..n-1.
//  2. For s = 2..n-1, for every s-subset C of {1..n-1} (lexicographic) and
//     every endpoint k ∈ C (ascending):
//     table[C, k] = min over m ∈ C\{k} (ascending) of table[C\{k}, m] + w(m,k).
//     The first minimum found is kept.
//  3. Close: answer = min over k of table[ALL, k] + w(k,0).
//
// Layer s reads only layer s-1, which is complete and read-only while s is
// computed. With Options.Workers > 1 the subsets of one layer are split into
// contiguous chunks solved by an errgroup; results are merged after Wait.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
package tsp

import (
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hamilton/bitset"
)

// minParallelSubsets is the layer size below which workers are not spawned.
const minParallelSubsets = 64

// layerCell is a computed entry waiting to be merged into the table.
type layerCell struct {
	set bitset.BitSet
	end int
	e   Entry
}

// TSPHeldKarp solves the TSP exactly with the Held–Karp dynamic program.
//
// Edge cases: n == 1 ⇒ cost 0, tour [0]; n == 2 ⇒ w(0,1)+w(1,0), tour [0,1,0].
//
// Errors:
//   - ErrInvalidConfiguration for nil/empty graphs, bad options, n > MaxHeldKarpNodes.
//   - ErrNegativeWeight for negative or NaN weights.
//   - ErrMissingEdge as soon as a required edge is undefined.
func TSPHeldKarp(g Graph, opts Options) (TSResult, error) {
	const method = "TSPHeldKarp"
	if err := validateOptions(method, opts); err != nil {
		return TSResult{}, err
	}
	ws, err := loadWeights(method, g)
	if err != nil {
		return TSResult{}, err
	}
	n := ws.n
	if err = validateSize(method, n, MaxHeldKarpNodes); err != nil {
		return TSResult{}, err
	}
	if n == 1 {
		return trivialTour(), nil
	}

	var (
		log      = opts.logger().WithField("solver", ExactHeldKarp.String())
		table    = NewSubsetTable(n)
		universe = bitset.Full(n).Without(0) // {1..n-1}
		c        float64
	)

	// --- 1. Seed singletons ---
	for k := 1; k < n; k++ {
		if c, err = ws.edge(method, 0, k); err != nil {
			return TSResult{}, err
		}
		table.Put(bitset.MustNew(n, k), k, Entry{Cost: c, Prev: 0})
	}

	// --- 2. Layers of increasing subset size ---
	for s := 2; s < n; s++ {
		if err = fillLayer(method, table, ws, universe, s, opts.workers()); err != nil {
			return TSResult{}, err
		}
		log.WithFields(logrus.Fields{"size": s, "entries": table.Len()}).Debug("layer filled")
	}

	// --- 3. Close the tour by returning to 0 ---
	var (
		bestCost = math.Inf(1)
		last     = -1
	)
	for k := range universe.All() {
		e, ok := table.Get(universe, k)
		if !ok {
			return TSResult{}, tspErrorf(method, "no entry for endpoint %d", ErrInvalidConfiguration, k)
		}
		if c, err = ws.edge(method, k, 0); err != nil {
			return TSResult{}, err
		}
		if total := e.Cost + c; total < bestCost {
			bestCost = total
			last = k
		}
	}

	path, err := table.Path(universe, last)
	if err != nil {
		return TSResult{}, err
	}
	tour := append(path, 0)
	log.WithFields(logrus.Fields{"cost": bestCost, "entries": table.Len()}).Debug("solved")

	return TSResult{Tour: tour, Cost: round1e9(bestCost)}, nil
}

// fillLayer computes every (subset, endpoint) entry of the given size and
// merges them into t once all are known.
func fillLayer(method string, t *SubsetTable, ws *weights, universe bitset.BitSet, size, workers int) error {
	subsets := make([]bitset.BitSet, 0)
	for c := range universe.Combinations(size) {
		subsets = append(subsets, c)
	}
	cells := make([]layerCell, len(subsets)*size)

	solveRange := func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			if err := solveSubset(method, t, ws, subsets[i], cells[i*size:(i+1)*size]); err != nil {
				return err
			}
		}

		return nil
	}

	if workers <= 1 || len(subsets) < minParallelSubsets {
		if err := solveRange(0, len(subsets)); err != nil {
			return err
		}
	} else {
		var (
			eg    errgroup.Group
			chunk = (len(subsets) + workers - 1) / workers
		)
		eg.SetLimit(workers)
		for lo := 0; lo < len(subsets); lo += chunk {
			hi := min(lo+chunk, len(subsets))
			eg.Go(func() error { return solveRange(lo, hi) })
		}
		if err := eg.Wait(); err != nil {
			return err
		}
	}

	for _, cell := range cells {
		t.Put(cell.set, cell.end, cell.e)
	}

	return nil
}

// solveSubset fills out (len == |set|) with the entries of set, one per
// endpoint in ascending order. It only reads t.
func solveSubset(method string, t *SubsetTable, ws *weights, set bitset.BitSet, out []layerCell) error {
	i := 0
	for k := range set.All() {
		var (
			prev  = set.Without(k)
			best  = math.Inf(1)
			bestM = -1
		)
		for m := range prev.All() {
			e, ok := t.Get(prev, m)
			if !ok {
				return tspErrorf(method, "no entry for (%v, %d)", ErrInvalidConfiguration, prev, m)
			}
			w, err := ws.edge(method, m, k)
			if err != nil {
				return err
			}
			if cand := e.Cost + w; cand < best {
				best = cand
				bestM = m
			}
		}
		out[i] = layerCell{set: set, end: k, e: Entry{Cost: best, Prev: bestM}}
		i++
	}

	return nil
}
