package tsp

import (
	"github.com/katalvlaran/hamilton/bitset"
)

// tableKey identifies a partial tour: the raw value of the visited set
// (endpoint included) and the endpoint itself.
type tableKey struct {
	set uint64
	end int
}

// Entry is one Held–Karp cell: the cheapest cost of a path that starts at 0,
// visits exactly the vertices of the key set, and ends at the key endpoint.
// Prev is the endpoint of the optimal sub-path (0 for singleton sets).
type Entry struct {
	Cost float64
	Prev int
}

// SubsetTable is the Held–Karp cache mapping (visited subset, endpoint) →
// Entry. Subsets never contain vertex 0 and always contain the endpoint.
// Entries are write-once; the optimal path of any entry is recovered by
// following Prev links through strictly smaller subsets.
//
// A table may be read concurrently once no goroutine writes to it.
type SubsetTable struct {
	n       int
	entries map[tableKey]Entry
}

// NewSubsetTable returns an empty table for an n-vertex graph.
func NewSubsetTable(n int) *SubsetTable {
	hint := 0
	if n > 1 && n <= 16 {
		hint = (n - 1) << uint(n-2) // Σ_s s·C(n-1, s)
	}

	return &SubsetTable{n: n, entries: make(map[tableKey]Entry, hint)}
}

// Len returns the number of stored entries.
func (t *SubsetTable) Len() int { return len(t.entries) }

// Put stores e under (set, end). It returns false, leaving the table
// untouched, if the key is already present.
func (t *SubsetTable) Put(set bitset.BitSet, end int, e Entry) bool {
	k := tableKey{set: set.Value(), end: end}
	if _, ok := t.entries[k]; ok {
		return false
	}
	t.entries[k] = e

	return true
}

// Get returns the entry for (set, end).
func (t *SubsetTable) Get(set bitset.BitSet, end int) (Entry, bool) {
	e, ok := t.entries[tableKey{set: set.Value(), end: end}]

	return e, ok
}

// Path reconstructs the optimal partial path for (set, end) as
// [0, …, end]. It fails with ErrInvalidConfiguration if a link is absent,
// which only happens for keys the table was never filled for.
//
// Complexity: O(|set|).
func (t *SubsetTable) Path(set bitset.BitSet, end int) ([]int, error) {
	const method = "SubsetTable.Path"
	rev := make([]int, 0, set.Len()+1)
	for {
		e, ok := t.Get(set, end)
		if !ok {
			return nil, tspErrorf(method, "no entry for (%v, %d)", ErrInvalidConfiguration, set, end)
		}
		rev = append(rev, end)
		set = set.Without(end)
		if set.IsEmpty() {
			break
		}
		end = e.Prev
	}
	rev = append(rev, 0)

	path := make([]int, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path, nil
}
