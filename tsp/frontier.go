package tsp

import (
	"slices"
	"sort"
)

// frontierItem is an active search node and its lower bound.
type frontierItem struct {
	id    int
	bound float64
}

// frontier is the set of unexpanded search nodes ordered by ascending lower
// bound; nodes with equal bounds keep insertion order. It is the only
// mutable state shared across iterations of the search loop and is touched
// by the search goroutine alone.
type frontier struct {
	items []frontierItem
}

// Len returns the number of active nodes.
func (f *frontier) Len() int { return len(f.items) }

// push inserts id after every item whose bound is ≤ bound.
// Complexity: O(log k) search + O(k) shift.
func (f *frontier) push(id int, bound float64) {
	pos := sort.Search(len(f.items), func(i int) bool { return f.items[i].bound > bound })
	f.items = slices.Insert(f.items, pos, frontierItem{id: id, bound: bound})
}

// popMin removes and returns the item with the smallest bound.
func (f *frontier) popMin() (frontierItem, bool) {
	if len(f.items) == 0 {
		return frontierItem{}, false
	}
	it := f.items[0]
	f.items = slices.Delete(f.items, 0, 1)

	return it, true
}

// truncate keeps the width best items and returns the discarded ones.
func (f *frontier) truncate(width int) []frontierItem {
	if width < 0 {
		width = 0
	}
	if len(f.items) <= width {
		return nil
	}
	dropped := slices.Clone(f.items[width:])
	f.items = f.items[:width]

	return dropped
}
