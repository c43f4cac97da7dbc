// SPDX-License-Identifier: MIT

// Package bitset implements a fixed-capacity set of small non-negative
// integers backed by a single 64-bit field.
//
// A BitSet of capacity N holds elements in [0, N). Every set operation is a
// handful of word instructions, which makes BitSet a natural cache key for
// subset dynamic programming (see tsp.SubsetTable) and a cheap "remaining
// vertices" marker for tree search.
//
// Semantics:
//   - Capacity is fixed at construction, 0 ≤ N ≤ MaxCapacity (64).
//   - No bit ≥ N is ever set; constructors and Add reject such elements.
//   - Union, Intersection and SymmetricDifference carry capacity = max of the
//     operand capacities; Difference keeps the receiver's capacity.
//   - Equal compares capacity and value; Hash depends on the value only, so
//     keys stay stable across operations that only grow capacity.
//   - Pure operations use value receivers and return a new BitSet; the
//     *Update variants mutate the receiver in place.
//
// Errors:
//   - ErrInvalidCapacity:  capacity outside [0, MaxCapacity].
//   - ErrInvalidElement:   element index < 0 or ≥ capacity.
//   - ErrElementNotFound:  Remove on an absent element.
//
// Iteration:
//
//	for i := range s.All() { ... } // ascending, lazy, restartable
//
// Subsets of a fixed size are enumerated with Combinations, in the
// lexicographic order of their element indices.
package bitset
