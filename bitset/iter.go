// SPDX-License-Identifier: MIT

package bitset

import (
	"iter"
	"math/bits"
)

// All returns an iterator over the elements of b from low bit to high bit.
// The sequence is computed lazily and may be ranged over any number of times.
func (b BitSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := b.v; v != 0; v &= v - 1 {
			if !yield(bits.TrailingZeros64(v)) {
				return
			}
		}
	}
}

// Combinations returns an iterator over every k-element subset of b.
// Subsets are produced in lexicographic order of their ascending element
// lists and carry b's capacity. k == 0 yields the empty set once; k < 0 or
// k > b.Len() yields nothing.
//
// Complexity: O(C(len, k)·k) total.
func (b BitSet) Combinations(k int) iter.Seq[BitSet] {
	return func(yield func(BitSet) bool) {
		elems := b.Elements()
		m := len(elems)
		if k < 0 || k > m {
			return
		}

		// idx holds positions into elems, strictly increasing.
		idx := make([]int, k)
		var v uint64
		for i := range idx {
			idx[i] = i
			v |= 1 << uint(elems[i])
		}
		for {
			if !yield(BitSet{n: b.n, v: v}) {
				return
			}

			// Find the rightmost position that can still advance.
			i := k - 1
			for i >= 0 && idx[i] == m-k+i {
				i--
			}
			if i < 0 {
				return
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}

			v = 0
			for _, p := range idx {
				v |= 1 << uint(elems[p])
			}
		}
	}
}
