// SPDX-License-Identifier: MIT

package bitset

// maxCap returns the larger of two capacities.
func maxCap(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// Complement returns the set of elements in [0, Capacity()) absent from b.
func (b BitSet) Complement() BitSet {
	return BitSet{n: b.n, v: b.v ^ fullMask(b.n)}
}

// ComplementUpdate replaces b by its complement.
func (b *BitSet) ComplementUpdate() {
	b.v ^= fullMask(b.n)
}

// Union returns b ∪ others[0] ∪ … folded left to right.
// The result capacity is the maximum of all operand capacities.
func (b BitSet) Union(others ...BitSet) BitSet {
	for _, o := range others {
		b.n = maxCap(b.n, o.n)
		b.v |= o.v
	}

	return b
}

// UnionUpdate adds every element of others to b, growing capacity as needed.
func (b *BitSet) UnionUpdate(others ...BitSet) {
	*b = b.Union(others...)
}

// Intersection returns b ∩ others[0] ∩ … folded left to right.
// The result capacity is the maximum of all operand capacities.
func (b BitSet) Intersection(others ...BitSet) BitSet {
	for _, o := range others {
		b.n = maxCap(b.n, o.n)
		b.v &= o.v
	}

	return b
}

// IntersectionUpdate keeps only the elements present in every operand.
func (b *BitSet) IntersectionUpdate(others ...BitSet) {
	*b = b.Intersection(others...)
}

// Difference returns b minus every element of others. Capacity stays b's.
func (b BitSet) Difference(others ...BitSet) BitSet {
	for _, o := range others {
		b.v &^= o.v
	}

	return b
}

// DifferenceUpdate removes from b every element of others.
func (b *BitSet) DifferenceUpdate(others ...BitSet) {
	*b = b.Difference(others...)
}

// SymmetricDifference returns the elements in exactly one of b and other.
func (b BitSet) SymmetricDifference(other BitSet) BitSet {
	return BitSet{n: maxCap(b.n, other.n), v: b.v ^ other.v}
}

// SymmetricDifferenceUpdate replaces b by b △ other.
func (b *BitSet) SymmetricDifferenceUpdate(other BitSet) {
	*b = b.SymmetricDifference(other)
}

// IsDisjoint reports whether b and other share no element.
func (b BitSet) IsDisjoint(other BitSet) bool { return b.v&other.v == 0 }

// IsSubset reports whether every element of b is in other.
func (b BitSet) IsSubset(other BitSet) bool { return b.Difference(other).IsEmpty() }

// IsSuperset reports whether every element of other is in b.
func (b BitSet) IsSuperset(other BitSet) bool { return other.Difference(b).IsEmpty() }
