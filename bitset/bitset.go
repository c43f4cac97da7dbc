// SPDX-License-Identifier: MIT

package bitset

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxCapacity is the largest capacity a BitSet can have (one machine word).
const MaxCapacity = 64

// BitSet is a fixed-capacity set of integers in [0, Capacity()).
// The zero value is the empty set of capacity 0.
type BitSet struct {
	n int    // capacity: max element index + 1
	v uint64 // bit i set ⇔ i is a member
}

// New returns a BitSet of the given capacity holding elems.
// Duplicate elements are accepted.
// Complexity: O(len(elems)).
func New(capacity int, elems ...int) (BitSet, error) {
	if capacity < 0 || capacity > MaxCapacity {
		return BitSet{}, bitsetErrorf("New", capacity, ErrInvalidCapacity)
	}
	b := BitSet{n: capacity}
	for _, i := range elems {
		if err := b.Add(i); err != nil {
			return BitSet{}, err
		}
	}

	return b, nil
}

// FromValue returns a BitSet of the given capacity whose bitfield is value.
// Any set bit at or above capacity is rejected with ErrInvalidElement.
func FromValue(capacity int, value uint64) (BitSet, error) {
	if capacity < 0 || capacity > MaxCapacity {
		return BitSet{}, bitsetErrorf("FromValue", capacity, ErrInvalidCapacity)
	}
	if extra := value &^ fullMask(capacity); extra != 0 {
		return BitSet{}, bitsetErrorf("FromValue", bits.TrailingZeros64(extra), ErrInvalidElement)
	}

	return BitSet{n: capacity, v: value}, nil
}

// MustNew is like New but panics on error. Intended for fixtures.
func MustNew(capacity int, elems ...int) BitSet {
	b, err := New(capacity, elems...)
	if err != nil {
		panic(err)
	}

	return b
}

// MustFromValue is like FromValue but panics on error.
func MustFromValue(capacity int, value uint64) BitSet {
	b, err := FromValue(capacity, value)
	if err != nil {
		panic(err)
	}

	return b
}

// Full returns the set {0, …, capacity-1}.
// Capacities outside [0, MaxCapacity] are clamped.
func Full(capacity int) BitSet {
	if capacity < 0 {
		capacity = 0
	}
	if capacity > MaxCapacity {
		capacity = MaxCapacity
	}

	return BitSet{n: capacity, v: fullMask(capacity)}
}

// fullMask returns the all-ones value for capacity n.
func fullMask(n int) uint64 {
	if n >= MaxCapacity {
		return ^uint64(0)
	}

	return (uint64(1) << uint(n)) - 1
}

// Capacity returns the fixed capacity of b.
func (b BitSet) Capacity() int { return b.n }

// Value returns the raw bitfield. Two sets with equal Value hold the same
// elements; this is the cache-key form of a BitSet.
func (b BitSet) Value() uint64 { return b.v }

// Hash returns a hash of b that depends only on its value.
func (b BitSet) Hash() uint64 { return b.v }

// FullValue returns the all-ones value for b's capacity.
func (b BitSet) FullValue() uint64 { return fullMask(b.n) }

// inRange reports whether i is a valid element index for b.
func (b BitSet) inRange(i int) bool { return i >= 0 && i < b.n }

// Add inserts i. Adding a present element is not an error.
func (b *BitSet) Add(i int) error {
	if !b.inRange(i) {
		return bitsetErrorf("Add", i, ErrInvalidElement)
	}
	b.v |= 1 << uint(i)

	return nil
}

// Remove deletes i, failing with ErrElementNotFound if i is absent.
func (b *BitSet) Remove(i int) error {
	if !b.inRange(i) {
		return bitsetErrorf("Remove", i, ErrInvalidElement)
	}
	if b.v&(1<<uint(i)) == 0 {
		return bitsetErrorf("Remove", i, ErrElementNotFound)
	}
	b.v &^= 1 << uint(i)

	return nil
}

// Discard deletes i if present. Out-of-range indices are ignored.
func (b *BitSet) Discard(i int) {
	if b.inRange(i) {
		b.v &^= 1 << uint(i)
	}
}

// Clear removes every element; capacity is unchanged.
func (b *BitSet) Clear() { b.v = 0 }

// Copy returns an independent copy of b.
func (b BitSet) Copy() BitSet { return b }

// Without returns b minus the single element i (no error if absent).
func (b BitSet) Without(i int) BitSet {
	b.Discard(i)

	return b
}

// Contains reports whether i is a member of b.
func (b BitSet) Contains(i int) bool {
	return b.inRange(i) && b.v&(1<<uint(i)) != 0
}

// Len returns the number of elements (population count).
func (b BitSet) Len() int { return bits.OnesCount64(b.v) }

// IsEmpty reports whether b holds no elements.
func (b BitSet) IsEmpty() bool { return b.v == 0 }

// Equal reports whether b and other have the same capacity and elements.
func (b BitSet) Equal(other BitSet) bool {
	return b.n == other.n && b.v == other.v
}

// Elements returns the members of b in ascending order.
func (b BitSet) Elements() []int {
	out := make([]int, 0, b.Len())
	for v := b.v; v != 0; v &= v - 1 {
		out = append(out, bits.TrailingZeros64(v))
	}

	return out
}

// String renders b as "{a, b, c}" in ascending order; the empty set is "{}".
func (b BitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for v := b.v; v != 0; v &= v - 1 {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(bits.TrailingZeros64(v)))
		first = false
	}
	sb.WriteByte('}')

	return sb.String()
}
