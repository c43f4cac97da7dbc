// SPDX-License-Identifier: MIT

package bitset_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/bitset"
)

// randomSet draws a random subset of [0, capacity).
func randomSet(rng *rand.Rand, capacity int) bitset.BitSet {
	var mask uint64
	if capacity == bitset.MaxCapacity {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << uint(capacity)) - 1
	}

	return bitset.MustFromValue(capacity, rng.Uint64()&mask)
}

func TestAlgebra_Laws(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, capacity := range []int{0, 1, 5, 17, 63, 64} {
		for iter := 0; iter < 200; iter++ {
			a := randomSet(rng, capacity)
			b := randomSet(rng, capacity)
			c := randomSet(rng, capacity)

			require.True(t, a.Union(b).Equal(b.Union(a)))
			require.True(t, a.Intersection(b).Equal(b.Intersection(a)))
			require.True(t, a.Difference(a).IsEmpty())
			require.True(t, a.Complement().Complement().Equal(a))
			require.True(t, a.Union(b).Complement().Equal(a.Complement().Intersection(b.Complement())))
			require.True(t, a.Intersection(b).Complement().Equal(a.Complement().Union(b.Complement())))
			require.True(t, a.Union(b, c).Equal(a.Union(b).Union(c)))
			require.True(t, a.Intersection(b, c).Equal(a.Intersection(b).Intersection(c)))
			require.True(t, a.SymmetricDifference(b).Equal(a.Union(b).Difference(a.Intersection(b))))
			require.True(t, a.IsSubset(a.Union(b)))
			require.True(t, a.Union(b).IsSuperset(b))
			require.True(t, a.Difference(b).IsDisjoint(b))
		}
	}
}

func TestAlgebra_Capacity(t *testing.T) {
	small := bitset.MustNew(3, 0, 2)
	large := bitset.MustNew(9, 2, 8)

	require.Equal(t, 9, small.Union(large).Capacity())
	require.Equal(t, 9, small.Intersection(large).Capacity())
	require.Equal(t, 9, small.SymmetricDifference(large).Capacity())
	require.Equal(t, 3, small.Difference(large).Capacity())
	require.Equal(t, 9, large.Difference(small).Capacity())

	require.Equal(t, []int{0, 2, 8}, small.Union(large).Elements())
	require.Equal(t, []int{2}, small.Intersection(large).Elements())
	require.Equal(t, []int{0}, small.Difference(large).Elements())
	require.Equal(t, []int{0, 8}, small.SymmetricDifference(large).Elements())
}

func TestAlgebra_UpdateMatchesPure(t *testing.T) {
	a := bitset.MustNew(10, 1, 2, 3, 9)
	b := bitset.MustNew(12, 2, 3, 11)
	c := bitset.MustNew(10, 3)

	u := a.Copy()
	u.UnionUpdate(b, c)
	require.True(t, u.Equal(a.Union(b, c)))

	i := a.Copy()
	i.IntersectionUpdate(b, c)
	require.True(t, i.Equal(a.Intersection(b, c)))

	d := a.Copy()
	d.DifferenceUpdate(b, c)
	require.True(t, d.Equal(a.Difference(b, c)))

	s := a.Copy()
	s.SymmetricDifferenceUpdate(b)
	require.True(t, s.Equal(a.SymmetricDifference(b)))

	k := a.Copy()
	k.ComplementUpdate()
	require.True(t, k.Equal(a.Complement()))

	// Pure operations never touch the receiver.
	require.Equal(t, []int{1, 2, 3, 9}, a.Elements())
}

func TestComplement_StaysInCapacity(t *testing.T) {
	b := bitset.MustNew(4, 1)
	require.Equal(t, []int{0, 2, 3}, b.Complement().Elements())
	require.Equal(t, uint64(0), bitset.Full(64).Complement().Value())
}

func TestCombinations(t *testing.T) {
	universe := bitset.MustNew(6, 1, 2, 3, 4, 5)

	var got [][]int
	for s := range universe.Combinations(2) {
		require.Equal(t, 6, s.Capacity())
		got = append(got, s.Elements())
	}
	want := [][]int{
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 3}, {2, 4}, {2, 5},
		{3, 4}, {3, 5},
		{4, 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("combinations mismatch (-want +got):\n%s", diff)
	}
}

func TestCombinations_Counts(t *testing.T) {
	universe := bitset.Full(10)
	binom := []int{1, 10, 45, 120, 210, 252, 210, 120, 45, 10, 1}
	for k, want := range binom {
		seen := make(map[uint64]struct{})
		for s := range universe.Combinations(k) {
			require.Equal(t, k, s.Len())
			seen[s.Value()] = struct{}{}
		}
		require.Len(t, seen, want, "k=%d", k)
	}

	n := 0
	for range universe.Combinations(11) {
		n++
	}
	require.Zero(t, n)
	for range universe.Combinations(-1) {
		n++
	}
	require.Zero(t, n)
}
