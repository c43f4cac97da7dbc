// SPDX-License-Identifier: MIT

package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/bitset"
)

func TestNew_ValueLenContains(t *testing.T) {
	b, err := bitset.New(5, 1, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(0b01010), b.Value())
	require.Equal(t, uint64(10), b.Value())
	require.Equal(t, 2, b.Len())
	require.False(t, b.Contains(4))
	require.True(t, b.Contains(1))
	require.True(t, b.Contains(3))
	require.Equal(t, 5, b.Capacity())
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name     string
		capacity int
		elems    []int
		want     error
	}{
		{"negative capacity", -1, nil, bitset.ErrInvalidCapacity},
		{"capacity too large", bitset.MaxCapacity + 1, nil, bitset.ErrInvalidCapacity},
		{"element at capacity", 4, []int{4}, bitset.ErrInvalidElement},
		{"negative element", 4, []int{-1}, bitset.ErrInvalidElement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bitset.New(tc.capacity, tc.elems...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromValue(t *testing.T) {
	b, err := bitset.FromValue(5, 0b10101)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4}, b.Elements())

	_, err = bitset.FromValue(3, 0b1000)
	require.ErrorIs(t, err, bitset.ErrInvalidElement)

	full, err := bitset.FromValue(64, ^uint64(0))
	require.NoError(t, err)
	require.Equal(t, 64, full.Len())
}

func TestAddRemoveDiscard(t *testing.T) {
	b := bitset.MustNew(8)
	require.NoError(t, b.Add(2))
	require.NoError(t, b.Add(2)) // duplicate add is fine
	require.Equal(t, 1, b.Len())

	require.ErrorIs(t, b.Add(8), bitset.ErrInvalidElement)
	require.ErrorIs(t, b.Remove(5), bitset.ErrElementNotFound)
	require.ErrorIs(t, b.Remove(-3), bitset.ErrInvalidElement)

	require.NoError(t, b.Remove(2))
	require.True(t, b.IsEmpty())

	b.Discard(2) // absent: no-op
	b.Discard(99)
	require.True(t, b.IsEmpty())

	require.NoError(t, b.Add(7))
	b.Clear()
	require.True(t, b.IsEmpty())
	require.Equal(t, 8, b.Capacity())
}

func TestAddRemove_RoundTrip(t *testing.T) {
	const capacity = 6
	// Every starting set over 6 elements, every valid index.
	for v := uint64(0); v < 1<<capacity; v++ {
		start := bitset.MustFromValue(capacity, v)
		for i := 0; i < capacity; i++ {
			if start.Contains(i) {
				continue
			}
			b := start.Copy()
			require.NoError(t, b.Add(i))
			require.NoError(t, b.Remove(i))
			require.True(t, b.Equal(start), "v=%b i=%d", v, i)
		}
	}
}

func TestEqualAndHash(t *testing.T) {
	a := bitset.MustNew(5, 1, 2)
	b := bitset.MustNew(5, 2, 1)
	c := bitset.MustNew(6, 1, 2)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c), "capacity participates in equality")
	require.Equal(t, a.Hash(), c.Hash(), "hash depends on value only")
	require.Equal(t, a, b, "value type is comparable")
}

func TestString(t *testing.T) {
	require.Equal(t, "{}", bitset.MustNew(4).String())
	require.Equal(t, "{0, 3, 9}", bitset.MustNew(10, 9, 0, 3).String())
}

func TestAll_AscendingAndRestartable(t *testing.T) {
	b := bitset.MustNew(12, 11, 4, 0, 7)
	var first, second []int
	for i := range b.All() {
		first = append(first, i)
	}
	for i := range b.All() {
		second = append(second, i)
	}
	require.Equal(t, []int{0, 4, 7, 11}, first)
	require.Equal(t, first, second)

	// Early break stops the sequence.
	var got []int
	for i := range b.All() {
		if i > 4 {
			break
		}
		got = append(got, i)
	}
	require.Equal(t, []int{0, 4}, got)
}

func TestLen_MatchesMembership(t *testing.T) {
	b := bitset.MustNew(20, 1, 5, 6, 13, 19)
	count := 0
	for i := 0; i < b.Capacity(); i++ {
		if b.Contains(i) {
			count++
		}
	}
	require.Equal(t, b.Len(), count)
}

func TestFull(t *testing.T) {
	require.Equal(t, 0, bitset.Full(0).Len())
	require.Equal(t, 5, bitset.Full(5).Len())
	require.Equal(t, 64, bitset.Full(64).Len())
	require.Equal(t, bitset.Full(7).Value(), bitset.Full(7).FullValue())
}
