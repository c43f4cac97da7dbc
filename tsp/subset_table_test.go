package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/bitset"
	"github.com/katalvlaran/hamilton/tsp"
)

func TestSubsetTable_PutGetPath(t *testing.T) {
	tbl := tsp.NewSubsetTable(5)

	s1 := bitset.MustNew(5, 2)
	s2 := bitset.MustNew(5, 2, 4)
	s3 := bitset.MustNew(5, 1, 2, 4)

	require.True(t, tbl.Put(s1, 2, tsp.Entry{Cost: 3, Prev: 0}))
	require.True(t, tbl.Put(s2, 4, tsp.Entry{Cost: 5, Prev: 2}))
	require.True(t, tbl.Put(s3, 1, tsp.Entry{Cost: 9, Prev: 4}))
	require.Equal(t, 3, tbl.Len())

	// Write-once.
	require.False(t, tbl.Put(s2, 4, tsp.Entry{Cost: 1, Prev: 2}))
	e, ok := tbl.Get(s2, 4)
	require.True(t, ok)
	require.Equal(t, tsp.Entry{Cost: 5, Prev: 2}, e)

	_, ok = tbl.Get(s2, 2)
	require.False(t, ok)

	path, err := tbl.Path(s3, 1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 4, 1}, path)

	_, err = tbl.Path(bitset.MustNew(5, 1, 3), 3)
	require.ErrorIs(t, err, tsp.ErrInvalidConfiguration)
}
