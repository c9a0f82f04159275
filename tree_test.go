package hbtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostreak/hbtree"
	"github.com/gostreak/hbtree/testutil"
)

func TestNewRejectsBadShape(t *testing.T) {
	_, err := hbtree.New[int](0, 6)
	require.Error(t, err)

	_, err = hbtree.New[int](4, 0)
	require.Error(t, err)

	_, err = hbtree.New[int](11, 6) // 66 key bits
	require.Error(t, err)
}

func TestBasicInsertGet(t *testing.T) {
	tr, err := hbtree.New[string](4, 6)
	require.NoError(t, err)

	_, existed, err := tr.Insert(1, "a")
	require.NoError(t, err)
	assert.False(t, existed)

	_, existed, err = tr.Insert(64, "b")
	require.NoError(t, err)
	assert.False(t, existed)

	v, ok := tr.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = tr.Get(64)
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = tr.Get(2)
	assert.False(t, ok)

	assert.Equal(t, 2, tr.Len())
	assert.False(t, tr.IsEmpty())
}

func TestInsertOverwriteReturnsOldValue(t *testing.T) {
	tr, err := hbtree.New[int](4, 6)
	require.NoError(t, err)

	_, existed, err := tr.Insert(5, 10)
	require.NoError(t, err)
	assert.False(t, existed)

	old, existed, err := tr.Insert(5, 20)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, 10, old)

	v, ok := tr.Get(5)
	require.True(t, ok)
	assert.Equal(t, 20, v)
	assert.Equal(t, 1, tr.Len())
}

func TestKeyOutOfRange(t *testing.T) {
	tr, err := hbtree.New[int](2, 4) // 8 key bits, max key 255
	require.NoError(t, err)

	_, _, err = tr.Insert(256, 1)
	assert.ErrorIs(t, err, hbtree.ErrKeyOutOfRange)

	_, ok := tr.Get(256)
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	tr, err := hbtree.New[int](3, 4)
	require.NoError(t, err)

	assert.False(t, tr.Contains(7))
	_, _, err = tr.Insert(7, 0)
	require.NoError(t, err)
	assert.True(t, tr.Contains(7))
}

func TestRemoveEmptiesPath(t *testing.T) {
	tr, err := hbtree.New[int](3, 2) // 6 key bits, one key per deepest-unique path
	require.NoError(t, err)

	_, _, err = tr.Insert(0, 1)
	require.NoError(t, err)

	val, ok := tr.Remove(0)
	assert.True(t, ok)
	assert.Equal(t, 1, val)
	assert.Equal(t, 0, tr.Len())
	assert.True(t, tr.IsEmpty())

	// Removing again should report not found.
	_, ok = tr.Remove(0)
	assert.False(t, ok)
}

func TestRemoveKeepsSiblingPaths(t *testing.T) {
	tr, err := hbtree.New[int](2, 4)
	require.NoError(t, err)

	_, _, err = tr.Insert(1, 1)
	require.NoError(t, err)
	_, _, err = tr.Insert(2, 2)
	require.NoError(t, err)

	val, ok := tr.Remove(1)
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	v, ok := tr.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, tr.Len())
}

func TestManyInsertsAndRemovesRoundtrip(t *testing.T) {
	tr, err := hbtree.New[uint64](4, 6)
	require.NoError(t, err)

	rng := testutil.NewRNG(1)
	keys := rng.Keys(500, uint64(1)<<24)

	for _, k := range keys {
		_, _, err := tr.Insert(k, k*7)
		require.NoError(t, err)
	}
	assert.Equal(t, len(keys), tr.Len())

	for _, k := range keys {
		v, ok := tr.Get(k)
		require.True(t, ok)
		assert.Equal(t, k*7, v)
	}

	for _, k := range keys {
		_, ok := tr.Remove(k)
		assert.True(t, ok)
	}
	assert.True(t, tr.IsEmpty())
}
