package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeChildInsertGetRemove(t *testing.T) {
	n := New(64)
	assert.True(t, n.IsEmpty())

	c5 := n.GetOrInsertChild(5, func() *Node { return New(64) })
	c2 := n.GetOrInsertChild(2, func() *Node { return New(64) })

	require.Equal(t, 2, n.Len())

	// Ascending sparse-index order: bit 2 before bit 5.
	assert.Same(t, c2, n.ChildAt(0))
	assert.Same(t, c5, n.ChildAt(1))

	got, ok := n.Child(5)
	require.True(t, ok)
	assert.Same(t, c5, got)

	_, ok = n.Child(3)
	assert.False(t, ok)

	removed, ok := n.RemoveChild(2)
	require.True(t, ok)
	assert.Same(t, c2, removed)
	assert.Equal(t, 1, n.Len())

	_, ok = n.RemoveChild(2)
	assert.False(t, ok, "removing an absent bit is a no-op")
}

func TestNodeGetOrInsertChildIsIdempotent(t *testing.T) {
	n := New(64)
	calls := 0
	factory := func() *Node {
		calls++
		return New(64)
	}

	first := n.GetOrInsertChild(9, factory)
	second := n.GetOrInsertChild(9, factory)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls, "factory should only run once for an existing bit")
}

func TestNodePayloadOverwriteAndRemove(t *testing.T) {
	n := New(64)

	old, existed := n.SetPayload(10, 100)
	assert.False(t, existed)
	assert.Zero(t, old)

	old, existed = n.SetPayload(10, 200)
	assert.True(t, existed)
	assert.Equal(t, uint32(100), old)

	v, ok := n.Payload(10)
	require.True(t, ok)
	assert.Equal(t, uint32(200), v)

	removed, ok := n.RemovePayload(10)
	require.True(t, ok)
	assert.Equal(t, uint32(200), removed)
	assert.True(t, n.IsEmpty())
}

func TestNodePayloadDenseOrder(t *testing.T) {
	n := New(64)
	n.SetPayload(40, 4)
	n.SetPayload(1, 1)
	n.SetPayload(20, 2)

	assert.Equal(t, uint32(1), n.PayloadAt(0))
	assert.Equal(t, uint32(2), n.PayloadAt(1))
	assert.Equal(t, uint32(4), n.PayloadAt(2))
}
