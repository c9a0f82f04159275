package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesAppendGetFree(t *testing.T) {
	v := New[string]()

	i0 := v.Append("a")
	i1 := v.Append("b")
	require.Equal(t, uint32(0), i0)
	require.Equal(t, uint32(1), i1)

	got, ok := v.Get(i0)
	require.True(t, ok)
	assert.Equal(t, "a", got)

	assert.Equal(t, 2, v.Len())

	old := v.Free(i0)
	assert.Equal(t, "a", old)
	assert.Equal(t, 1, v.Len())
	assert.False(t, v.IsAlive(i0))

	_, ok = v.Get(i0)
	assert.False(t, ok, "freed slot must not be readable")
}

func TestValuesReusesFreedSlots(t *testing.T) {
	v := New[int]()
	i0 := v.Append(10)
	v.Append(20)
	v.Free(i0)

	i2 := v.Append(30)
	assert.Equal(t, i0, i2, "free list should reuse the reclaimed slot")

	got, ok := v.Get(i2)
	require.True(t, ok)
	assert.Equal(t, 30, got)
}

func TestValuesSetOverwrites(t *testing.T) {
	v := New[string]()
	idx := v.Append("x")
	old := v.Set(idx, "y")
	assert.Equal(t, "x", old)

	got, ok := v.Get(idx)
	require.True(t, ok)
	assert.Equal(t, "y", got)
}
