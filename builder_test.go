package hbtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostreak/hbtree"
)

func TestBuilderBuildsUsableTree(t *testing.T) {
	tr, err := hbtree.NewBuilder[string]().
		Depth(4).
		Width(6).
		Build()
	require.NoError(t, err)

	_, _, err = tr.Insert(42, "answer")
	require.NoError(t, err)

	v, ok := tr.Get(42)
	assert.True(t, ok)
	assert.Equal(t, "answer", v)
	assert.Equal(t, hbtree.Shape{Depth: 4, Width: 6}, tr.Shape())
}

func TestBuilderRejectsInvalidShape(t *testing.T) {
	_, err := hbtree.NewBuilder[int]().Depth(0).Width(6).Build()
	assert.Error(t, err)
}

func TestBuilderWithLogger(t *testing.T) {
	logger := hbtree.NewTextLogger(-10) // verbose enough to exercise the path
	tr, err := hbtree.NewBuilder[int]().
		Depth(3).
		Width(4).
		Logger(logger).
		Build()
	require.NoError(t, err)

	_, _, err = tr.Insert(1, 1)
	require.NoError(t, err)
}

func TestBuilderIsImmutablePerStep(t *testing.T) {
	base := hbtree.NewBuilder[int]().Depth(4)
	a := base.Width(4)
	b := base.Width(6)

	trA, err := a.Build()
	require.NoError(t, err)
	trB, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 4, trA.Shape().Width)
	assert.Equal(t, 6, trB.Shape().Width)
}
