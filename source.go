package hbtree

import (
	"github.com/gostreak/hbtree/internal/bitblock"
	"github.com/gostreak/hbtree/internal/node"
)

// Source is implemented by both Tree and LazyOp. It is the small, stable
// "tree-like" capability set spec §4.F/§9 describes as a candidate for
// either a tagged variant or a capability record: query the root mask,
// descend via a set sparse index to a child view, read a leaf value. Having
// LazyOp itself satisfy Source is what makes set operations composable —
// a LazyOp is a valid input to another LazyOp.
//
// Source is sealed to this package: root returns the unexported view
// interface, so only Tree and LazyOp (defined here and in lazyop.go) can
// implement it.
type Source[V any] interface {
	// Shape returns the source's depth and per-level width. Composing
	// sources of differing Shape is a capacity/shape error (ErrShapeMismatch).
	Shape() Shape

	root() view[V]
}

// view is a virtual node: for a Tree it's a thin wrapper over *node.Node;
// for a LazyOp it's a per-path reduction computed on demand from its
// sources' views (see lazyop.go). Traversal code (Materialize, the parallel
// fan-out) only ever talks to view, never to node.Node or LazyOp directly,
// which is what lets the same walk work over a Tree, a LazyOp, or a LazyOp
// composed from other LazyOps.
type view[V any] interface {
	mask() bitblock.Block
	child(sparse int) view[V]
	leaf(sparse int) (V, bool)
}

// treeView adapts a *node.Node plus its owning Tree's value vector to view.
type treeView[V any] struct {
	t *Tree[V]
	n *node.Node
}

func (v treeView[V]) mask() bitblock.Block { return v.n.Mask() }

func (v treeView[V]) child(sparse int) view[V] {
	c, ok := v.n.Child(sparse)
	if !ok {
		return nil
	}
	return treeView[V]{t: v.t, n: c}
}

func (v treeView[V]) leaf(sparse int) (V, bool) {
	valueIdx, ok := v.n.Payload(sparse)
	if !ok {
		var zero V
		return zero, false
	}
	return v.t.values.Get(valueIdx)
}

func (t *Tree[V]) root() view[V] {
	return treeView[V]{t: t, n: t.rootNode}
}
