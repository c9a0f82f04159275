package hbtree

import (
	"iter"

	"github.com/gostreak/hbtree/internal/bitblock"
	"github.com/gostreak/hbtree/internal/node"
)

// Ordered returns a forward-only sequence of (key, value) pairs in strictly
// ascending key order.
//
// It maintains a stack of Shape.Depth frames, each holding a node and a
// "remaining" copy of that node's mask. Each step pops the lowest set bit of
// the top frame's remaining mask; at the deepest level that emits a pair, at
// shallower levels it pushes a frame for the corresponding child. A frame
// whose remaining mask is exhausted is popped, resuming its parent. Like all
// iteration in this package, Ordered is invalidated by any subsequent
// mutation of t.
func Ordered[V any](t *Tree[V]) iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		orderedFrom(t, t.rootNode, 0, make([]int, t.shape.Depth))(yield)
	}
}

// WalkPrefix returns an Ordered-style ascending sequence bounded to the
// subtree reached by the first prefixLevels level indices, i.e. every key
// whose top prefixLevels levels match them. prefix holds just those indices,
// packed most-significant first in its low prefixLevels*Width bits (the
// value key >> ((Depth-prefixLevels)*Width) has for a matching key); it is
// not a full key. It is a bounded range scan over
// a key prefix, not named in spec.md's External Interfaces but a natural
// companion to Ordered given the same stack-of-frames traversal.
//
// prefixLevels must be in [0, Shape.Depth-1] — it selects a node among the
// tree's D-1 inner levels, not an individual leaf; prefixLevels == 0 behaves
// like Ordered(t). If no subtree matches the prefix, the sequence is empty.
func WalkPrefix[V any](t *Tree[V], prefixLevels int, prefix uint64) iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		shape := t.shape
		if prefixLevels < 0 || prefixLevels > shape.Depth-1 {
			return
		}

		idxPath := make([]int, shape.Depth)
		n := t.rootNode
		for level := 0; level < prefixLevels; level++ {
			shift := uint(prefixLevels-1-level) * uint(shape.Width)
			sparse := int((prefix >> shift) & shape.levelMask())
			idxPath[level] = sparse
			child, ok := n.Child(sparse)
			if !ok {
				return
			}
			n = child
		}

		orderedFrom(t, n, prefixLevels, idxPath)(yield)
	}
}

// orderedFrom runs the stack-of-frames ordered walk described in spec §4.E,
// starting at node n which sits at startLevel. idxPath is reused across
// frames below startLevel to reconstruct full keys; any levels above
// startLevel must already be filled in by the caller.
func orderedFrom[V any](t *Tree[V], n *node.Node, startLevel int, idxPath []int) iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		type frame struct {
			n         *node.Node
			remaining bitblock.Block
		}

		shape := t.shape
		stack := make([]frame, 0, shape.Depth-startLevel)
		stack = append(stack, frame{n: n, remaining: n.Mask().Clone()})

		for len(stack) > 0 {
			level := startLevel + len(stack) - 1
			top := &stack[len(stack)-1]

			sparse, ok := top.remaining.FirstSet()
			if !ok {
				stack = stack[:len(stack)-1]
				continue
			}
			top.remaining.Clear(sparse)
			idxPath[level] = sparse

			if level == shape.Depth-1 {
				valueIdx, _ := top.n.Payload(sparse)
				val, _ := t.values.Get(valueIdx)
				if !yield(shape.compose(idxPath), val) {
					return
				}
				continue
			}

			child, _ := top.n.Child(sparse)
			stack = append(stack, frame{n: child, remaining: child.Mask().Clone()})
		}
	}
}

// Unordered returns a sequence of (key, value) pairs in an
// implementation-defined but stable-per-structure order: it walks each
// node's dense children/payload array front to back, reconstructing keys
// from the ascending bit positions yielded by the node's mask. No rank
// lookup is needed during the walk, so this is as fast as iterating a flat
// slice. Unordered is invalidated by any subsequent mutation of t.
func Unordered[V any](t *Tree[V]) iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		shape := t.shape
		idxPath := make([]int, shape.Depth)

		var walk func(n *node.Node, level int) bool
		walk = func(n *node.Node, level int) bool {
			sparseBits := n.Mask().IterSet()
			if level == shape.Depth-1 {
				for dense, sparse := range sparseBits {
					idxPath[level] = sparse
					val, _ := t.values.Get(n.PayloadAt(dense))
					if !yield(shape.compose(idxPath), val) {
						return false
					}
				}
				return true
			}
			for dense, sparse := range sparseBits {
				idxPath[level] = sparse
				if !walk(n.ChildAt(dense), level+1) {
					return false
				}
			}
			return true
		}
		walk(t.rootNode, 0)
	}
}
