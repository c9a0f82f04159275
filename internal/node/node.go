// Package node implements the compressed, bitmask-indexed node used at every
// level of the hierarchical bitmap tree. A Node never stores values directly:
// terminal nodes hold dense uint32 value indices into the Tree's value
// vector (see internal/values), so Node itself carries no value type
// parameter.
package node

import (
	"slices"

	"github.com/gostreak/hbtree/internal/bitblock"
)

// Node is a compressed flexible-array-style record: one bitblock.Block mask
// plus a dense array of either child pointers (inner node, level < D-1) or
// payload value-indices (terminal node, level == D-1). Only one of the two
// dense arrays is ever populated for a given node, decided by the caller
// (the owning Tree) based on depth, never by the Node itself.
//
// Growth policy is exact-fit: children/payload are grown and shrunk with
// slices.Insert/slices.Delete rather than over-allocated geometrically. This
// favors memory density over amortized insert cost, a reasonable default for
// a structure whose whole point is a compact per-node footprint.
type Node struct {
	mask     bitblock.Block
	children []*Node
	payload  []uint32
}

// New returns an empty Node whose mask has the given width (2^W bits).
func New(width int) *Node {
	return &Node{mask: bitblock.New(width)}
}

// Mask returns the node's bitmask.
func (n *Node) Mask() bitblock.Block { return n.mask }

// Len returns the number of set bits (== len(children) or len(payload)).
func (n *Node) Len() int { return n.mask.PopCount() }

// IsEmpty reports whether the node's mask is all-zero.
func (n *Node) IsEmpty() bool { return n.mask.IsZero() }

// Child returns the child at sparse index i, if present.
func (n *Node) Child(i int) (*Node, bool) {
	if !n.mask.IsSet(i) {
		return nil, false
	}
	return n.children[n.mask.Rank(i)], true
}

// ChildAt returns the dense-index'th child, in ascending sparse-index order.
// Used by unordered iteration, which walks the dense array directly.
func (n *Node) ChildAt(dense int) *Node { return n.children[dense] }

// GetOrInsertChild returns the existing child at sparse index i, or
// allocates one via factory, splices it into the dense array at its rank,
// and sets the bit.
func (n *Node) GetOrInsertChild(i int, factory func() *Node) *Node {
	if c, ok := n.Child(i); ok {
		return c
	}
	rank := n.mask.Rank(i)
	child := factory()
	n.children = slices.Insert(n.children, rank, child)
	n.mask.Set(i)
	return child
}

// RemoveChild removes and returns the child at sparse index i, if present.
func (n *Node) RemoveChild(i int) (*Node, bool) {
	if !n.mask.IsSet(i) {
		return nil, false
	}
	rank := n.mask.Rank(i)
	removed := n.children[rank]
	n.children = slices.Delete(n.children, rank, rank+1)
	n.mask.Clear(i)
	return removed, true
}

// Payload returns the value index stored at sparse index i, if present.
func (n *Node) Payload(i int) (uint32, bool) {
	if !n.mask.IsSet(i) {
		return 0, false
	}
	return n.payload[n.mask.Rank(i)], true
}

// PayloadAt returns the dense-index'th payload entry, in ascending
// sparse-index order.
func (n *Node) PayloadAt(dense int) uint32 { return n.payload[dense] }

// SetPayload overwrites the value index at sparse index i if already set
// (returning the old index and true), or inserts a new entry (returning
// false).
func (n *Node) SetPayload(i int, valueIdx uint32) (old uint32, existed bool) {
	rank := n.mask.Rank(i)
	if n.mask.IsSet(i) {
		old = n.payload[rank]
		n.payload[rank] = valueIdx
		return old, true
	}
	n.payload = slices.Insert(n.payload, rank, valueIdx)
	n.mask.Set(i)
	return 0, false
}

// RemovePayload removes and returns the value index at sparse index i, if
// present.
func (n *Node) RemovePayload(i int) (uint32, bool) {
	if !n.mask.IsSet(i) {
		return 0, false
	}
	rank := n.mask.Rank(i)
	valueIdx := n.payload[rank]
	n.payload = slices.Delete(n.payload, rank, rank+1)
	n.mask.Clear(i)
	return valueIdx, true
}
