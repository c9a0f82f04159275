package hbtree

import (
	"context"
	"fmt"

	"github.com/gostreak/hbtree/internal/node"
	"github.com/gostreak/hbtree/internal/values"
)

// Shape is a tree's compile-time-fixed depth and per-level index width.
// LazyOp sources must share an identical Shape (spec §4.F: "Sources must
// share the same D and W (compile-time enforced)"). Go has no const
// generics over arbitrary integers, so hbtree enforces this at
// construction/composition time instead and reports a mismatch via
// ErrShapeMismatch — see DESIGN.md for the Open-Question writeup.
type Shape struct {
	Depth int // D: number of levels
	Width int // W: bits of key consumed per level
}

// KeyBits returns D*W, the number of low-order key bits this shape covers.
func (s Shape) KeyBits() int { return s.Depth * s.Width }

// blockWidth returns 2^W, the number of sparse slots per node at this shape.
func (s Shape) blockWidth() int { return 1 << uint(s.Width) }

func (s Shape) validate() error {
	if s.Depth <= 0 || s.Width <= 0 {
		return &ErrInvalidShape{Depth: s.Depth, Width: s.Width}
	}
	if s.KeyBits() > 64 {
		return &ErrInvalidShape{Depth: s.Depth, Width: s.Width,
			cause: fmt.Errorf("depth*width = %d exceeds 64-bit key space", s.KeyBits())}
	}
	return nil
}

// levelMask returns the lowest Width bits set, used to isolate one level's
// index out of a shifted key.
func (s Shape) levelMask() uint64 {
	return uint64(s.blockWidth() - 1)
}

// decompose splits key into s.Depth sparse indices, most-significant first.
func (s Shape) decompose(key uint64) []int {
	idx := make([]int, s.Depth)
	mask := s.levelMask()
	for level := 0; level < s.Depth; level++ {
		shift := uint(s.Depth-1-level) * uint(s.Width)
		idx[level] = int((key >> shift) & mask)
	}
	return idx
}

// compose reassembles a key from per-level sparse indices in root-to-leaf
// order, the inverse of decompose. Used by iterators to reconstruct the key
// along a traversal path.
func (s Shape) compose(idx []int) uint64 {
	var key uint64
	for _, i := range idx {
		key = (key << uint(s.Width)) | uint64(i)
	}
	return key
}

func (s Shape) inRange(key uint64) bool {
	if s.KeyBits() >= 64 {
		return true
	}
	return key < (uint64(1) << uint(s.KeyBits()))
}

// Tree is an integer-keyed associative container implemented as a
// hierarchical bitmap prefix tree of fixed Shape. The zero value is not
// usable; construct with New or Builder.
type Tree[V any] struct {
	shape    Shape
	rootNode *node.Node
	values   *values.Values[V]
	opts     options
}

// New constructs an empty Tree with the given depth (D) and per-level index
// width (W); key space is [0, 2^(D*W)).
func New[V any](depth, width int, opts ...Option) (*Tree[V], error) {
	shape := Shape{Depth: depth, Width: width}
	if err := shape.validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Tree[V]{
		shape:    shape,
		rootNode: node.New(shape.blockWidth()),
		values:   values.New[V](),
		opts:     o,
	}
	return t, nil
}

// Shape returns the tree's depth and width.
func (t *Tree[V]) Shape() Shape { return t.shape }

// Len returns the number of distinct keys currently present.
func (t *Tree[V]) Len() int { return t.values.Len() }

// IsEmpty reports whether the tree has no keys.
func (t *Tree[V]) IsEmpty() bool { return t.Len() == 0 }

// Get returns the value stored at key, if present.
func (t *Tree[V]) Get(key uint64) (V, bool) {
	var zero V
	if !t.shape.inRange(key) {
		return zero, false
	}
	idx := t.shape.decompose(key)
	n := t.rootNode
	for level := 0; level < t.shape.Depth-1; level++ {
		child, ok := n.Child(idx[level])
		if !ok {
			return zero, false
		}
		n = child
	}
	valueIdx, ok := n.Payload(idx[t.shape.Depth-1])
	if !ok {
		return zero, false
	}
	return t.values.Get(valueIdx)
}

// Contains reports whether key is present. It is Get with the value
// discarded.
func (t *Tree[V]) Contains(key uint64) bool {
	_, ok := t.Get(key)
	return ok
}

// Insert stores value at key, returning the prior value if key was already
// present.
func (t *Tree[V]) Insert(key uint64, value V) (V, bool, error) {
	var zero V
	if !t.shape.inRange(key) {
		return zero, false, ErrKeyOutOfRange
	}
	idx := t.shape.decompose(key)
	n := t.rootNode
	for level := 0; level < t.shape.Depth-1; level++ {
		width := t.shape.blockWidth()
		n = n.GetOrInsertChild(idx[level], func() *node.Node { return node.New(width) })
	}

	leafIdx := idx[t.shape.Depth-1]
	if existingValueIdx, existed := n.Payload(leafIdx); existed {
		old := t.values.Set(existingValueIdx, value)
		t.opts.logger.LogInsert(context.Background(), key, true)
		return old, true, nil
	}

	valueIdx := t.values.Append(value)
	n.SetPayload(leafIdx, valueIdx)
	t.opts.logger.LogInsert(context.Background(), key, false)
	return zero, false, nil
}

// Remove deletes key, returning its value if it was present. Removal
// unwinds the descent path, deallocating every inner node that becomes
// empty as a result.
func (t *Tree[V]) Remove(key uint64) (V, bool) {
	var zero V
	if !t.shape.inRange(key) {
		return zero, false
	}
	idx := t.shape.decompose(key)

	type frame struct {
		n      *node.Node
		sparse int
	}
	path := make([]frame, 0, t.shape.Depth-1)

	n := t.rootNode
	for level := 0; level < t.shape.Depth-1; level++ {
		child, ok := n.Child(idx[level])
		if !ok {
			return zero, false
		}
		path = append(path, frame{n: n, sparse: idx[level]})
		n = child
	}

	valueIdx, ok := n.RemovePayload(idx[t.shape.Depth-1])
	if !ok {
		return zero, false
	}
	val := t.values.Free(valueIdx)

	// Unwind: remove every now-empty parent entry, deepest first.
	last := n
	for i := len(path) - 1; i >= 0; i-- {
		if !last.IsEmpty() {
			break
		}
		frame := path[i]
		frame.n.RemoveChild(frame.sparse)
		last = frame.n
	}

	t.opts.logger.LogRemove(context.Background(), key, true)
	return val, true
}
