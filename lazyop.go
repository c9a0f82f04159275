package hbtree

import (
	"context"

	"github.com/gostreak/hbtree/internal/bitblock"
)

// Maybe carries a possibly-absent per-source value, passed to a Union
// combiner since not every source need contribute a value at a given key
// (spec §4.F: "the combiner must tolerate a subset of sources").
type Maybe[V any] struct {
	Value   V
	Present bool
}

// MaskOp reduces the masks of the sources that reach a given node into the
// node's combined mask. AND prunes to keys common to every source; OR keeps
// keys present in any source.
type MaskOp func(masks []bitblock.Block) bitblock.Block

// LeafOp combines the per-source values at a key into the result value.
// vals is parallel to the sources passed to Reduce; an entry with
// Present == false means that source has no value at this key.
type LeafOp[V, R any] func(vals []Maybe[V]) R

func andMaskOp(masks []bitblock.Block) bitblock.Block { return bitblock.AndMany(masks) }
func orMaskOp(masks []bitblock.Block) bitblock.Block  { return bitblock.OrMany(masks) }

// LazyOp is a composable, read-only view over one or more Sources that
// computes a combined mask and combined leaf values level by level as it is
// walked, pruning any branch whose combined mask is empty before descending
// into it (spec §4.F). A LazyOp does no work and touches no source node
// until it is walked — by Materialize, MaterializeRoaring or
// ParallelMaterialize, directly or as a source of another LazyOp.
type LazyOp[R any] struct {
	shape    Shape
	rootView view[R]
}

// Shape returns the depth/width shared by every source that composed this LazyOp.
func (l *LazyOp[R]) Shape() Shape { return l.shape }

func (l *LazyOp[R]) root() view[R] { return l.rootView }

// reduceView implements view[R] by reducing the still-live subset of
// operand views at each node. The same logic serves AND and OR: maskOp
// decides which combined bits exist at all, while per-operand descent is
// always gated on that operand's own mask bit, regardless of maskOp — an
// operand that lacks a bit simply isn't consulted going forward.
type reduceView[V, R any] struct {
	views      []view[V] // parallel to the original source list; nil where a source doesn't reach this node
	maskOp     MaskOp
	leafOp     LeafOp[V, R]
	blockWidth int
}

func (rv *reduceView[V, R]) mask() bitblock.Block {
	masks := make([]bitblock.Block, 0, len(rv.views))
	for _, v := range rv.views {
		if v != nil {
			masks = append(masks, v.mask())
		}
	}
	if len(masks) == 0 {
		return bitblock.New(rv.blockWidth)
	}
	return rv.maskOp(masks)
}

func (rv *reduceView[V, R]) child(sparse int) view[R] {
	children := make([]view[V], len(rv.views))
	any := false
	for i, v := range rv.views {
		if v != nil && v.mask().IsSet(sparse) {
			children[i] = v.child(sparse)
			any = true
		}
	}
	if !any {
		return nil
	}
	return &reduceView[V, R]{views: children, maskOp: rv.maskOp, leafOp: rv.leafOp, blockWidth: rv.blockWidth}
}

func (rv *reduceView[V, R]) leaf(sparse int) (R, bool) {
	vals := make([]Maybe[V], len(rv.views))
	any := false
	for i, v := range rv.views {
		if v == nil {
			continue
		}
		if val, ok := v.leaf(sparse); ok {
			vals[i] = Maybe[V]{Value: val, Present: true}
			any = true
		}
	}
	if !any {
		var zero R
		return zero, false
	}
	return rv.leafOp(vals), true
}

// Reduce composes a LazyOp from an explicit mask-combination rule and a
// leaf-combination rule over one or more same-shaped sources. Intersect and
// Union are Reduce specialized to AND/OR; Reduce is exposed directly for
// rules neither name (e.g. a weighted threshold over more than two sources).
func Reduce[V, R any](maskOp MaskOp, leafOp LeafOp[V, R], sources ...Source[V]) (*LazyOp[R], error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	shape := sources[0].Shape()
	for _, s := range sources[1:] {
		if s.Shape() != shape {
			return nil, &ErrShapeMismatch{Want: shape, Got: s.Shape()}
		}
	}

	views := make([]view[V], len(sources))
	for i, s := range sources {
		views[i] = s.root()
	}

	return &LazyOp[R]{
		shape: shape,
		rootView: &reduceView[V, R]{
			views:      views,
			maskOp:     maskOp,
			leafOp:     leafOp,
			blockWidth: shape.blockWidth(),
		},
	}, nil
}

// Intersect composes the keys common to every source, combining their
// values with combine. Because AND guarantees every source contributes at a
// surviving key, combine receives a plain, fully-populated slice rather
// than Maybe[V].
func Intersect[V, R any](combine func(vals []V) R, sources ...Source[V]) (*LazyOp[R], error) {
	leafOp := func(vals []Maybe[V]) R {
		plain := make([]V, len(vals))
		for i, mv := range vals {
			plain[i] = mv.Value
		}
		return combine(plain)
	}
	op, err := Reduce[V, R](andMaskOp, leafOp, sources...)
	if err == nil {
		loggerFor(sources).LogSetOp(context.Background(), "intersect", len(sources))
	}
	return op, err
}

// Union composes the keys present in any source, combining their values
// with combine. combine must tolerate entries where Maybe.Present is false.
func Union[V, R any](combine func(vals []Maybe[V]) R, sources ...Source[V]) (*LazyOp[R], error) {
	op, err := Reduce[V, R](orMaskOp, combine, sources...)
	if err == nil {
		loggerFor(sources).LogSetOp(context.Background(), "union", len(sources))
	}
	return op, err
}

// mapView wraps a single source view, projecting its leaf values through f.
// mask and child pass straight through unchanged, so Map never prunes a key
// that its source has — only the value at each surviving leaf changes.
type mapView[V, R any] struct {
	src view[V]
	f   func(V) R
}

func (mv *mapView[V, R]) mask() bitblock.Block { return mv.src.mask() }

func (mv *mapView[V, R]) child(sparse int) view[R] {
	c := mv.src.child(sparse)
	if c == nil {
		return nil
	}
	return &mapView[V, R]{src: c, f: mv.f}
}

func (mv *mapView[V, R]) leaf(sparse int) (R, bool) {
	v, ok := mv.src.leaf(sparse)
	if !ok {
		var zero R
		return zero, false
	}
	return mv.f(v), true
}

// Map composes a LazyOp that projects src's values through f one key at a
// time, lazily, leaving src's key set untouched. Unlike Intersect/Union it
// takes exactly one source and reduces nothing; it exists for the case where
// the next stage of a pipeline only needs a per-value transform, not a
// multi-source combination, and shouldn't pay Reduce's per-key slice
// allocations to get one.
func Map[V, R any](f func(V) R, src Source[V]) *LazyOp[R] {
	return &LazyOp[R]{
		shape:    src.Shape(),
		rootView: &mapView[V, R]{src: src.root(), f: f},
	}
}

// loggerFor returns the first source's logger if it is a *Tree, else a
// NoopLogger. Set-op composition logging is best-effort diagnostics, not a
// correctness dependency, so a LazyOp-of-LazyOp source silently opts out.
func loggerFor[V any](sources []Source[V]) *Logger {
	if len(sources) > 0 {
		if t, ok := sources[0].(*Tree[V]); ok {
			return t.opts.logger
		}
	}
	return NoopLogger()
}
