package hbtree

import (
	"context"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
)

// Materialize walks lazy's combined mask/leaf structure in ascending key
// order and inserts every surviving key into a freshly built Tree (spec
// §4.F: "materialize into... a concrete Tree"). It is the sequential
// counterpart to ParallelMaterialize.
func Materialize[R any](lazy *LazyOp[R]) (*Tree[R], error) {
	out, err := New[R](lazy.shape.Depth, lazy.shape.Width)
	if err != nil {
		return nil, err
	}

	idxPath := make([]int, lazy.shape.Depth)
	keysYielded := 0
	var walkErr error

	var walk func(v view[R], level int)
	walk = func(v view[R], level int) {
		if v == nil || walkErr != nil {
			return
		}
		for _, sparse := range v.mask().IterSet() {
			idxPath[level] = sparse
			if level == lazy.shape.Depth-1 {
				val, ok := v.leaf(sparse)
				if !ok {
					continue
				}
				if _, _, err := out.Insert(lazy.shape.compose(idxPath), val); err != nil {
					walkErr = err
					return
				}
				keysYielded++
				continue
			}
			walk(v.child(sparse), level+1)
			if walkErr != nil {
				return
			}
		}
	}
	walk(lazy.root(), 0)

	out.opts.logger.LogMaterialize(context.Background(), keysYielded, walkErr)
	if walkErr != nil {
		return nil, walkErr
	}
	return out, nil
}

// MaterializeRoaring walks lazy and collects its surviving keys into a
// compressed roaring.Bitmap, skipping value reconstruction entirely — a
// cheaper target than Materialize when only membership is needed. It
// requires the shape's key space to fit in 32 bits, since roaring.Bitmap
// indexes by uint32.
func MaterializeRoaring[V any](lazy *LazyOp[V]) (*roaring.Bitmap, error) {
	if lazy.shape.KeyBits() > 32 {
		return nil, fmt.Errorf("hbtree: MaterializeRoaring requires depth*width <= 32, got %d", lazy.shape.KeyBits())
	}

	bm := roaring.New()
	idxPath := make([]int, lazy.shape.Depth)

	var walk func(v view[V], level int)
	walk = func(v view[V], level int) {
		if v == nil {
			return
		}
		for _, sparse := range v.mask().IterSet() {
			idxPath[level] = sparse
			if level == lazy.shape.Depth-1 {
				if _, ok := v.leaf(sparse); ok {
					bm.Add(uint32(lazy.shape.compose(idxPath)))
				}
				continue
			}
			walk(v.child(sparse), level+1)
		}
	}
	walk(lazy.root(), 0)

	return bm, nil
}

// ParallelMaterialize is Materialize parallelized across the top-level
// branches of lazy's root, per spec §5's allowance of concurrent reads
// against immutable sources: each branch is walked into its own key/value
// slice concurrently, then inserted into a single result Tree sequentially,
// since Tree mutation itself is not safe for concurrent callers.
//
// For a depth-1 shape there is no inner level to fan out over, so it falls
// back to Materialize directly.
func ParallelMaterialize[R any](ctx context.Context, lazy *LazyOp[R]) (*Tree[R], error) {
	if lazy.shape.Depth == 1 {
		return Materialize(lazy)
	}

	type pair struct {
		key uint64
		val R
	}

	root := lazy.root()
	branches := root.mask().IterSet()
	results := make([][]pair, len(branches))

	g, _ := errgroup.WithContext(ctx)
	for bi, sparse := range branches {
		bi, sparse := bi, sparse
		g.Go(func() error {
			child := root.child(sparse)
			if child == nil {
				return nil
			}

			idxPath := make([]int, lazy.shape.Depth)
			idxPath[0] = sparse
			var out []pair

			var walk func(v view[R], level int)
			walk = func(v view[R], level int) {
				if v == nil {
					return
				}
				for _, s := range v.mask().IterSet() {
					idxPath[level] = s
					if level == lazy.shape.Depth-1 {
						if val, ok := v.leaf(s); ok {
							out = append(out, pair{key: lazy.shape.compose(idxPath), val: val})
						}
						continue
					}
					walk(v.child(s), level+1)
				}
			}
			walk(child, 1)
			results[bi] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out, err := New[R](lazy.shape.Depth, lazy.shape.Width)
	if err != nil {
		return nil, err
	}
	keysYielded := 0
	for _, branch := range results {
		for _, p := range branch {
			if _, _, err := out.Insert(p.key, p.val); err != nil {
				return nil, err
			}
			keysYielded++
		}
	}
	out.opts.logger.LogMaterialize(ctx, keysYielded, nil)
	return out, nil
}
