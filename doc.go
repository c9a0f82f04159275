// Package hbtree implements an integer-keyed associative container as a
// hierarchical bitmap prefix tree (HBT): a fixed-depth, fixed-fan-out trie
// whose nodes are popcount-compressed bitmask arrays, plus a lazy
// hierarchical set-operation engine that intersects and unions independent
// trees by ANDing/ORing node bitmasks level by level — pruning branches with
// no common keys without ever visiting them.
//
// # Quick Start
//
//	t, _ := hbtree.New[string](4, 6) // depth=4, width=6 bits/level -> 24-bit keys
//	t.Insert(1, "b")
//	t.Insert(64, "c")
//	v, ok := t.Get(64) // "c", true
//
// # Set Operations
//
// Intersection and union are computed lazily over one or more sources
// (Trees or other LazyOps) without ever allocating a combined structure,
// until Materialize walks the result into a concrete Tree:
//
//	a, _ := hbtree.New[int](4, 6)
//	b, _ := hbtree.New[int](4, 6)
//	lazy, _ := hbtree.Intersect(hbtree.Sum[int], a, b)
//	result, _ := hbtree.Materialize(lazy)
//
// # Key Features
//
//   - Compressed, popcount-indexed nodes (bit-block map)
//   - Fixed-depth descent; no rebalancing, no path compression
//   - Ordered and unordered iteration driven by bitmask bit-scans
//   - Composable lazy AND/OR/Reduce over any number of sources
//   - Materialize to a Tree, or to a compressed roaring.Bitmap of keys
package hbtree
