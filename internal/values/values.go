// Package values implements the Tree's indirect value storage: a dense,
// append-mostly vector of values addressed by the uint32 "value index"
// stored in terminal Node payloads, plus a free list so removed slots are
// reclaimed rather than leaked.
package values

import "github.com/bits-and-blooms/bitset"

// Values is a dense vector of T with O(1) append/free. A bits-and-blooms
// BitSet tracks which slots are live, giving Len() and the dangling-index
// invariant (spec §3 invariant 5) a cheap, independently checkable source
// of truth distinct from the free list itself.
type Values[T any] struct {
	slots []T
	alive *bitset.BitSet
	free  []uint32
}

// New returns an empty Values vector.
func New[T any]() *Values[T] {
	return &Values[T]{alive: bitset.New(0)}
}

// Append stores v in a free or new slot and returns its index.
func (v *Values[T]) Append(val T) uint32 {
	if n := len(v.free); n > 0 {
		idx := v.free[n-1]
		v.free = v.free[:n-1]
		v.slots[idx] = val
		v.alive.Set(uint(idx))
		return idx
	}
	idx := uint32(len(v.slots))
	v.slots = append(v.slots, val)
	v.alive.Set(uint(idx))
	return idx
}

// Get returns the value at idx and whether it is live.
func (v *Values[T]) Get(idx uint32) (T, bool) {
	if !v.alive.Test(uint(idx)) {
		var zero T
		return zero, false
	}
	return v.slots[idx], true
}

// Set overwrites the value at a live idx, returning the prior value.
func (v *Values[T]) Set(idx uint32, val T) T {
	old := v.slots[idx]
	v.slots[idx] = val
	return old
}

// Free reclaims idx, returning the value that was stored there.
func (v *Values[T]) Free(idx uint32) T {
	old := v.slots[idx]
	var zero T
	v.slots[idx] = zero
	v.alive.Clear(uint(idx))
	v.free = append(v.free, idx)
	return old
}

// Len returns the number of live values.
func (v *Values[T]) Len() int {
	return int(v.alive.Count())
}

// IsAlive reports whether idx currently refers to a live slot. Exposed for
// invariant checks in tests; not required by any operation above.
func (v *Values[T]) IsAlive(idx uint32) bool {
	return v.alive.Test(uint(idx))
}
