package hbtree

// Numeric constrains the built-in arithmetic combiners to types += works on.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum is an Intersect combiner that adds the values contributed by every
// source at each surviving key.
func Sum[N Numeric](vals []N) N {
	var total N
	for _, v := range vals {
		total += v
	}
	return total
}

// UnionSum is a Union combiner that adds the values of whichever sources
// contribute at a key, treating absent sources as zero.
func UnionSum[N Numeric](vals []Maybe[N]) N {
	var total N
	for _, v := range vals {
		if v.Present {
			total += v.Value
		}
	}
	return total
}

// First is an Intersect combiner that keeps the first source's value,
// useful when sources are known to agree or only one side's value matters.
func First[V any](vals []V) V {
	return vals[0]
}

// UnionFirst is a Union combiner that keeps the value of the first
// contributing source, in source order.
func UnionFirst[V any](vals []Maybe[V]) V {
	for _, v := range vals {
		if v.Present {
			return v.Value
		}
	}
	var zero V
	return zero
}
