package hbtree

// Builder is an immutable fluent builder for constructing a Tree. Each
// method returns a new Builder with the updated configuration, so a partial
// Builder can be shared and specialized safely.
//
// Example:
//
//	t, err := hbtree.NewBuilder[string]().
//	    Depth(4).
//	    Width(6).
//	    Logger(hbtree.NewJSONLogger(slog.LevelInfo)).
//	    Build()
type Builder[V any] struct {
	depth          int
	width          int
	logger         *Logger
	denseThreshold int
}

// NewBuilder returns an empty Builder. Depth and Width must both be set
// before Build; otherwise Build reports ErrInvalidShape.
func NewBuilder[V any]() Builder[V] {
	return Builder[V]{}
}

// Depth sets the number of levels (D).
func (b Builder[V]) Depth(depth int) Builder[V] {
	b.depth = depth
	return b
}

// Width sets the number of key bits consumed per level (W).
func (b Builder[V]) Width(width int) Builder[V] {
	b.width = width
	return b
}

// Logger attaches a Logger to the built Tree.
func (b Builder[V]) Logger(logger *Logger) Builder[V] {
	b.logger = logger
	return b
}

// DenseThreshold records the dense-node hybrid threshold (see
// WithDenseThreshold); currently inert.
func (b Builder[V]) DenseThreshold(threshold int) Builder[V] {
	b.denseThreshold = threshold
	return b
}

// Build validates the accumulated configuration and constructs a Tree.
func (b Builder[V]) Build() (*Tree[V], error) {
	opts := []Option{WithDenseThreshold(b.denseThreshold)}
	if b.logger != nil {
		opts = append(opts, WithLogger(b.logger))
	}
	return New[V](b.depth, b.width, opts...)
}
