package hbtree

// options holds construction-time configuration for a Tree, populated by
// Option functions passed to New or Builder.Build.
type options struct {
	logger *Logger

	// denseThreshold is the population count above which a future
	// implementation may switch a Node's dense array to a direct-indexed
	// layout (spec §9's "dense-node hybrid"). It is accepted and stored so
	// the configuration seam exists, but it is not yet consulted anywhere:
	// the policy itself remains an open, unimplemented extension point.
	denseThreshold int
}

func defaultOptions() options {
	return options{
		logger: NoopLogger(),
	}
}

// Option configures a Tree at construction time.
type Option func(*options)

// WithLogger attaches a Logger to the tree. Insert/Remove emit debug records
// through it, as do Intersect/Union when this tree is their first source.
// Materialize and ParallelMaterialize log through the Tree they build, which
// always has NoopLogger, so no materialize record reaches this logger. If
// nil, logging is disabled (NoopLogger).
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithDenseThreshold records a population-count threshold for the
// dense-node hybrid optimization named in spec §9. It is currently inert:
// no Node layout switchover is implemented. Exposed so the open design
// question has a place to land without being silently decided for callers.
func WithDenseThreshold(threshold int) Option {
	return func(o *options) {
		o.denseThreshold = threshold
	}
}
