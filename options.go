package wbtree

import "github.com/go-wbtree/wbtree/internal/waug"

// Option configures a Tree at construction time. Grounded on the
// generic functional-options idiom (each Option closes over a single
// field of the underlying Config and mutates it in place).
type Option[K any] func(*waug.Config[K])

// WithLeafParameter sets the leaf capacity k. Must be at least 8.
func WithLeafParameter[K any](k int) Option[K] {
	return func(cfg *waug.Config[K]) { cfg.Params.K = k }
}

// WithBranchingParameter sets the inner fan-out scale b. Must be at
// least 8.
func WithBranchingParameter[K any](b int) Option[K] {
	return func(cfg *waug.Config[K]) { cfg.Params.B = b }
}

// WithRewriteThreshold sets the fan-out count at or below which
// fork-join tasks run sequentially in the calling goroutine instead of
// spawning.
func WithRewriteThreshold[K any](n int) Option[K] {
	return func(cfg *waug.Config[K]) { cfg.RewriteThreshold = n }
}

// WithParetoDepthThreshold sets the recursion depth below which
// FindParetoMinima stops spawning a task per surviving child.
func WithParetoDepthThreshold[K any](depth int) Option[K] {
	return func(cfg *waug.Config[K]) { cfg.ParetoDepthThreshold = depth }
}

// WithParetoProjection enables the Pareto-minima feature by supplying
// the two-field key projection. Without this option, FindParetoMinima
// always returns nil.
func WithParetoProjection[K any](proj Projection[K]) Option[K] {
	return func(cfg *waug.Config[K]) { cfg.Proj = proj }
}

// WithSelfVerify runs Verify after every ApplyUpdates call and turns
// batch precondition violations into a panic carrying a PreconditionError
// rather than leaving them as undefined behavior. Intended for tests and
// development builds, not hot production paths.
func WithSelfVerify[K any](enabled bool) Option[K] {
	return func(cfg *waug.Config[K]) { cfg.SelfVerify = enabled }
}

func buildConfig[K any](cmp Comparator[K], opts []Option[K]) waug.Config[K] {
	cfg := waug.DefaultConfig(cmp)
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
