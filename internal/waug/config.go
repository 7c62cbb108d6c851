package waug

import "github.com/go-wbtree/wbtree/internal/shape"

// Config bundles every construction-time tunable named by spec §6.
type Config[K any] struct {
	Params shape.Params

	// Cmp is the externally supplied comparator. Required.
	Cmp Comparator[K]

	// Proj projects a key to its Pareto summary. Nil disables the Pareto
	// feature: FindParetoMinima refuses to run and minimum fields are
	// never populated.
	Proj Projection[K]

	// RewriteThreshold is the tiny-rewrite fast path: fan-out counts at
	// or below this run sequentially in the calling goroutine rather
	// than spawning fork-join tasks, avoiding goroutine overhead on
	// small subtrees.
	RewriteThreshold int

	// ParetoDepthThreshold is the recursion depth below which
	// FindParetoMinima stops spawning a task per child and recurses
	// sequentially, to keep cache lines warm on small subtrees (spec
	// §4.7).
	ParetoDepthThreshold int

	// SelfVerify runs Verify after every ApplyUpdates call and turns
	// detected precondition violations into a reported error rather
	// than undefined behavior (spec §7/§8).
	SelfVerify bool
}

// DefaultConfig returns sensible defaults for every tunable except the
// required comparator.
func DefaultConfig[K any](cmp Comparator[K]) Config[K] {
	return Config[K]{
		Params:               shape.DefaultParams,
		Cmp:                  cmp,
		RewriteThreshold:     32,
		ParetoDepthThreshold: 3,
	}
}
