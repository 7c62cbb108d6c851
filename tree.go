package wbtree

import "github.com/go-wbtree/wbtree/internal/waug"

// Tree is a weight-balanced B+ tree over keys of type K, ordered by an
// externally supplied Comparator. All mutation goes through ApplyUpdates:
// there is no single-key Insert or Delete, matching the batch-oriented
// compute-kernel shape this type is built for.
type Tree[K any] struct {
	t *waug.Tree[K]
}

// New constructs an empty Tree. cmp is required; the remaining tunables
// default to sensible values and can be overridden with Option values.
func New[K any](cmp Comparator[K], opts ...Option[K]) *Tree[K] {
	cfg := buildConfig(cmp, opts)
	return &Tree[K]{t: waug.New(cfg)}
}

// ApplyUpdates applies ops — which must be sorted ascending by Key under
// the tree's comparator, with at most one operation per distinct key —
// atomically. kind lets the caller skip the general prefix-sum machinery
// when ops is known to be homogeneous (all inserts or all deletes);
// pass BatchMixed when in doubt.
func (t *Tree[K]) ApplyUpdates(ops []Op[K], kind BatchKind) {
	t.t.ApplyUpdates(ops, kind)
}

// Size returns the number of keys currently held.
func (t *Tree[K]) Size() int { return t.t.Size() }

// Empty reports whether the tree holds no keys.
func (t *Tree[K]) Empty() bool { return t.t.Empty() }

// Height returns the tree's height: 0 for an empty tree or a single leaf.
func (t *Tree[K]) Height() int { return t.t.Height() }

// Stats reports the {itemcount, leaves, innernodes} triple.
func (t *Tree[K]) Stats() Stats { return t.t.Stats() }

// Clear frees every node and resets the tree to empty.
func (t *Tree[K]) Clear() { t.t.Clear() }

// FindParetoMinima returns, in in-order traversal order, a DELETE-tagged
// Op for every key whose projected Summary is not dominated by any key
// preceding it in scan order, starting from the running bound prefixMin
// (pass the zero Summary for "no bound"). Returns nil if the tree was
// constructed without WithParetoProjection.
func (t *Tree[K]) FindParetoMinima(prefixMin Summary) []Op[K] {
	return t.t.FindParetoMinima(prefixMin)
}

// Verify performs a deep invariant check: height uniformity, weight
// bands, router correctness, key ordering, minimum-summary correctness,
// and statistic coherence. It never mutates the tree. Intended for tests
// and WithSelfVerify; expensive on large trees since it walks every node.
func (t *Tree[K]) Verify() error {
	return t.t.Verify()
}

// String returns a Newick-style description of the tree's shape and
// contents, for test failure messages and ad hoc debugging. It is not a
// wire format.
func (t *Tree[K]) String() string {
	return t.t.String()
}
