package waug

// Comparator is an externally supplied strict-weak order over K. Equality
// is derived as !(a<b) && !(b<a); nothing about K requires it to expose a
// Less method or any other structure of its own (spec §3).
type Comparator[K any] func(a, b K) int

// OpKind tags a single update as an insertion or a deletion.
type OpKind uint8

const (
	OpInsert OpKind = iota
	OpDelete
)

func (k OpKind) String() string {
	if k == OpInsert {
		return "INSERT"
	}
	return "DELETE"
}

// Op is one entry of a presorted update batch.
type Op[K any] struct {
	Kind OpKind
	Key  K
}

// BatchKind classifies a batch so the prefix-sum step can fill
// weightdelta directly, without the contribution pass and scan, for
// homogeneous batches (spec §4.1's "Optimisation").
type BatchKind uint8

const (
	BatchMixed BatchKind = iota
	BatchInsertsOnly
	BatchDeletesOnly
)

// Stats is the {itemcount, leaves, innernodes} triple named by spec §6,
// enriched with the two derived readings the original C++ tree_stats
// exposes alongside that triple (nodes(), avgfill_leaves()).
type Stats struct {
	ItemCount  int
	Leaves     int
	InnerNodes int

	leafSlotMax int
}

// Nodes returns the total node count, leaves plus inner nodes.
func (s Stats) Nodes() int { return s.Leaves + s.InnerNodes }

// AvgFillLeaves returns the average occupancy of leaves as a fraction of
// leafparameter_k. Returns 0 for an empty tree.
func (s Stats) AvgFillLeaves() float64 {
	if s.Leaves == 0 || s.leafSlotMax == 0 {
		return 0
	}
	return float64(s.ItemCount) / float64(s.Leaves*s.leafSlotMax)
}

// Summary is the two-field Pareto dominance digest of an inner slot's
// subtree (spec §3, MinKey). Zero value compares as "dominates nothing"
// and must never be treated as a real summary unless Valid is set.
type Summary struct {
	First, Second int64
	Valid         bool
}

// Improves reports whether s improves the running minimum m: s.Second is
// strictly less than m.Second, or both fields tie (spec §4.7's tie
// retention rule at the leaf level, generalized to summaries).
func (s Summary) Improves(m Summary) bool {
	if !m.Valid {
		return true
	}
	if !s.Valid {
		return false
	}
	return s.Second < m.Second || (s.First == m.First && s.Second == m.Second)
}

// combine folds a child summary into a running accumulator, keeping
// whichever one the running prefix would retain first — used when a
// freshly built inner node must compute its own minimum[i] from its
// children's summaries in router order.
func combine(acc Summary, next Summary) Summary {
	if !next.Valid {
		return acc
	}
	if !acc.Valid {
		return next
	}
	if next.Improves(acc) {
		return next
	}
	return acc
}

// Projection maps a key to its two-field Pareto summary. A nil Projection
// disables the Pareto feature entirely: minimum fields become no-ops and
// FindParetoMinima refuses to run (spec §9, "optional projection
// capability").
type Projection[K any] func(K) Summary
