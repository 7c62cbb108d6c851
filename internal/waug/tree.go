package waug

import (
	"sync/atomic"

	"github.com/go-wbtree/wbtree/internal/fanout"
	"github.com/go-wbtree/wbtree/internal/shape"
)

// Tree is the weight-balanced B+ tree engine. It owns the root, tree-wide
// statistics, the shared spare-leaf scratch pool, and the shape/compare
// configuration. There is no copy-on-write or reference-counted sharing:
// spec §9 describes a strict ownership tree with no concurrent mixed
// reader/writer traffic, so mutation is always exclusive and in place.
type Tree[K any] struct {
	root node[K]
	size int

	params shape.Params
	cmp    Comparator[K]
	proj   Projection[K]

	rewriteThreshold     int
	paretoDepthThreshold int
	selfVerify           bool

	leaves     atomic.Int64
	innerNodes atomic.Int64

	spares *sparePool[K]
}

// New constructs an empty tree from cfg.
func New[K any](cfg Config[K]) *Tree[K] {
	if cfg.Cmp == nil {
		panic("wbtree: Config.Cmp is required")
	}
	t := &Tree[K]{
		params:               cfg.Params,
		cmp:                  cfg.Cmp,
		proj:                 cfg.Proj,
		rewriteThreshold:     cfg.RewriteThreshold,
		paretoDepthThreshold: cfg.ParetoDepthThreshold,
		selfVerify:           cfg.SelfVerify,
	}
	t.spares = newSparePool[K](t.params.LeafSlotMax())
	return t
}

// Size returns the number of keys currently held.
func (t *Tree[K]) Size() int { return t.size }

// Empty reports whether the tree holds no keys.
func (t *Tree[K]) Empty() bool { return t.size == 0 }

// Height returns the tree's height (0 for an empty tree or a single
// leaf).
func (t *Tree[K]) Height() int {
	if t.root == nil {
		return 0
	}
	return t.root.level()
}

// Stats returns the {itemcount, leaves, innernodes} triple named by spec
// §6, plus the nodes()/avgfill_leaves() readings the original tree_stats
// derives from it.
func (t *Tree[K]) Stats() Stats {
	return Stats{
		ItemCount:   t.size,
		Leaves:      int(t.leaves.Load()),
		InnerNodes:  int(t.innerNodes.Load()),
		leafSlotMax: t.params.LeafSlotMax(),
	}
}

// Clear frees every node and resets the tree to empty.
func (t *Tree[K]) Clear() {
	if t.root != nil {
		t.freeSubtree(t.root)
		t.root = nil
	}
	t.size = 0
}

// forEach runs fn(0), fn(1), ..., fn(n-1). Counts at or below the
// configured rewrite threshold run sequentially in the caller's
// goroutine; larger counts fan out via the fork-join task group (spec
// §6's "tiny-rewrite fast path").
func (t *Tree[K]) forEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if n <= t.rewriteThreshold {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	g := fanout.New(n)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() { fn(i) })
	}
	g.Wait()
}

// ApplyUpdates is the root dispatch of spec §4.2: it computes the new
// tree size from the batch's weight delta, decides whether the root
// itself must be rebuilt (height change, or its weight has drifted
// outside the permitted band), and then either bulk-rebuilds the whole
// tree via Rewrite+Create or walks the existing tree in place via Update.
func (t *Tree[K]) ApplyUpdates(ops []Op[K], kind BatchKind) {
	if len(ops) == 0 {
		return
	}
	delta := weightDelta(ops, kind)
	newSize := t.size + delta[len(ops)]

	if t.selfVerify {
		if err := checkSorted(t.cmp, ops); err != nil {
			panic(err)
		}
	}

	if newSize == 0 {
		t.Clear()
		if t.selfVerify {
			if err := t.Verify(); err != nil {
				panic(err)
			}
		}
		return
	}

	if t.root == nil {
		t.root = t.newLeaf()
	}

	level := t.params.NumOptimalLevels(newSize)
	rootRebuild := (level < t.root.level() && newSize < t.params.MinWeight(t.root.level())) ||
		newSize > t.params.MaxWeight(t.root.level())

	b := batchView[K]{ops: ops, delta: delta, base: 0}

	if rootRebuild {
		numLeaves := shape.NumSubtrees(newSize, t.params.DesignatedLeafSize())
		leaves := t.allocateLeafArray(numLeaves)
		t.rewriteSubtree(t.root, b, 0, leaves)
		newRootSlot := t.createOne(leaves, 0, len(leaves), level)
		t.root = newRootSlot.child
	} else {
		t.root = t.update(t.root, b)
	}
	t.size = newSize

	if t.selfVerify {
		if err := t.Verify(); err != nil {
			panic(err)
		}
	}
}
