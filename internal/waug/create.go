package waug

import "github.com/go-wbtree/wbtree/internal/shape"

// allocateLeafArray pre-sizes and pre-allocates n fresh, empty leaves
// ready to receive a rewrite's ranked placement (spec §4.2/§4.5: "the
// target leaf array of a rewrite is pre-sized and pre-allocated before
// workers touch it").
func (t *Tree[K]) allocateLeafArray(n int) []*leafNode[K] {
	leaves := make([]*leafNode[K], n)
	t.forEach(n, func(i int) {
		leaves[i] = t.newLeaf()
	})
	return leaves
}

// leavesPerChunk is the number of pre-built leaves a single child of a
// level-`level` node should span at designated occupancy. Because
// DesignatedSubtreeSize snaps to an exact multiple of DesignatedLeafSize
// for every level >= 1, this division is always exact, which is what
// lets Create operate over leaf-index ranges instead of raw key ranks and
// sidesteps any rank/leaf-boundary alignment hazard entirely.
func (t *Tree[K]) leavesPerChunk(level int) int {
	n := t.params.DesignatedSubtreeSize(level) / t.params.DesignatedLeafSize()
	if n < 1 {
		n = 1
	}
	return n
}

// buildSlots is spec §4.6's bottom-up construction applied one level
// "outside in": given the full pre-filled leaf array, it produces the
// slots (router, weight, minimum, child) for what would be the children
// of a virtual level-(level+1) node — used by rebuildRun to splice fresh
// sibling subtrees into a rewrite's result inner node (spec §4.5 step 2:
// "writing its output slots ... starting at out"). A fresh root is built
// by ApplyUpdates with createOne directly, not through this function.
func (t *Tree[K]) buildSlots(leaves []*leafNode[K], level int) []innerSlot[K] {
	sizes := shape.SplitSizes(len(leaves), t.leavesPerChunk(level+1))
	begins := prefixOffsets(sizes)
	slots := make([]innerSlot[K], len(sizes))
	t.forEach(len(sizes), func(idx int) {
		slots[idx] = t.createOne(leaves, begins[idx], begins[idx]+sizes[idx], level)
	})
	return slots
}

// createOne builds a single balanced subtree of the given level spanning
// leaf indices [leafBegin, leafEnd), per spec §4.6. Level 0 returns the
// corresponding pre-filled leaf directly; otherwise it recursively builds
// this node's children in parallel and folds their routers/weights/minima
// into this node's own slot entry.
func (t *Tree[K]) createOne(leaves []*leafNode[K], leafBegin, leafEnd, level int) innerSlot[K] {
	if level == 0 {
		lf := leaves[leafBegin]
		return innerSlot[K]{child: lf, weight: lf.slotuse, slotkey: routerOf[K](lf), minimum: t.minimumOfLeaf(lf)}
	}
	sizes := shape.SplitSizes(leafEnd-leafBegin, t.leavesPerChunk(level))
	begins := prefixOffsets(sizes)
	slots := make([]innerSlot[K], len(sizes))
	t.forEach(len(sizes), func(idx int) {
		b := leafBegin + begins[idx]
		slots[idx] = t.createOne(leaves, b, b+sizes[idx], level-1)
	})
	n := t.newInner(level)
	n.slot = slots
	n.slotuse = len(slots)
	weight := 0
	var minimum Summary
	for _, s := range slots {
		weight += s.weight
		minimum = combine(minimum, s.minimum)
	}
	return innerSlot[K]{child: n, weight: weight, slotkey: slots[len(slots)-1].slotkey, minimum: minimum}
}

// prefixOffsets returns the exclusive prefix sum of sizes, i.e. the
// starting offset of each chunk.
func prefixOffsets(sizes []int) []int {
	begins := make([]int, len(sizes))
	sum := 0
	for i, s := range sizes {
		begins[i] = sum
		sum += s
	}
	return begins
}
