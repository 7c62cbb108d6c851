package waug

import "github.com/go-wbtree/wbtree/internal/shape"

// rewriteNode is the Rewrite walk of spec §4.5: given an inner node whose
// children's updateDescriptors have already been filled in, it scans
// left to right, fuses contiguous defective children into runs, bulk
// rebuilds each run from a freshly allocated leaf array, and otherwise
// copies or recurses into children outside any run.
func (t *Tree[K]) rewriteNode(in *innerNode[K], descs []updateDescriptor[K]) node[K] {
	result := t.newInner(in.lvl)
	target := t.params.DesignatedSubtreeSize(in.lvl)
	i := 0
	for i < in.slotuse {
		if !descs[i].rebalance {
			t.carryChild(result, in, descs, i)
			i++
			continue
		}
		j := closeRun(descs, i, target)
		t.rebuildRun(result, in, descs, i, j)
		i = j
	}
	t.innerNodes.Add(-1)
	return result
}

// closeRun extends a defective run starting at i as far as it will go:
// it always absorbs a child that itself needs rebalancing, and otherwise
// keeps absorbing non-empty children while the accumulated run weight is
// still below the designated subtree size for this level (spec §4.5 step
// 1). Returns the exclusive end of the run.
func closeRun[K any](descs []updateDescriptor[K], i, target int) int {
	runWeight := 0
	j := i
	for j < len(descs) {
		runWeight += descs[j].weight
		j++
		if j >= len(descs) {
			break
		}
		extend := descs[j].rebalance || (descs[j].weight > 0 && runWeight < target)
		if !extend {
			break
		}
	}
	return j
}

// carryChild handles a child outside any defective run: if its sub-range
// is empty it is copied verbatim (no work was routed to it), otherwise it
// is recursed into via the ordinary Update walk.
func (t *Tree[K]) carryChild(result *innerNode[K], in *innerNode[K], descs []updateDescriptor[K], i int) {
	d := descs[i]
	if len(d.view.ops) == 0 {
		result.slot = append(result.slot, in.slot[i])
		result.slotuse++
		return
	}
	child := t.update(in.slot[i].child, d.view)
	slot := innerSlot[K]{child: child, weight: d.weight, slotkey: routerOf[K](child)}
	if t.proj != nil {
		slot.minimum = t.minimumOf(child)
	}
	result.slot = append(result.slot, slot)
	result.slotuse++
}

// rebuildRun bulk-rebuilds the closed defective run in.slot[i:j] (spec
// §4.5 step 2): if the run's total weight is zero every subtree in it is
// freed outright; otherwise a fresh leaf array is allocated, one Rewrite
// task per non-empty subtree streams that subtree's content into its
// starting rank, and Create grafts fresh sibling subtrees from the
// filled leaves, spliced into result starting at its current tail.
func (t *Tree[K]) rebuildRun(result *innerNode[K], in *innerNode[K], descs []updateDescriptor[K], i, j int) {
	W := 0
	for k := i; k < j; k++ {
		W += descs[k].weight
	}
	if W == 0 {
		for k := i; k < j; k++ {
			t.freeSubtree(in.slot[k].child)
		}
		return
	}

	numLeaves := shape.NumSubtrees(W, t.params.DesignatedLeafSize())
	leaves := t.allocateLeafArray(numLeaves)

	ranks := make([]int, j-i)
	rank := 0
	for k := i; k < j; k++ {
		ranks[k-i] = rank
		rank += descs[k].weight
	}
	t.forEach(j-i, func(idx int) {
		k := i + idx
		if descs[k].weight == 0 {
			// Every key in this child is deleted by the batch; there is
			// nothing left to stream, so free it outright.
			t.freeSubtree(in.slot[k].child)
			return
		}
		t.rewriteSubtree(in.slot[k].child, descs[k].view, ranks[idx], leaves)
	})

	for _, slot := range t.buildSlots(leaves, in.lvl-1) {
		result.slot = append(result.slot, slot)
		result.slotuse++
	}
}
