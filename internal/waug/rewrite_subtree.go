package waug

// rewriteSubtree streams a source subtree's contents, merged with its
// routed sub-batch, into the target leaf array starting at startRank, a
// position within that leaf array (spec §4.4/§4.5: "source subtrees are
// streamed through updates with each element written at its final
// rank"). The source subtree is consumed: every leaf it touches is freed
// once its contents have been copied out, and every inner node on the
// path is freed once its children have been recursively streamed,
// matching spec §9's "freed exactly once" lifecycle rule.
func (t *Tree[K]) rewriteSubtree(n node[K], b batchView[K], startRank int, leaves []*leafNode[K]) {
	if n.isLeaf() {
		lf := n.(*leafNode[K])
		mergeLeaf(t.cmp, lf, b.ops, startRank, leaves, t.params.DesignatedLeafSize(), t.deleteCheck())
		t.leaves.Add(-1)
		return
	}
	in := n.(*innerNode[K])
	begins := make([]int, in.slotuse)
	views := make([]batchView[K], in.slotuse)
	begin := 0
	rank := startRank
	for i := 0; i < in.slotuse; i++ {
		var end int
		if i == in.slotuse-1 {
			end = len(b.ops)
		} else {
			end = searchOps(b.ops, begin, in.slot[i].slotkey, t.cmp)
		}
		views[i] = b.slice(begin, end)
		begins[i] = rank
		rank += in.slot[i].weight + views[i].weight()
		begin = end
	}
	t.forEach(in.slotuse, func(i int) {
		t.rewriteSubtree(in.slot[i].child, views[i], begins[i], leaves)
	})
	t.innerNodes.Add(-1)
}
