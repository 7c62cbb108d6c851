package waug

// updateDescriptor is spec §3's per-child descriptor: the sub-range of
// the batch routed to this child, its projected post-update weight, and
// whether that weight leaves the permitted band for the child's level.
type updateDescriptor[K any] struct {
	view      batchView[K]
	weight    int
	rebalance bool
}

// partitionChildren binary-searches b's batch against each of in's
// routers, splitting it into slotuse contiguous sub-ranges, and projects
// each child's post-update weight and rebalance need from the current
// weight plus the O(1) weightdelta lookup (spec §4.3).
func (t *Tree[K]) partitionChildren(in *innerNode[K], b batchView[K]) []updateDescriptor[K] {
	descs := make([]updateDescriptor[K], in.slotuse)
	begin := 0
	childLevel := in.lvl - 1
	for i := 0; i < in.slotuse; i++ {
		var end int
		if i == in.slotuse-1 {
			end = len(b.ops)
		} else {
			end = searchOps(b.ops, begin, in.slot[i].slotkey, t.cmp)
		}
		view := b.slice(begin, end)
		weight := in.slot[i].weight + view.weight()
		rebalance := weight < t.params.MinWeight(childLevel) || weight > t.params.MaxWeight(childLevel)
		descs[i] = updateDescriptor[K]{view: view, weight: weight, rebalance: rebalance}
		begin = end
	}
	return descs
}

// update is the in-place Update walk of spec §4.3: for a leaf it performs
// the two-pointer merge into a spare leaf; for an inner node it partitions
// the batch among children, falling back to the Rewrite walk the moment
// any child's projected weight leaves its permitted band, and otherwise
// recurses into children with a non-empty sub-range concurrently before
// refreshing this node's routers, weights, and minima.
func (t *Tree[K]) update(n node[K], b batchView[K]) node[K] {
	if len(b.ops) == 0 {
		return n
	}
	if n.isLeaf() {
		return t.updateLeaf(n.(*leafNode[K]), b.ops)
	}
	in := n.(*innerNode[K])
	descs := t.partitionChildren(in, b)
	for i := range descs {
		if descs[i].rebalance {
			return t.rewriteNode(in, descs)
		}
	}
	t.forEach(in.slotuse, func(i int) {
		d := descs[i]
		if len(d.view.ops) == 0 {
			return
		}
		child := t.update(in.slot[i].child, d.view)
		in.slot[i].child = child
		in.slot[i].weight = d.weight
		in.slot[i].slotkey = routerOf[K](child)
		if t.proj != nil {
			in.slot[i].minimum = t.minimumOf(child)
		}
	})
	return in
}

// updateLeaf merges ops into lf via the per-worker spare-leaf scratchpad
// and swaps ownership: the slot now owns the freshly merged leaf, and the
// previously owned leaf becomes the new spare (spec §4.3).
func (t *Tree[K]) updateLeaf(lf *leafNode[K], ops []Op[K]) *leafNode[K] {
	dst := t.spares.get()
	mergeLeaf(t.cmp, lf, ops, 0, []*leafNode[K]{dst}, t.params.LeafSlotMax(), t.deleteCheck())
	t.spares.put(lf)
	return dst
}
