package waug

// Verify performs the deep invariant check named by spec §6/§8: height
// uniformity, weight bands, router correctness, key ordering, minimum
// summary correctness, and statistic coherence. It never mutates the
// tree (spec §8's "idempotence of verify" law).
func (t *Tree[K]) Verify() error {
	if t.root == nil {
		if t.size != 0 {
			return &VerifyError{Reason: "empty tree reports non-zero size"}
		}
		return nil
	}
	leaves, innerNodes := 0, 0
	var lastKey K
	haveLast := false
	height := t.root.level()
	count, err := t.verifyNode(t.root, true, height, &lastKey, &haveLast, &leaves, &innerNodes)
	if err != nil {
		return err
	}
	if count != t.size {
		return &VerifyError{Reason: "in-order key count does not match Size()"}
	}
	if leaves != int(t.leaves.Load()) {
		return &VerifyError{Reason: "leaf counter does not match a fresh recount"}
	}
	if innerNodes != int(t.innerNodes.Load()) {
		return &VerifyError{Reason: "inner-node counter does not match a fresh recount"}
	}
	return nil
}

// verifyNode recursively checks n against the invariants expected of a
// node at the given level, returning the number of keys in its subtree.
func (t *Tree[K]) verifyNode(n node[K], isRoot bool, expectLevel int, lastKey *K, haveLast *bool, leaves, innerNodes *int) (int, error) {
	if n.level() != expectLevel {
		return 0, &VerifyError{Reason: "height uniformity violated: leaves are not all at the same depth"}
	}
	if n.isLeaf() {
		lf := n.(*leafNode[K])
		*leaves++
		if !isRoot {
			if lf.slotuse < t.params.LeafSlotMin() || lf.slotuse > t.params.LeafSlotMax() {
				return 0, &VerifyError{Reason: "leaf slot count outside [leafslotmin, leafslotmax]"}
			}
		}
		for i := 0; i < lf.slotuse; i++ {
			if *haveLast && t.cmp(*lastKey, lf.slotkey[i]) > 0 {
				return 0, &VerifyError{Reason: "in-order traversal is not non-decreasing"}
			}
			*lastKey = lf.slotkey[i]
			*haveLast = true
		}
		return lf.slotuse, nil
	}
	in := n.(*innerNode[K])
	*innerNodes++
	if !isRoot {
		if in.slotuse < t.params.InnerSlotMin() || in.slotuse > t.params.InnerSlotMax() {
			return 0, &VerifyError{Reason: "inner slot count outside [innerslotmin, innerslotmax]"}
		}
	}
	total := 0
	var minimum Summary
	for i := 0; i < in.slotuse; i++ {
		slot := in.slot[i]
		if !slot.child.isLeaf() || i > 0 {
			// nothing extra to check here; router order is checked below.
		}
		if i > 0 && t.cmp(in.slot[i-1].slotkey, slot.slotkey) > 0 {
			return 0, &VerifyError{Reason: "router keys are not sorted ascending"}
		}
		childCount, err := t.verifyNode(slot.child, false, expectLevel-1, lastKey, haveLast, leaves, innerNodes)
		if err != nil {
			return 0, err
		}
		if !slot.child.isLeaf() {
			if childCount < t.params.MinWeight(expectLevel-1) || childCount > t.params.MaxWeight(expectLevel-1) {
				return 0, &VerifyError{Reason: "subtree weight outside [minweight, maxweight] for its level"}
			}
		}
		if childCount != slot.weight {
			return 0, &VerifyError{Reason: "slot weight does not match actual subtree key count"}
		}
		if t.cmp(slot.slotkey, routerOf[K](slot.child)) != 0 {
			return 0, &VerifyError{Reason: "router does not equal the maximum key in its subtree"}
		}
		if t.proj != nil {
			want := t.minimumOf(slot.child)
			if want != slot.minimum {
				return 0, &VerifyError{Reason: "minimum summary does not match a fresh recomputation"}
			}
		}
		total += childCount
		minimum = combine(minimum, slot.minimum)
	}
	return total, nil
}
