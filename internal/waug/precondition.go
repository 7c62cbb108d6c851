package waug

// checkSorted validates the batch-sorted precondition of spec §2/§4.1.
// Only invoked when self-verify is enabled; outside of that mode an
// out-of-order batch is undefined behavior by design (spec §7).
func checkSorted[K any](cmp Comparator[K], ops []Op[K]) error {
	for i := 1; i < len(ops); i++ {
		if cmp(ops[i-1].Key, ops[i].Key) > 0 {
			return &PreconditionError{Reason: "batch is not sorted ascending by key"}
		}
	}
	return nil
}

// deleteCheck returns the debug-mode bounds check of spec §9's design
// note, wired into the two-pointer merge only under self-verify: it
// panics if a DELETE operation's target key is not found in the source
// leaf. Outside self-verify mode this returns nil and the merge trusts
// the caller.
func (t *Tree[K]) deleteCheck() func(found bool, key K) {
	if !t.selfVerify {
		return nil
	}
	return func(found bool, key K) {
		if !found {
			panic(&PreconditionError{Reason: "DELETE targets a key not present in the tree"})
		}
	}
}
