package waug

import "github.com/go-wbtree/wbtree/internal/fanout"

// FindParetoMinima is spec §4.7's dominance scan: starting from prefixMin,
// it walks the tree in router order and returns a DELETE-tagged record for
// every key whose projected summary improves the running prefix minimum,
// in in-order traversal order. A nil projection disables the feature
// entirely (spec §9's "optional projection capability").
func (t *Tree[K]) FindParetoMinima(prefixMin Summary) []Op[K] {
	if t.proj == nil || t.root == nil {
		return nil
	}
	return t.paretoScan(t.root, prefixMin, 0)
}

// paretoScan recurses into a node carrying the running prefix minimum m.
// The running minimum only ever advances past a child whose own cached
// summary improves it, and advances to exactly that child's summary — the
// same rule minimumOf's per-slot minimum field is built from — so which
// children survive, and what minimum each survivor's recursion should use,
// can be decided up front by a single sequential fold over slot.minimum
// before any recursion happens. That is what makes the per-child
// recursions below independent of one another and safe to parallelise.
func (t *Tree[K]) paretoScan(n node[K], m Summary, depth int) []Op[K] {
	if n.isLeaf() {
		return t.paretoScanLeaf(n.(*leafNode[K]), m)
	}
	in := n.(*innerNode[K])

	type job struct {
		childIdx int
		min      Summary
	}
	jobs := make([]job, 0, in.slotuse)
	running := m
	for i := 0; i < in.slotuse; i++ {
		if in.slot[i].minimum.Improves(running) {
			jobs = append(jobs, job{childIdx: i, min: running})
			running = in.slot[i].minimum
		}
	}

	results := make([][]Op[K], len(jobs))
	if depth >= t.paretoDepthThreshold {
		for idx, j := range jobs {
			results[idx] = t.paretoScan(in.slot[j.childIdx].child, j.min, depth+1)
		}
	} else {
		g := fanout.New(len(jobs))
		for idx, j := range jobs {
			idx, j := idx, j
			g.Go(func() {
				results[idx] = t.paretoScan(in.slot[j.childIdx].child, j.min, depth+1)
			})
		}
		g.Wait()
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]Op[K], 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

// paretoScanLeaf applies the identical improves/advance rule at key
// granularity, projecting each key through t.proj in turn.
func (t *Tree[K]) paretoScanLeaf(lf *leafNode[K], m Summary) []Op[K] {
	var out []Op[K]
	running := m
	for i := 0; i < lf.slotuse; i++ {
		s := t.proj(lf.slotkey[i])
		if s.Improves(running) {
			out = append(out, Op[K]{Kind: OpDelete, Key: lf.slotkey[i]})
			running = s
		}
	}
	return out
}
