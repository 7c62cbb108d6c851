package waug

// rankCursor streams merged keys into a contiguous run of pre-allocated
// target leaves, rolling over to the next leaf once the current one
// reaches designatedLeafSize entries. A single-leaf cursor (len(leaves)
// == 1, designatedLeafSize == the leaf's own capacity) degenerates into
// the plain two-pointer merge of spec §4.3; a multi-leaf cursor with a
// starting rank implements the ranked placement of spec §4.4.
type rankCursor[K any] struct {
	leaves             []*leafNode[K]
	designatedLeafSize int
	leafIdx            int
	out                int
}

// newRankCursor positions a cursor at the given starting rank within the
// target leaf array, per spec §4.4:
//
//	leaf_number = rank / designated_leafsize, out = rank mod designated_leafsize
//	if leaf_number >= t, the remainder is squeezed into the last leaf.
func newRankCursor[K any](leaves []*leafNode[K], designatedLeafSize, startRank int) *rankCursor[K] {
	t := len(leaves)
	leafIdx := startRank / designatedLeafSize
	out := startRank % designatedLeafSize
	if leafIdx >= t {
		leafIdx = t - 1
		out = startRank - leafIdx*designatedLeafSize
	}
	return &rankCursor[K]{leaves: leaves, designatedLeafSize: designatedLeafSize, leafIdx: leafIdx, out: out}
}

func (c *rankCursor[K]) emit(k K) {
	dst := c.leaves[c.leafIdx]
	dst.slotkey = append(dst.slotkey, k)
	dst.slotuse++
	c.out++
	if c.out == c.designatedLeafSize && c.leafIdx+1 < len(c.leaves) {
		c.leafIdx++
		c.out = 0
	}
}

// mergeLeaf performs the two-pointer merge of spec §4.3/§4.4: src's
// existing keys, in order, interleaved with ops' inserts and deletes, are
// written through a rankCursor starting at startRank. A plain in-place
// leaf update calls this with a single-element leaves slice; a rewrite
// calls it with the full target leaf array and the source leaf's starting
// global rank within the defective range.
//
// DELETE(x) is assumed to target a key present in src (spec §1's
// Non-goal on per-key deletes of absent keys); debugCheck, when non-nil,
// is invoked to validate that assumption under self-verify mode.
func mergeLeaf[K any](cmp Comparator[K], src *leafNode[K], ops []Op[K], startRank int, leaves []*leafNode[K], designatedLeafSize int, debugCheck func(found bool, key K)) {
	cur := newRankCursor(leaves, designatedLeafSize, startRank)
	in := 0
	for _, op := range ops {
		for in < src.slotuse && cmp(src.slotkey[in], op.Key) < 0 {
			cur.emit(src.slotkey[in])
			in++
		}
		switch op.Kind {
		case OpDelete:
			found := in < src.slotuse && cmp(src.slotkey[in], op.Key) == 0
			if debugCheck != nil {
				debugCheck(found, op.Key)
			}
			if found {
				in++
			}
		case OpInsert:
			cur.emit(op.Key)
		}
	}
	for ; in < src.slotuse; in++ {
		cur.emit(src.slotkey[in])
	}
}
