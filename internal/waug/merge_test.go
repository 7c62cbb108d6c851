package waug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func leafOf(keys ...int) *leafNode[int] {
	lf := &leafNode[int]{slotkey: make([]int, len(keys), 16)}
	copy(lf.slotkey, keys)
	lf.slotuse = len(keys)
	return lf
}

func TestMergeLeafSingleDestination(t *testing.T) {
	src := leafOf(1, 3, 5, 7)
	ops := []Op[int]{
		{Kind: OpInsert, Key: 2},
		{Kind: OpDelete, Key: 3},
		{Kind: OpInsert, Key: 9},
	}
	dst := &leafNode[int]{slotkey: make([]int, 0, 16)}
	mergeLeaf(intCmp, src, ops, 0, []*leafNode[int]{dst}, 16, nil)

	require.Equal(t, []int{1, 2, 5, 7, 9}, dst.slotkey[:dst.slotuse])
}

func TestMergeLeafRankedAcrossMultipleLeaves(t *testing.T) {
	src := leafOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	leaves := []*leafNode[int]{
		{slotkey: make([]int, 0, 4)},
		{slotkey: make([]int, 0, 4)},
		{slotkey: make([]int, 0, 4)},
	}
	mergeLeaf(intCmp, src, nil, 0, leaves, 4, nil)

	require.Equal(t, []int{1, 2, 3, 4}, leaves[0].slotkey[:leaves[0].slotuse])
	require.Equal(t, []int{5, 6, 7, 8}, leaves[1].slotkey[:leaves[1].slotuse])
	require.Equal(t, []int{9, 10}, leaves[2].slotkey[:leaves[2].slotuse])
}

func TestMergeLeafRankCursorSqueezesTail(t *testing.T) {
	// startRank 9 with designatedLeafSize 4 over 2 leaves would compute
	// leafIdx 2, which is out of range; it must squeeze into the last leaf,
	// whose first rank is 4, so the offset within it is 9-4 = 5.
	leaves := []*leafNode[int]{
		{slotkey: make([]int, 0, 4)},
		{slotkey: make([]int, 0, 8)},
	}
	cur := newRankCursor(leaves, 4, 9)
	require.Equal(t, 1, cur.leafIdx)
	require.Equal(t, 5, cur.out)
}

func TestMergeLeafDeleteCheckInvoked(t *testing.T) {
	src := leafOf(1, 2, 3)
	ops := []Op[int]{{Kind: OpDelete, Key: 2}}
	dst := &leafNode[int]{slotkey: make([]int, 0, 8)}

	var sawFound bool
	var sawKey int
	mergeLeaf(intCmp, src, ops, 0, []*leafNode[int]{dst}, 8, func(found bool, key int) {
		sawFound, sawKey = found, key
	})
	require.True(t, sawFound)
	require.Equal(t, 2, sawKey)
	require.Equal(t, []int{1, 3}, dst.slotkey[:dst.slotuse])
}
