package waug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func insertOps(keys ...int) []Op[int] {
	ops := make([]Op[int], len(keys))
	for i, k := range keys {
		ops[i] = Op[int]{Kind: OpInsert, Key: k}
	}
	return ops
}

func deleteOps(keys ...int) []Op[int] {
	ops := make([]Op[int], len(keys))
	for i, k := range keys {
		ops[i] = Op[int]{Kind: OpDelete, Key: k}
	}
	return ops
}

func TestWeightDeltaInsertsOnly(t *testing.T) {
	ops := insertOps(1, 2, 3, 4)
	delta := weightDelta(ops, BatchInsertsOnly)
	require.Equal(t, []int{0, 1, 2, 3, 4}, delta)
	require.Equal(t, 4, rangeWeight(delta, 0, 4))
	require.Equal(t, 2, rangeWeight(delta, 1, 3))
}

func TestWeightDeltaDeletesOnly(t *testing.T) {
	ops := deleteOps(1, 2, 3)
	delta := weightDelta(ops, BatchDeletesOnly)
	require.Equal(t, []int{0, -1, -2, -3}, delta)
	require.Equal(t, -3, rangeWeight(delta, 0, 3))
}

func TestWeightDeltaMixed(t *testing.T) {
	ops := []Op[int]{
		{Kind: OpInsert, Key: 1},
		{Kind: OpDelete, Key: 2},
		{Kind: OpInsert, Key: 3},
		{Kind: OpDelete, Key: 4},
		{Kind: OpInsert, Key: 5},
	}
	delta := weightDelta(ops, BatchMixed)
	require.Equal(t, []int{0, 1, 0, 1, 0, 1}, delta)
	require.Equal(t, 1, rangeWeight(delta, 0, 5))
	require.Equal(t, 0, rangeWeight(delta, 0, 2))
}

func TestParallelPrefixSumMatchesSequential(t *testing.T) {
	n := sequentialPrefixThreshold*2 + 37
	contrib := make([]int, n)
	for i := range contrib {
		if i%3 == 0 {
			contrib[i] = -1
		} else {
			contrib[i] = 1
		}
	}
	got := make([]int, n+1)
	total := parallelPrefixSum(contrib, got)

	want := make([]int, n+1)
	sum := 0
	for i, c := range contrib {
		want[i] = sum
		sum += c
	}
	want[n] = sum

	require.Equal(t, want, got)
	require.Equal(t, sum, total)
}

func TestBatchViewSliceKeepsAbsoluteOffsets(t *testing.T) {
	ops := insertOps(1, 2, 3, 4, 5, 6)
	delta := weightDelta(ops, BatchInsertsOnly)
	b := batchView[int]{ops: ops, delta: delta, base: 0}
	require.Equal(t, 6, b.weight())

	mid := b.slice(2, 5)
	require.Equal(t, 3, mid.weight())

	tail := mid.slice(1, 3)
	require.Equal(t, 2, tail.weight())
	require.Equal(t, []int{4, 5}, []int{tail.ops[0].Key, tail.ops[1].Key})
}
