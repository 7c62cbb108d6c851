package waug

import "github.com/go-wbtree/wbtree/internal/fanout"

// sequentialPrefixThreshold bounds how small a contribution slice must be
// before the parallel scan gives up splitting it further and just sums it
// in a loop (spec §4.1: "parallel scan with split/join").
const sequentialPrefixThreshold = 4096

// weightDelta computes the exclusive prefix sum over each op's ±1 weight
// contribution, so that weightDelta[j]-weightDelta[i] is the net key-count
// change of ops[i:j] in O(1). For a homogeneous batch (kind !=
// BatchMixed), the delta reduces to (j-i)*sign, so the array is filled
// directly with i*sign and the ±1 contribution pass and prefix scan are
// skipped (spec §4.1's optimisation); the array is still allocated.
func weightDelta[K any](ops []Op[K], kind BatchKind) []int {
	m := len(ops)
	delta := make([]int, m+1)
	switch kind {
	case BatchInsertsOnly:
		for i := range delta {
			delta[i] = i
		}
		return delta
	case BatchDeletesOnly:
		for i := range delta {
			delta[i] = -i
		}
		return delta
	}
	contrib := make([]int, m)
	for i, op := range ops {
		if op.Kind == OpInsert {
			contrib[i] = 1
		} else {
			contrib[i] = -1
		}
	}
	parallelPrefixSum(contrib, delta)
	return delta
}

// parallelPrefixSum fills out[0:len(contrib)+1] with the exclusive prefix
// sum of contrib and returns the total. Implemented as a fork-join
// divide-and-conquer scan over the associative '+' operator: split the
// range in half, recurse on each half concurrently, then offset every
// entry of the right half's result by the left half's total.
func parallelPrefixSum(contrib []int, out []int) int {
	n := len(contrib)
	if n <= sequentialPrefixThreshold {
		sum := 0
		for i := 0; i < n; i++ {
			out[i] = sum
			sum += contrib[i]
		}
		out[n] = sum
		return sum
	}
	mid := n / 2
	rightOut := make([]int, n-mid+1)
	var leftTotal, rightTotal int
	g := fanout.New(2)
	g.Go(func() { leftTotal = parallelPrefixSum(contrib[:mid], out[:mid+1]) })
	g.Go(func() { rightTotal = parallelPrefixSum(contrib[mid:], rightOut) })
	g.Wait()
	for i, v := range rightOut {
		out[mid+i] = leftTotal + v
	}
	return leftTotal + rightTotal
}

// rangeWeight returns the net weight change of ops[i:j) using the
// precomputed weightdelta array — an O(1) lookup regardless of batch
// kind, per spec §4.1.
func rangeWeight(delta []int, i, j int) int {
	return delta[j] - delta[i]
}

// batchView threads a sub-range of the original batch through the
// recursive walk together with the O(1) weightdelta lookup, without
// losing the absolute offset into the original weightdelta array: ops is
// a direct subslice of the top-level batch, and delta[base+i] is its
// exclusive prefix sum at position i.
type batchView[K any] struct {
	ops   []Op[K]
	delta []int
	base  int
}

// weight is the net key-count change of the whole view, in O(1).
func (b batchView[K]) weight() int {
	return rangeWeight(b.delta, b.base, b.base+len(b.ops))
}

// slice narrows the view to ops[i:j], preserving the absolute base offset
// so nested views keep O(1) weight lookups.
func (b batchView[K]) slice(i, j int) batchView[K] {
	return batchView[K]{ops: b.ops[i:j], delta: b.delta, base: b.base + i}
}
