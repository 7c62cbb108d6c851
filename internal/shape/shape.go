// Package shape implements the geometric invariants of the weight-balanced
// B+ tree: slot capacities, per-level weight bands, and the designated
// (target) sizes used when a subtree is rebuilt from scratch.
//
// Every function here is pure and allocation-free so it can be exercised
// directly by table-driven tests without constructing a tree.
package shape

import "math"

// Params fixes the two tunable geometry constants of a tree: the leaf
// capacity k and the branching scale b. Both must be at least 8, matching
// spec §3's constraint on the geometric constants.
type Params struct {
	K int
	B int
}

// DefaultParams matches the small-k illustrative examples used throughout
// the specification's test scenarios.
var DefaultParams = Params{K: 8, B: 8}

// LeafSlotMax is the maximum number of keys a leaf may hold.
func (p Params) LeafSlotMax() int { return p.K }

// LeafSlotMin is the minimum number of keys a non-root leaf may hold.
func (p Params) LeafSlotMin() int { return p.K / 4 }

// DesignatedLeafSize is the target size used when a leaf is freshly built
// during a rewrite.
func (p Params) DesignatedLeafSize() int { return (p.K + p.K/4) / 2 }

// InnerSlotMax is the maximum fan-out of an inner node.
func (p Params) InnerSlotMax() int { return 4 * p.B }

// InnerSlotMin is the minimum fan-out of a non-root inner node.
func (p Params) InnerSlotMin() int { return p.B / 4 }

// MinWeight is the minimum permitted key count of a subtree rooted at a
// node of level L (0 = leaf).
func (p Params) MinWeight(level int) int {
	return ipow(p.B, level) * p.K / 4
}

// MaxWeight is the maximum permitted key count of a subtree rooted at a
// node of level L.
func (p Params) MaxWeight(level int) int {
	return ipow(p.B, level) * p.K
}

// DesignatedSubtreeSize is the target weight for a child of a level-L
// node, snapped to a multiple of the leaf's designated size. For L == 1
// this reduces exactly to DesignatedLeafSize, since a level-1 node's
// children are leaves.
func (p Params) DesignatedSubtreeSize(level int) int {
	if level <= 0 {
		return p.DesignatedLeafSize()
	}
	mid := (p.MaxWeight(level-1) + p.MinWeight(level-1)) / 2
	return snap(mid, p.DesignatedLeafSize())
}

// NumOptimalLevels picks the smallest tree height able to hold n keys at
// designated (mid-band) occupancy, per spec §4.2:
//
//	num_optimal_levels(n) = 0                          if n <= designated_leafsize
//	                      = ceil(log(8n/(5k)) / log(b))  otherwise
//
// Since designated_leafsize = (k+k/4)/2 = 5k/8, 8n/(5k) ==
// n/designated_leafsize; the two forms
// are algebraically identical and this uses the simplified one.
func (p Params) NumOptimalLevels(n int) int {
	d := p.DesignatedLeafSize()
	if n <= d {
		return 0
	}
	ratio := float64(n) / float64(d)
	level := math.Ceil(math.Log(ratio) / math.Log(float64(p.B)))
	if level < 1 {
		level = 1
	}
	return int(level)
}

// NumSubtrees is the number of chunks n keys split into when each chunk
// targets size s: n/s chunks, plus one more if the remainder is closer to
// a full chunk than to being squeezed into the tail. Forced to at least 1
// when n > 0.
func NumSubtrees(n, s int) int {
	if n <= 0 || s <= 0 {
		return 0
	}
	q, r := n/s, n%s
	if r == 0 {
		return q
	}
	t := q
	if r >= s-r {
		t++
	}
	if t == 0 {
		t = 1
	}
	return t
}

// SplitSizes divides n into NumSubtrees(n, s) contiguous chunk sizes: all
// but the last sized s, with the last either absorbing the remainder
// (squeeze) or standing alone as a short final chunk (split), following
// the same policy as NumSubtrees.
func SplitSizes(n, s int) []int {
	if n <= 0 {
		return nil
	}
	t := NumSubtrees(n, s)
	if t == 0 {
		t = 1
	}
	sizes := make([]int, t)
	for i := 0; i < t-1; i++ {
		sizes[i] = s
	}
	sizes[t-1] = n - s*(t-1)
	return sizes
}

func snap(size, multiple int) int {
	if multiple <= 0 {
		return size
	}
	units := size / multiple
	if units == 0 {
		units = 1
	}
	return units * multiple
}

func ipow(base, exp int) int {
	result := 1
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
