package wbtree

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// point is the {first, second} pair used throughout the scan scenario:
// First is the primary (scan) coordinate, Second the one minimized.
type point struct {
	first, second int
}

func projectPoint(p point) Summary {
	return Summary{First: int64(p.first), Second: int64(p.second), Valid: true}
}

// Scenario 6: Pareto scan over {(1,5),(2,3),(3,4),(4,2),(5,6)} yields
// minima {(1,5),(2,3),(4,2)} in first-field order.
func TestFindParetoMinimaLiteralScenario(t *testing.T) {
	points := []point{{1, 5}, {2, 3}, {3, 4}, {4, 2}, {5, 6}}

	cmpKey := func(a, b point) int {
		switch {
		case a.first < b.first:
			return -1
		case a.first > b.first:
			return 1
		default:
			return 0
		}
	}

	tr := New[point](cmpKey, WithParetoProjection[point](projectPoint), WithSelfVerify[point](true))
	ops := make([]Op[point], len(points))
	for i, p := range points {
		ops[i] = Op[point]{Kind: OpInsert, Key: p}
	}
	tr.ApplyUpdates(ops, BatchInsertsOnly)

	got := tr.FindParetoMinima(Summary{})
	want := []point{{1, 5}, {2, 3}, {4, 2}}

	var gotPoints []point
	for _, op := range got {
		require.Equal(t, OpDelete, op.Kind)
		gotPoints = append(gotPoints, op.Key)
	}
	if diff := cmp.Diff(want, gotPoints, cmp.AllowUnexported(point{})); diff != "" {
		t.Errorf("FindParetoMinima mismatch (-want +got):\n%s", diff)
	}
}

func TestFindParetoMinimaWithoutProjectionReturnsNil(t *testing.T) {
	tr := New[int](intCmp)
	tr.ApplyUpdates(insertOps(1, 2, 3), BatchInsertsOnly)

	require.Nil(t, tr.FindParetoMinima(Summary{}))
}

// TestFindParetoMinimaAgainstBruteForce checks Pareto completeness: the
// scan's output must match the brute-force skyline over a larger random
// set of points, scanned in first-field order.
func TestFindParetoMinimaAgainstBruteForce(t *testing.T) {
	rng := newXorshift(12345)
	n := 500
	points := make([]point, n)
	for i := range points {
		points[i] = point{first: i, second: int(rng.next() % 1000)}
	}

	cmpKey := func(a, b point) int {
		switch {
		case a.first < b.first:
			return -1
		case a.first > b.first:
			return 1
		default:
			return 0
		}
	}

	tr := New[point](cmpKey, WithParetoProjection[point](projectPoint), WithSelfVerify[point](true))
	ops := make([]Op[point], len(points))
	for i, p := range points {
		ops[i] = Op[point]{Kind: OpInsert, Key: p}
	}
	tr.ApplyUpdates(ops, BatchInsertsOnly)

	got := tr.FindParetoMinima(Summary{})
	var gotFirsts []int
	for _, op := range got {
		gotFirsts = append(gotFirsts, op.Key.first)
	}

	sorted := append([]point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].first < sorted[j].first })
	var want []int
	best := int(^uint(0) >> 1)
	for _, p := range sorted {
		if p.second < best {
			want = append(want, p.first)
			best = p.second
		}
	}

	require.Equal(t, want, gotFirsts)
}

// xorshift is a tiny deterministic PRNG so fuzz-style tests are
// reproducible without relying on math/rand's global seed state.
type xorshift struct{ state uint64 }

func newXorshift(seed uint64) *xorshift {
	if seed == 0 {
		seed = 1
	}
	return &xorshift{state: seed}
}

func (x *xorshift) next() uint64 {
	x.state ^= x.state << 13
	x.state ^= x.state >> 7
	x.state ^= x.state << 17
	return x.state
}
