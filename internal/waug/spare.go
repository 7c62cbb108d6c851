package waug

import "sync"

// sparePool hands out scratch leaves used as the destination of the
// two-pointer merge during in-place leaf updates (spec §3, "Spare leaf").
// Modeled directly on the teacher's nodePool (internal/abstract/node_pool.go):
// a sync.Pool keyed by tree shape rather than a single global, since two
// trees with different leafparameter_k values must not share scratch
// buffers sized for the wrong capacity.
type sparePool[K any] struct {
	pool sync.Pool
}

func newSparePool[K any](leafCap int) *sparePool[K] {
	sp := &sparePool[K]{}
	sp.pool.New = func() any {
		return &leafNode[K]{slotkey: make([]K, 0, leafCap)}
	}
	return sp
}

// get returns a scratch leaf with slotuse reset to zero, ready to receive
// a two-pointer merge's output.
func (sp *sparePool[K]) get() *leafNode[K] {
	lf := sp.pool.Get().(*leafNode[K])
	lf.slotkey = lf.slotkey[:0]
	lf.slotuse = 0
	return lf
}

// put returns a leaf to the pool for reuse by the next worker that needs
// a scratch destination. The leaf must not be referenced by the tree.
func (sp *sparePool[K]) put(lf *leafNode[K]) {
	sp.pool.Put(lf)
}
