// Package wbtree implements a weight-balanced B+ tree that applies whole
// batches of inserts and deletes atomically, rebalancing lazily through
// local rewrites and exploiting subtree independence for fork-join
// parallelism. It also maintains, at no extra pass, a per-subtree
// dominance summary that supports a parallel Pareto-minima scan over a
// two-field key projection.
//
// The tree has no point lookup, range scan, or cursor API: its sole
// entry points are whole-batch application, size/height/stats queries,
// the Pareto scan, and an optional deep invariant check. Callers that
// need point queries or iteration are expected to keep their own index;
// this type is a bulk-update compute kernel, not a general map.
package wbtree

import "github.com/go-wbtree/wbtree/internal/waug"

// OpKind tags a single update as an insertion or a deletion.
type OpKind = waug.OpKind

const (
	OpInsert = waug.OpInsert
	OpDelete = waug.OpDelete
)

// Op is one entry of a presorted update batch: ApplyUpdates requires
// ops to be sorted ascending by Key under the tree's comparator.
type Op[K any] = waug.Op[K]

// BatchKind classifies a batch so ApplyUpdates can skip the general
// prefix-sum machinery for a homogeneous batch.
type BatchKind = waug.BatchKind

const (
	BatchMixed       = waug.BatchMixed
	BatchInsertsOnly = waug.BatchInsertsOnly
	BatchDeletesOnly = waug.BatchDeletesOnly
)

// Comparator is an externally supplied strict-weak order over K: no
// method set is required of K itself.
type Comparator[K any] = waug.Comparator[K]

// Projection maps a key to its two-field Pareto summary. Trees
// constructed without a Projection disable FindParetoMinima entirely.
type Projection[K any] = waug.Projection[K]

// Summary is the two-field Pareto dominance digest: First is the key's
// primary (scan) coordinate, Second its secondary coordinate subject to
// minimization. Valid is false for the zero value, which must never be
// treated as a real summary.
type Summary = waug.Summary

// Stats reports the tree's item and node counts.
type Stats = waug.Stats

// PreconditionError reports a violated batch precondition — an
// out-of-order batch or a DELETE targeting an absent key — detected
// under self-verification.
type PreconditionError = waug.PreconditionError

// VerifyError reports an invariant violated by Verify.
type VerifyError = waug.VerifyError
