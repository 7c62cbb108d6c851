// Package fanout provides the fork-join task orchestration described in
// spec §5/§6: a parent spawns a bounded number of child tasks and blocks
// until all of them complete; a panic in a child is not recovered and
// crashes the process. It is a thin wrapper around golang.org/x/sync/errgroup,
// which already implements the "ref-counted continuation" semantics the
// specification describes in terms of a work-stealing pool — errgroup's
// per-Go goroutine model is the idiomatic Go substitute for that pool, and
// SetLimit bounds fan-out width so deep recursive forking does not spawn
// an unbounded number of goroutines.
package fanout

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MaxWorkers is the default per-Group limit on concurrently running
// goroutines, used when New is given a limit <= 0; it does not bound
// goroutines across groups. It mirrors GOMAXPROCS, since the tasks here are CPU-bound tree work with
// no I/O waits (spec §5: "no task suspends on I/O or locks").
var MaxWorkers = runtime.GOMAXPROCS(0)

// Group is a fork-join task group: spawn work with Go, block for
// completion with Wait. A zero Group is not usable; use New.
type Group struct {
	eg *errgroup.Group
}

// New returns a Group whose concurrent goroutines are capped at limit (or
// at MaxWorkers if limit <= 0).
func New(limit int) *Group {
	if limit <= 0 {
		limit = MaxWorkers
	}
	eg := &errgroup.Group{}
	eg.SetLimit(limit)
	return &Group{eg: eg}
}

// Go runs fn in a new goroutine. If the group's concurrency limit has
// been reached, errgroup blocks the caller until a running task finishes
// and a slot frees up; fn is never run inline on the caller's goroutine.
func (g *Group) Go(fn func()) {
	g.eg.Go(func() error {
		fn()
		return nil
	})
}

// Wait blocks until every task spawned with Go has completed. Panics
// inside a task propagate through errgroup's goroutine and crash the
// process, matching spec §4.8's "the process aborts" failure semantics —
// there is no recoverable-error path here.
func (g *Group) Wait() {
	_ = g.eg.Wait()
}
