// SPDX-License-Identifier: MIT

package parallel

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parmatmul/matrix"
)

// startFunc starts fn inside g and reports whether it was started.
type startFunc func(g *errgroup.Group, fn func() error) bool

// Engine multiplies matrices with a fixed worker count per call.
// An Engine is immutable after New and safe for concurrent use; every
// Multiply call owns its own task group and buffers.
type Engine struct {
	workerLimit int
	inputPolicy []matrix.Option
	start       startFunc
}

// defaultEngine backs the package-level Multiply. It holds no mutable state.
var defaultEngine = New()

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	o := gatherOptions(opts...)

	return &Engine{
		workerLimit: o.workerLimit,
		inputPolicy: o.inputPolicy,
		start:       (*errgroup.Group).TryGo,
	}
}

// Multiply computes C = A × B with workers goroutines using the default Engine.
// See (*Engine).Multiply.
func Multiply(a, b matrix.Matrix, workers int) (*matrix.Dense, error) {
	return defaultEngine.Multiply(a, b, workers)
}

// Multiply computes C = A × B, splitting C's rows across exactly workers
// goroutines, and returns C only after every worker has finished.
//
// Implementation:
//   - Stage 1 (Validate): operands non-nil, A.Cols == B.Rows, workers >= 1
//     and within the worker limit, C and the per-worker descriptors
//     addressable.
//   - Stage 2 (Prepare): take *Dense operands as-is (read-only) or copy other
//     Matrix implementations; allocate C; partition rows; build descriptors.
//   - Stage 3 (Dispatch): start one worker per descriptor in a task group.
//   - Stage 4 (Join): wait for all workers, then hand C to the caller.
//
// Behavior highlights:
//   - Nothing is allocated and no worker starts when Stage 1 fails.
//   - workers > A.Rows is legal: the extra workers get empty spans.
//   - workers above the configured limit fail with ErrWorkerStart before
//     anything is allocated, so the outcome never depends on scheduling.
//   - A worker-start failure during dispatch stops it, joins the started
//     workers and returns ErrWorkerStart with no output.
//   - Operands are never written.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, ErrWorkerCount,
//     matrix.ErrAllocation, ErrWorkerStart; all wrapped with "Multiply: ".
//
// Complexity:
//   - Time O(m*k*n) total work, Space O(m*n + workers).
func (e *Engine) Multiply(a, b matrix.Matrix, workers int) (*matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, engineErrorf(opMultiply, err)
	}
	if workers < 1 {
		return nil, engineErrorf(opMultiply, fmt.Errorf("workers=%d: %w", workers, ErrWorkerCount))
	}
	if e.workerLimit > 0 && workers > e.workerLimit {
		return nil, engineErrorf(opMultiply, fmt.Errorf("workers=%d over limit %d: %w", workers, e.workerLimit, ErrWorkerStart))
	}
	rowsA, colsA, colsB := a.Rows(), a.Cols(), b.Cols()
	if err := matrix.ValidateShape(rowsA, colsB); err != nil {
		return nil, engineErrorf(opMultiply, err)
	}

	spans, err := Partition(rowsA, workers)
	if err != nil {
		return nil, engineErrorf(opMultiply, err)
	}
	if err = ValidateSpans(spans, rowsA); err != nil {
		return nil, engineErrorf(opMultiply, err)
	}

	ad, err := e.operand(a)
	if err != nil {
		return nil, engineErrorf(opMultiply, err)
	}
	bd, err := e.operand(b)
	if err != nil {
		return nil, engineErrorf(opMultiply, err)
	}
	c, err := matrix.NewDense(rowsA, colsB)
	if err != nil {
		return nil, engineErrorf(opMultiply, err)
	}

	tasks := make([]task, len(spans))
	for i, s := range spans {
		tasks[i] = newTask(ad.RawData(), bd.RawData(), c.RawData(), s, rowsA, colsA, colsB)
	}
	if err = e.run(tasks); err != nil {
		return nil, engineErrorf(opMultiply, err)
	}

	return c, nil
}

// operand returns m as a *Dense the workers can index directly. A *Dense is
// shared as-is since workers only read it; anything else is copied once.
func (e *Engine) operand(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d, nil
	}

	return matrix.Materialize(m, e.inputPolicy...)
}

// run starts one worker per task and joins them all. Wait runs on every
// path, so no worker outlives the call.
func (e *Engine) run(tasks []task) error {
	var g errgroup.Group
	if e.workerLimit > 0 {
		g.SetLimit(e.workerLimit)
	}
	for i, t := range tasks {
		if !e.start(&g, func() error {
			mulRows(t)
			return nil
		}) {
			_ = g.Wait()
			return fmt.Errorf("worker %d of %d: %w", i, len(tasks), ErrWorkerStart)
		}
	}

	return g.Wait()
}
