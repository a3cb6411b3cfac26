// SPDX-License-Identifier: MIT

package parallel

// Test-Bridge (white-box) for private helpers.
// Lives in package parallel so it can reach unexported symbols, but is only
// compiled into the test binary.

import "golang.org/x/sync/errgroup"

// SetStartForTest replaces how e starts workers inside its task group.
func SetStartForTest(e *Engine, fn func(g *errgroup.Group, f func() error) bool) {
	e.start = fn
}

// MulRowsForTest runs the kernel for one span against raw row-major buffers.
// c must be the full output buffer; the kernel only receives span's rows of it.
func MulRowsForTest(a, b, c []float64, s Span, rowsA, colsA, colsB int) {
	mulRows(newTask(a, b, c, s, rowsA, colsA, colsB))
}
