// SPDX-License-Identifier: MIT

package parallel

// task is the immutable descriptor a single worker runs. It is passed by
// value; a and b are the shared read-only operands, c is the caller's output
// restricted to rows [span.Start, span.End) and capped there, so a worker
// cannot reach another worker's rows.
type task struct {
	a, b  []float64 // row-major A (rowsA×colsA) and B (colsA×colsB)
	c     []float64 // rows span.Start..span.End-1 of C, len == span.Len()*colsB
	span  Span
	rowsA int
	colsA int
	colsB int
}

// newTask binds span to the operands and carves its rows out of c.
func newTask(a, b, c []float64, span Span, rowsA, colsA, colsB int) task {
	lo, hi := span.Start*colsB, span.End*colsB

	return task{
		a:     a,
		b:     b,
		c:     c[lo:hi:hi],
		span:  span,
		rowsA: rowsA,
		colsA: colsA,
		colsB: colsB,
	}
}

// mulRows computes rows [t.span.Start, t.span.End) of C = A × B.
//
// Implementation:
//   - i → j → k loops; sum starts at 0.0 and accumulates left to right.
//
// Determinism:
//   - The float64 conversion rounds each product before the add, which keeps
//     the compiler from fusing it into an FMA on targets that have one.
//
// Complexity:
//   - Time O(span.Len() * colsA * colsB), Space O(1).
func mulRows(t task) {
	var (
		i, j, k int
		sum     float64
		aRow    []float64
		cRow    []float64
	)
	for i = t.span.Start; i < t.span.End; i++ {
		aRow = t.a[i*t.colsA : (i+1)*t.colsA]
		cRow = t.c[(i-t.span.Start)*t.colsB : (i-t.span.Start+1)*t.colsB]
		for j = 0; j < t.colsB; j++ {
			sum = 0.0
			for k = 0; k < t.colsA; k++ {
				sum += float64(aRow[k] * t.b[k*t.colsB+j])
			}
			cRow[j] = sum
		}
	}
}
