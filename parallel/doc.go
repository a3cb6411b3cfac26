// SPDX-License-Identifier: MIT

// Package parallel multiplies dense matrices with a fixed, caller-supplied
// number of workers that split the output rows.
//
// What & Why:
//
//	Multiply(A, B, w) validates the operands, allocates C (A.Rows × B.Cols),
//	cuts [0, A.Rows) into w contiguous row blocks, starts one goroutine per
//	block and joins all of them before returning C. Each worker writes only
//	its own rows of C through a view capped to that block, so the workers
//	share A and B read-only and need no locks or atomics.
//
// Partitioning:
//
//	per := rows / w. Worker i < w-1 owns [i*per, (i+1)*per); the last worker
//	owns [(w-1)*per, rows) and absorbs the whole remainder. When w > rows,
//	per is 0 and every worker but the last receives an empty block.
//
// Numerics:
//
//	Each cell is the left-to-right float64 sum of A[i,k]*B[k,j] starting at
//	0.0, with every product rounded before it is added. The result is
//	bit-identical for every worker count.
//
// Complexity:
//
//	Time O(m*k*n / w) wall clock for balanced blocks, Space O(m*n + w).
package parallel
