// SPDX-License-Identifier: MIT

package parallel

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/katalvlaran/parmatmul/matrix"
)

// Span is a half-open row range [Start, End) owned by one worker.
type Span struct {
	Start int // first row, inclusive
	End   int // last row, exclusive
}

// Len returns the number of rows in s.
func (s Span) Len() int { return s.End - s.Start }

// Empty reports whether s holds no rows.
func (s Span) Empty() bool { return s.End == s.Start }

// Partition splits [0, rows) into exactly workers contiguous spans.
//
// Implementation:
//   - Stage 1: per = rows / workers (floor).
//   - Stage 2: span i < workers-1 is [i*per, (i+1)*per).
//   - Stage 3: the last span is [(workers-1)*per, rows) and takes the remainder.
//
// Behavior highlights:
//   - The last span can exceed the others by up to workers-1 rows.
//   - workers > rows yields empty spans for all but the last worker.
//
// Errors:
//   - matrix.ErrInvalidDimensions when rows < 1.
//   - ErrWorkerCount when workers < 1.
//   - matrix.ErrAllocation when workers spans cannot be allocated.
//
// Complexity:
//   - Time O(workers), Space O(workers).
func Partition(rows, workers int) ([]Span, error) {
	if rows < 1 {
		return nil, engineErrorf(opPartition, fmt.Errorf("rows=%d: %w", rows, matrix.ErrInvalidDimensions))
	}
	if workers < 1 {
		return nil, engineErrorf(opPartition, fmt.Errorf("workers=%d: %w", workers, ErrWorkerCount))
	}
	if err := checkBookkeeping(workers); err != nil {
		return nil, engineErrorf(opPartition, err)
	}

	per := rows / workers
	spans := make([]Span, workers)
	for i := 0; i < workers-1; i++ {
		spans[i] = Span{Start: i * per, End: (i + 1) * per}
	}
	spans[workers-1] = Span{Start: (workers - 1) * per, End: rows}

	return spans, nil
}

// ValidateSpans checks that spans tile [0, rows) in order, exactly once:
// the first starts at 0, each starts where the previous ended, none is
// reversed and the last ends at rows. Disjoint write regions in the output
// follow from this.
//
// Errors: ErrPartition.
// Complexity: O(len(spans)).
func ValidateSpans(spans []Span, rows int) error {
	if len(spans) == 0 {
		return fmt.Errorf("no spans: %w", ErrPartition)
	}
	next := 0
	for i, s := range spans {
		if s.Start != next || s.End < s.Start {
			return fmt.Errorf("span %d [%d,%d) after row %d: %w", i, s.Start, s.End, next, ErrPartition)
		}
		next = s.End
	}
	if next != rows {
		return fmt.Errorf("spans end at %d, want %d: %w", next, rows, ErrPartition)
	}

	return nil
}

// bookkeepingBytes is the per-worker memory held for one call: its span
// and its task descriptor.
const bookkeepingBytes = int(unsafe.Sizeof(Span{}) + unsafe.Sizeof(task{}))

// checkBookkeeping reports matrix.ErrAllocation when the per-worker
// descriptors for workers cannot be sized.
func checkBookkeeping(workers int) error {
	if workers > math.MaxInt/bookkeepingBytes {
		return fmt.Errorf("workers=%d: %w", workers, matrix.ErrAllocation)
	}

	return nil
}
