// SPDX-License-Identifier: MIT

package parallel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parmatmul/matrix"
	"github.com/katalvlaran/parmatmul/parallel"
)

// TestPartitionCoversRowsExactlyOnce checks, from the spans alone, that every
// row in [0, m) is owned by exactly one worker for a grid of (m, w).
func TestPartitionCoversRowsExactlyOnce(t *testing.T) {
	for m := 1; m <= 40; m++ {
		for w := 1; w <= 50; w++ {
			spans, err := parallel.Partition(m, w)
			require.NoError(t, err, "m=%d w=%d", m, w)
			require.Len(t, spans, w, "m=%d w=%d", m, w)
			require.NoError(t, parallel.ValidateSpans(spans, m), "m=%d w=%d", m, w)

			owners := make([]int, m)
			for _, s := range spans {
				for r := s.Start; r < s.End; r++ {
					owners[r]++
				}
			}
			for r, n := range owners {
				assert.Equal(t, 1, n, "m=%d w=%d row=%d", m, w, r)
			}
		}
	}
}

// TestPartitionRemainderGoesToLast pins the floor-then-remainder policy.
func TestPartitionRemainderGoesToLast(t *testing.T) {
	spans, err := parallel.Partition(10, 4)
	require.NoError(t, err)
	require.Equal(t, []parallel.Span{{0, 2}, {2, 4}, {4, 6}, {6, 10}}, spans)
	require.Equal(t, 4, spans[3].Len())

	spans, err = parallel.Partition(9, 3)
	require.NoError(t, err)
	require.Equal(t, []parallel.Span{{0, 3}, {3, 6}, {6, 9}}, spans)
}

// TestPartitionMoreWorkersThanRows gives every row to the last worker.
func TestPartitionMoreWorkersThanRows(t *testing.T) {
	spans, err := parallel.Partition(3, 5)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.True(t, spans[i].Empty(), "span %d", i)
	}
	require.Equal(t, parallel.Span{Start: 0, End: 3}, spans[4])
}

func TestPartitionErrors(t *testing.T) {
	_, err := parallel.Partition(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = parallel.Partition(4, 0)
	require.ErrorIs(t, err, parallel.ErrWorkerCount)

	_, err = parallel.Partition(4, -3)
	require.ErrorIs(t, err, parallel.ErrWorkerCount)

	_, err = parallel.Partition(4, math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrAllocation)
}

func TestValidateSpansRejectsGapsAndOverlaps(t *testing.T) {
	cases := map[string][]parallel.Span{
		"empty":     nil,
		"late open": {{1, 4}},
		"gap":       {{0, 2}, {3, 4}},
		"overlap":   {{0, 3}, {2, 4}},
		"reversed":  {{0, 3}, {3, 2}, {2, 4}},
		"short":     {{0, 2}, {2, 3}},
		"long":      {{0, 2}, {2, 5}},
	}
	for name, spans := range cases {
		require.ErrorIs(t, parallel.ValidateSpans(spans, 4), parallel.ErrPartition, name)
	}
	require.NoError(t, parallel.ValidateSpans([]parallel.Span{{0, 0}, {0, 4}}, 4))
}
