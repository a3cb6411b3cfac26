// SPDX-License-Identifier: MIT
// Package parallel: sentinel error set.
// Operand errors (nil, dimension mismatch, allocation) reuse the matrix
// package sentinels so callers match a single set with errors.Is.

package parallel

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkerCount indicates a worker count below 1.
	ErrWorkerCount = errors.New("parallel: worker count must be >= 1")

	// ErrWorkerStart indicates that a worker could not be started. Already
	// started workers have been joined and no output is returned.
	ErrWorkerStart = errors.New("parallel: failed to start worker")

	// ErrPartition indicates row spans that do not tile [0, rows) exactly once.
	ErrPartition = errors.New("parallel: spans do not cover rows exactly once")
)

// Operation tags for uniform error wrapping.
const (
	opMultiply  = "Multiply"
	opPartition = "Partition"
)

// engineErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func engineErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
