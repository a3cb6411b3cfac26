// Package matrix provides the dense, row-major float64 buffer used by the
// parallel multiplication engine.
//
// The matrix package provides:
//
//   - Dense: an owning r×c buffer stored flat (offset i*c + j) with
//     bounds-checked At/Set and a non-owning RawData view for kernels.
//   - Sentinel errors (ErrInvalidDimensions, ErrAllocation,
//     ErrDimensionMismatch, ErrOutOfRange, ...) matched with errors.Is.
//   - Validators shared with the engine (ValidateShape, ValidateMulCompatible).
//   - Conversions from and to nested slices (FromRows, ToRows) and from any
//     Matrix implementation (Materialize).
//
// A zero-row or zero-column buffer cannot be constructed, so every *Dense
// handed to the engine is non-degenerate.
package matrix
