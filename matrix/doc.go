// Package matrix provides a small dense, row-major float64 matrix used as the
// working storage of the assignment solver.
//
// The matrix package provides:
//
//   - Dense, a flat-buffer implementation of the Matrix interface with
//     bounds-checked At/Set that return errors instead of panicking.
//   - A finite-only numeric policy (on by default) that rejects NaN/±Inf on
//     Set, Apply and FromRows.
//   - Conversions (FromRows, ToRows), validators (ValidateNotNil,
//     ValidateSquare, ValidateFinite) and reductions (Max, RowMin, ColMin,
//     SubRow, SubCol).
//
// Every error is a package sentinel (optionally wrapped with coordinates),
// so callers match with errors.Is.
package matrix
