// Package matrix provides a dense, fixed-shape, generic matrix container.
//
// The matrix package provides:
//
//   - Matrix[T]: an M×N row-major container over any integer or float
//     element type, with bounds-checked access that returns errors instead
//     of panicking.
//   - Element-wise arithmetic: Equal, Add, Sub, Hadamard, Combine, scalar
//     Scale/AddScalar/SubScalar, each in a copy-returning and an in-place form.
//   - Broadcast kernels over a row- or column-length Vector (BroadcastSubCols,
//     ScaleRows...), Clip, ReplaceNonFinite and the tolerance-based AllClose.
//   - Row/column extraction (Row, Column) and a storage-sharing RowView.
//   - A structured document codec (JSON and YAML) of the form
//     {"height": M, "width": N, "matrix": [[...], ...]}.
//   - Vector[T], a minimal bounds-checked indexed capability, and Vec[T],
//     its slice-backed implementation.
//   - Interop with gonum (ToGonum/FromGonum) for everything beyond
//     element-wise arithmetic.
//
// Shapes are fixed at construction: arithmetic never changes M or N, and
// operands of different shape are rejected with ErrDimensionMismatch. Only
// AddRow/AddColumn grow a matrix, and only after validating the new length.
//
// See the examples in this package for usage patterns.
package matrix
