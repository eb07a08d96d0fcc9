// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context (method, coordinates, operation tag) is
// attached with %w at the detection site; callers still use errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/index -> dimension mismatch -> document type -> numeric policy.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row, column or element) is outside valid bounds.
	// Public indexers (At/Set/Row/Column/RowView, Vec.At/Vec.Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub of different shapes, a document whose height/width disagree
	// with the receiving matrix, or an appended row/column of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrTypeMismatch signals that an encoded value could not be represented
	// as the element type of the receiving matrix.
	ErrTypeMismatch = errors.New("matrix: element type mismatch")

	// ErrMalformedDocument signals a structured document missing one of the
	// required keys (height, width, matrix).
	ErrMalformedDocument = errors.New("matrix: malformed document")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was produced or stored while the
	// finite-only numeric policy is enabled.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
