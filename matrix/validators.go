// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/length checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// Shaped is anything that reports a row and column count.
// *Matrix[T] for every T satisfies it, which lets shape checks span element types.
type Shaped interface {
	Rows() int
	Cols() int
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil[T Element](m *Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateShape ensures m is exactly rows×cols.
// Used by document decoding into an already-shaped matrix.
func ValidateShape(m Shaped, rows, cols int) error {
	if m.Rows() != rows || m.Cols() != cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateShape: have %dx%d, want %dx%d", m.Rows(), m.Cols(), rows, cols),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape[T Element](a, b *Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}
