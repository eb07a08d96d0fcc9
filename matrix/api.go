// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common tasks.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// NewZeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of New with an intention-revealing name.
func NewZeros[T Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	return New[T](rows, cols, opts...)
}

// ZerosLike returns a new zero matrix with the same shape and numeric policy as m.
// Handy to preallocate staging buffers.
func ZerosLike[T Element](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}
	if m.validateNaNInf {
		return New[T](m.r, m.c, WithValidateNaNInf())
	}

	return New[T](m.r, m.c)
}

// Sum is an alias for Add: element-wise a + b.
func Sum[T Element](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Element](a, b *Matrix[T]) (*Matrix[T], error) { return Sub(a, b) }

// ScaleBy is an alias for Scale: s*m.
func ScaleBy[T Element](m *Matrix[T], s T) (*Matrix[T], error) { return Scale(m, s) }

// Shift is an alias for AddScalar: m + s on every element.
func Shift[T Element](m *Matrix[T], s T) (*Matrix[T], error) { return AddScalar(m, s) }
