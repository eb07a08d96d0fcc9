// SPDX-License-Identifier: MIT
// Package matrix provides element-wise arithmetic on Matrix values:
// equality, addition, subtraction, scalar operations, the generic Combine
// kernel, Hadamard product and transpose. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Policy:
//   - Operands must share element type (enforced by the type system) and
//     shape (enforced by ValidateBinarySameShape). There is no overlap-only
//     mode: a shape mismatch is always ErrDimensionMismatch.
//   - Copy-returning kernels allocate one result; the result inherits the
//     numeric policy of the left operand.
//   - In-place kernels stage results and commit only on success, so the
//     receiver is untouched by any returned error.
//   - Loops are deterministic: a single flat walk 0..r*c-1 over row-major data.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opScale      = "Scale"
	opAddScalar  = "AddScalar"
	opSubScalar  = "SubScalar"
	opCombine    = "Combine"
	opHadamard   = "Hadamard"
	opTranspose  = "Transpose"
	opConvert    = "Convert"
	opInPlaceTag = "InPlace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equal reports whether m and o have the same shape and equal elements.
// Self-comparison returns true without iterating; the scan stops at the
// first differing pair. Two nil matrices are equal; nil and non-nil are not.
// Float NaN elements compare unequal, as with ==.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil {
		return false
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(o *Matrix[T]) bool { return !m.Equal(o) }

// combine computes out[k] = fn(a[k], b[k]) over the flat buffers.
// Shared by Add, Sub, Hadamard and Combine.
func combine[T Element](a, b *Matrix[T], fn func(x, y T) T, tag string) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := newMatrixZeroOK[T](a.r, a.c, a.validateNaNInf)
	var v T
	for k := range a.data {
		v = fn(a.data[k], b.data[k])
		if out.validateNaNInf && isNonFinite(v) {
			return nil, matrixErrorf(tag, denseErrorf(ctxSet, k/a.c, k%a.c, ErrNaNInf))
		}
		out.data[k] = v
	}

	return out, nil
}

// combineInPlace computes m[k] = fn(m[k], b[k]) with staged commit.
func combineInPlace[T Element](m, b *Matrix[T], fn func(x, y T) T, tag string) error {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return matrixErrorf(tag, err)
	}
	staged := make([]T, len(m.data))
	var v T
	for k := range m.data {
		v = fn(m.data[k], b.data[k])
		if m.validateNaNInf && isNonFinite(v) {
			return matrixErrorf(tag, denseErrorf(ctxSet, k/m.c, k%m.c, ErrNaNInf))
		}
		staged[k] = v
	}
	copy(m.data, staged)

	return nil
}

// mapScalar computes out[k] = fn(a[k]).
func mapScalar[T Element](a *Matrix[T], fn func(x T) T, tag string) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := newMatrixZeroOK[T](a.r, a.c, a.validateNaNInf)
	var v T
	for k := range a.data {
		v = fn(a.data[k])
		if out.validateNaNInf && isNonFinite(v) {
			return nil, matrixErrorf(tag, denseErrorf(ctxSet, k/a.c, k%a.c, ErrNaNInf))
		}
		out.data[k] = v
	}

	return out, nil
}

// mapScalarInPlace computes m[k] = fn(m[k]) with staged commit.
func mapScalarInPlace[T Element](m *Matrix[T], fn func(x T) T, tag string) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(tag, err)
	}
	staged := make([]T, len(m.data))
	var v T
	for k := range m.data {
		v = fn(m.data[k])
		if m.validateNaNInf && isNonFinite(v) {
			return matrixErrorf(tag, denseErrorf(ctxSet, k/m.c, k%m.c, ErrNaNInf))
		}
		staged[k] = v
	}
	copy(m.data, staged)

	return nil
}

// inPlace builds the tag of an in-place variant, e.g. "Add.InPlace".
func inPlace(tag string) string { return tag + "." + opInPlaceTag }

// ---------- binary, copy-returning ----------

// Combine applies fn element-wise to a and b and returns the result.
// This is the shared mechanism behind Add and Sub; use it for any other
// position-wise binary operation (min, max, saturating add...).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; ErrNaNInf under the numeric policy.
//
// Complexity: Time O(r*c), Space O(r*c).
func Combine[T Element](a, b *Matrix[T], fn func(x, y T) T) (*Matrix[T], error) {
	return combine(a, b, fn, opCombine)
}

// Add returns a + b element-wise.
func Add[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	return combine(a, b, func(x, y T) T { return x + y }, opAdd)
}

// Sub returns a − b element-wise.
func Sub[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	return combine(a, b, func(x, y T) T { return x - y }, opSub)
}

// Hadamard returns the element-wise product a ⊙ b.
func Hadamard[T Element](a, b *Matrix[T]) (*Matrix[T], error) {
	return combine(a, b, func(x, y T) T { return x * y }, opHadamard)
}

// ---------- scalar, copy-returning ----------

// Scale returns a*s.
func Scale[T Element](a *Matrix[T], s T) (*Matrix[T], error) {
	return mapScalar(a, func(x T) T { return x * s }, opScale)
}

// AddScalar returns a matrix with s added to every element of a.
func AddScalar[T Element](a *Matrix[T], s T) (*Matrix[T], error) {
	return mapScalar(a, func(x T) T { return x + s }, opAddScalar)
}

// SubScalar returns a matrix with s subtracted from every element of a.
func SubScalar[T Element](a *Matrix[T], s T) (*Matrix[T], error) {
	return mapScalar(a, func(x T) T { return x - s }, opSubScalar)
}

// Transpose returns aᵀ (N×M).
func Transpose[T Element](a *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out := newMatrixZeroOK[T](a.c, a.r, a.validateNaNInf)
	var i, j int
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			out.data[j*a.r+i] = a.data[i*a.c+j]
		}
	}

	return out, nil
}

// ---------- in-place ----------

// CombineInPlace sets m[i,j] = fn(m[i,j], b[i,j]).
func (m *Matrix[T]) CombineInPlace(b *Matrix[T], fn func(x, y T) T) error {
	return combineInPlace(m, b, fn, inPlace(opCombine))
}

// AddInPlace sets m += b.
func (m *Matrix[T]) AddInPlace(b *Matrix[T]) error {
	return combineInPlace(m, b, func(x, y T) T { return x + y }, inPlace(opAdd))
}

// SubInPlace sets m -= b.
func (m *Matrix[T]) SubInPlace(b *Matrix[T]) error {
	return combineInPlace(m, b, func(x, y T) T { return x - y }, inPlace(opSub))
}

// ScaleInPlace sets m *= s.
func (m *Matrix[T]) ScaleInPlace(s T) error {
	return mapScalarInPlace(m, func(x T) T { return x * s }, inPlace(opScale))
}

// AddScalarInPlace adds s to every element of m.
func (m *Matrix[T]) AddScalarInPlace(s T) error {
	return mapScalarInPlace(m, func(x T) T { return x + s }, inPlace(opAddScalar))
}

// SubScalarInPlace subtracts s from every element of m.
func (m *Matrix[T]) SubScalarInPlace(s T) error {
	return mapScalarInPlace(m, func(x T) T { return x - s }, inPlace(opSubScalar))
}

// ---------- cross-type ----------

// Convert returns a copy of m with every element converted to To.
// Float→integer truncates toward zero; every other change of value is
// rejected. Mixed-type arithmetic is spelled as Add(a, Convert[float64](b)).
//
// Errors:
//   - ErrNilMatrix.
//   - ErrTypeMismatch when an element does not fit To: NaN/±Inf or out of
//     range for an integer To, wrap-around or sign flip between integer
//     types, or a finite float64 beyond float32 range.
func Convert[To, From Element](m *Matrix[From]) (*Matrix[To], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opConvert, err)
	}
	out := newMatrixZeroOK[To](m.r, m.c, m.validateNaNInf)
	for k, v := range m.data {
		t, ok := convertElement[To](v)
		if !ok {
			return nil, matrixErrorf(opConvert, denseErrorf(ctxSet, k/m.c, k%m.c,
				fmt.Errorf("value %v: %w", v, ErrTypeMismatch)))
		}
		out.data[k] = t
	}

	return out, nil
}

// isIntegerType reports whether T truncates fractions.
func isIntegerType[T Element]() bool {
	half := 0.5

	return T(half) == 0
}
