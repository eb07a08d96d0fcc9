// SPDX-License-Identifier: MIT

// Package matrix: interop with gonum's dense float64 matrices.
//
// ToGonum widens any Matrix[T] into a *mat.Dense so callers can reach the
// linear-algebra routines that live outside this package
// (products, factorizations, solvers). FromGonum narrows back with the same
// type strictness as document decoding.
package matrix

import (
	"fmt"
	"math"
	"reflect"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
//
// Errors:
//   - ErrNilMatrix; ErrInvalidDimensions for a moved-from (0×0) matrix.
//
// Complexity: Time O(r*c), Space O(r*c).
func ToGonum[T Element](m *Matrix[T]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}
	buf := make([]float64, len(m.data))
	for k, v := range m.data {
		buf[k] = float64(v)
	}

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum copies src into a new Matrix[T].
//
// Errors:
//   - ErrNilMatrix when src is nil.
//   - ErrInvalidDimensions for an empty src.
//   - ErrTypeMismatch when an integer T receives a fractional, non-finite or
//     out-of-range value, or a float32 T receives a finite value beyond its range.
//   - ErrNaNInf under the numeric policy.
func FromGonum[T Element](src mat.Matrix, opts ...Option) (*Matrix[T], error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := New[T](r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	intT := isIntegerType[T]()
	var i, j int
	var v float64
	var t T
	var ok bool
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			t, ok = fromFloat[T](v)
			if !ok || (intT && v != math.Trunc(v)) {
				return nil, matrixErrorf(opFromGonum, denseErrorf(ctxSet, i, j,
					fmt.Errorf("value %g: %w", v, ErrTypeMismatch)))
			}
			if err = out.Set(i, j, t); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return out, nil
}

// integerBounds returns the half-open range [lo, hi) of an integer T as
// exact float64 powers of two.
func integerBounds[T Element]() (lo, hi float64) {
	var zero T
	bits := reflect.TypeOf(zero).Bits()
	if zero-1 < 0 {
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}

	return 0, math.Ldexp(1, bits)
}

// fromFloat converts v to T, truncating toward zero for integer T. It
// reports false when the value does not survive: NaN/±Inf or out of range
// for integers, a finite v that overflows to ±Inf for floats.
func fromFloat[T Element](v float64) (T, bool) {
	if !isIntegerType[T]() {
		t := T(v)

		return t, isNonFinite(v) || !isNonFinite(t)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	v = math.Trunc(v)
	lo, hi := integerBounds[T]()
	if v < lo || v >= hi {
		return 0, false
	}

	return T(v), true
}

// convertElement converts v to To, reporting false when the value changes
// beyond float→integer truncation: wrap-around or sign flip between
// integer types, or any failure of fromFloat.
func convertElement[To, From Element](v From) (To, bool) {
	if !isIntegerType[From]() {
		return fromFloat[To](float64(v))
	}
	t := To(v)
	if isIntegerType[To]() {
		return t, From(t) == v && (v < 0) == (t < 0)
	}

	return t, true
}
