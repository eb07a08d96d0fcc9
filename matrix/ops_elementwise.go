// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Broadcast kernels that pair a matrix with a row- or column-length
//     vector: subtract per-row/per-column offsets, scale rows or columns.
//   - Sanitizing kernels: Clip into a range, ReplaceNonFinite.
//   - AllClose, the tolerance-based companion of Equal for float data.
//
// Policy:
//   - A broadcast vector must have exactly Cols() (column kernels) or
//     Rows() (row kernels) elements, else ErrDimensionMismatch.
//   - Results are new matrices carrying the input's numeric policy; inputs
//     are never mutated.
//   - Fixed i→j loop order over the flat row-major buffer.

package matrix

import (
	"fmt"
	"math"
)

const (
	opSubCols     = "BroadcastSubCols"
	opSubRows     = "BroadcastSubRows"
	opScaleCols   = "ScaleCols"
	opScaleRows   = "ScaleRows"
	opClip        = "Clip"
	opReplaceNF   = "ReplaceNonFinite"
	opAllClose    = "AllClose"
	opBroadcastAt = "broadcast"
)

// axis selects which index of (i,j) picks the broadcast element.
type axis int

const (
	byCol axis = iota // v[j]
	byRow             // v[i]
)

// broadcast computes out[i,j] = f(m[i,j], v[i or j]).
func broadcast[T Element](tag string, m *Matrix[T], v Vector[T], ax axis, f func(x, y T) T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if v == nil {
		return nil, matrixErrorf(tag, fmt.Errorf("%s: nil vector: %w", opBroadcastAt, ErrNilMatrix))
	}
	want := m.c
	if ax == byRow {
		want = m.r
	}
	if v.Len() != want {
		return nil, matrixErrorf(tag, fmt.Errorf("%s: vector length %d, want %d: %w", opBroadcastAt, v.Len(), want, ErrDimensionMismatch))
	}

	// Read the vector once; Vector implementations need not be slices.
	vals := make([]T, want)
	var err error
	for k := range vals {
		if vals[k], err = v.At(k); err != nil {
			return nil, matrixErrorf(tag, err)
		}
	}

	out := newMatrixZeroOK[T](m.r, m.c, m.validateNaNInf)
	var i, j, base int
	var y T
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if ax == byRow {
				y = vals[i]
			} else {
				y = vals[j]
			}
			r := f(m.data[base+j], y)
			if out.validateNaNInf && isNonFinite(r) {
				return nil, matrixErrorf(tag, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			out.data[base+j] = r
		}
	}

	return out, nil
}

func sub[T Element](x, y T) T { return x - y }
func mul[T Element](x, y T) T { return x * y }

// BroadcastSubCols returns out[i,j] = m[i,j] - v[j]; v has Cols() elements.
// Subtracting column means centers every column.
func BroadcastSubCols[T Element](m *Matrix[T], v Vector[T]) (*Matrix[T], error) {
	return broadcast(opSubCols, m, v, byCol, sub[T])
}

// BroadcastSubRows returns out[i,j] = m[i,j] - v[i]; v has Rows() elements.
func BroadcastSubRows[T Element](m *Matrix[T], v Vector[T]) (*Matrix[T], error) {
	return broadcast(opSubRows, m, v, byRow, sub[T])
}

// ScaleCols returns out[i,j] = m[i,j] * v[j].
func ScaleCols[T Element](m *Matrix[T], v Vector[T]) (*Matrix[T], error) {
	return broadcast(opScaleCols, m, v, byCol, mul[T])
}

// ScaleRows returns out[i,j] = m[i,j] * v[i].
func ScaleRows[T Element](m *Matrix[T], v Vector[T]) (*Matrix[T], error) {
	return broadcast(opScaleRows, m, v, byRow, mul[T])
}

// Clip returns a copy of m with every element clamped into [lo, hi].
// Bounds are swapped when lo > hi; non-finite bounds are ErrNaNInf.
func Clip[T Element](m *Matrix[T], lo, hi T) (*Matrix[T], error) {
	if isNonFinite(lo) || isNonFinite(hi) {
		return nil, matrixErrorf(opClip, ErrNaNInf)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	return mapScalar(m, func(x T) T {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}

		return x
	}, opClip)
}

// ReplaceNonFinite returns a copy of m with NaN and ±Inf replaced by val,
// which must itself be finite. Integer matrices are copied unchanged.
func ReplaceNonFinite[T Element](m *Matrix[T], val T) (*Matrix[T], error) {
	if isNonFinite(val) {
		return nil, matrixErrorf(opReplaceNF, ErrNaNInf)
	}

	return mapScalar(m, func(x T) T {
		if isNonFinite(x) {
			return val
		}

		return x
	}, opReplaceNF)
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Negative tolerances are taken by absolute value; NaN/Inf tolerances are
// ErrNaNInf. Shapes must match exactly.
func AllClose[T Element](a, b *Matrix[T], rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for k := range a.data {
		av, bv = float64(a.data[k]), float64(b.data[k])
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
