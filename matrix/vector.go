// SPDX-License-Identifier: MIT

package matrix

import "fmt"

var _ Vector[float64] = Vec[float64](nil)

// Len returns the number of elements in v.
func (v Vec[T]) Len() int { return len(v) }

// At returns v[i] or ErrOutOfRange.
func (v Vec[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v) {
		var zero T
		return zero, fmt.Errorf("Vec.At(%d): %w", i, ErrOutOfRange)
	}

	return v[i], nil
}

// Set writes x into v[i] or returns ErrOutOfRange.
// Writes through a Vec obtained from Matrix.RowView land in the matrix.
func (v Vec[T]) Set(i int, x T) error {
	if i < 0 || i >= len(v) {
		return fmt.Errorf("Vec.Set(%d): %w", i, ErrOutOfRange)
	}
	v[i] = x

	return nil
}

// Clone returns an independent copy of v.
func (v Vec[T]) Clone() Vec[T] {
	if v == nil {
		return nil
	}
	cp := make(Vec[T], len(v))
	copy(cp, v)

	return cp
}

// Equal reports whether v and w have the same length and elements.
func (v Vec[T]) Equal(w Vec[T]) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}

	return true
}
