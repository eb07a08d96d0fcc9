// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Vector capability and Vec.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// sumVector only depends on the Vector capability.
func sumVector[T matrix.Element](v matrix.Vector[T]) T {
	var s T
	for i := 0; i < v.Len(); i++ {
		x, _ := v.At(i)
		s += x
	}

	return s
}

// TestVecBounds checks the last valid index and one past it.
func TestVecBounds(t *testing.T) {
	v := matrix.Vec[int]{1, 2, 3}

	x, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, 3, x)

	_, err = v.At(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, v.Set(3, 0), matrix.ErrOutOfRange)

	require.NoError(t, v.Set(0, 10))
	require.Equal(t, 15, sumVector[int](v))
}

// TestVecCloneEqual verifies copies are independent and comparable.
func TestVecCloneEqual(t *testing.T) {
	v := matrix.Vec[float64]{1.5, -2}
	c := v.Clone()

	require.True(t, v.Equal(c))
	require.NoError(t, c.Set(1, 0))
	require.False(t, v.Equal(c))
	require.False(t, v.Equal(v[:1]))
	require.Nil(t, matrix.Vec[float64](nil).Clone())
}

// TestMatrixRowsAsVectors uses Row/Column/RowView through the Vector capability.
func TestMatrixRowsAsVectors(t *testing.T) {
	m := mustFromRows(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, 15, sumVector[int](row))

	col, err := m.Column(0)
	require.NoError(t, err)
	require.Equal(t, 5, sumVector[int](col))

	view, err := m.RowView(0)
	require.NoError(t, err)
	var vec matrix.Vector[int] = view
	require.NoError(t, vec.Set(2, 30))
	require.Equal(t, 30, mustAt(t, m, 0, 2))
}
