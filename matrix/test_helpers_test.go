// SPDX-License-Identifier: MIT

// Package matrix_test: shared helpers for the matrix tests.
// Helpers fail the test immediately on unexpected construction errors so
// that individual tests stay focused on the behavior under test.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// mustNew builds a zero rows×cols matrix or fails the test.
func mustNew[T matrix.Element](tb testing.TB, rows, cols int, opts ...matrix.Option) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.New[T](rows, cols, opts...)
	require.NoError(tb, err)

	return m
}

// mustFilled builds a rows×cols matrix filled with v or fails the test.
func mustFilled[T matrix.Element](tb testing.TB, rows, cols int, v T, opts ...matrix.Option) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.NewFilled(rows, cols, v, opts...)
	require.NoError(tb, err)

	return m
}

// mustFromRows builds a matrix from a literal or fails the test.
func mustFromRows[T matrix.Element](tb testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Matrix[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(tb, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt[T matrix.Element](tb testing.TB, m *matrix.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// requireAll asserts that every element of m equals want.
func requireAll[T matrix.Element](tb testing.TB, m *matrix.Matrix[T], want T) {
	tb.Helper()
	m.Do(func(i, j int, v T) bool {
		require.Equalf(tb, want, v, "element (%d,%d)", i, j)
		return true
	})
}
