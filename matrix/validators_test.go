// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) *matrix.Matrix[int] {
		m, err := matrix.New[int](r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Matrix[int]
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)
		})
	}
}

// TestValidateSameShapeAcrossTypes verifies Shaped spans element types.
func TestValidateSameShapeAcrossTypes(t *testing.T) {
	t.Parallel()

	i, err := matrix.New[int](2, 3)
	require.NoError(t, err)
	f, err := matrix.New[float64](2, 3)
	require.NoError(t, err)
	g, err := matrix.New[float64](3, 2)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateSameShape(i, f))
	require.ErrorIs(t, matrix.ValidateSameShape(i, g), matrix.ErrDimensionMismatch)
}

// TestValidateShape checks the exact-shape validator used by decoding.
func TestValidateShape(t *testing.T) {
	t.Parallel()

	m, err := matrix.New[uint16](3, 3)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateShape(m, 3, 3))
	err = matrix.ValidateShape(m, 2, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "have 3x3, want 2x2")

	require.ErrorIs(t, matrix.ValidateNotNil[uint16](nil), matrix.ErrNilMatrix)
}
