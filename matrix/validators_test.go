// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/matrix"
)

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"equal 2x3", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
		{"row mismatch", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", MustDense(t, 2, 3), MustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateSquareNonNil covers nil inputs, square and non-square cases.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := MustFrom(t, [][]float64{{1, 2}, {2, 1}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(MustDense(t, 1, 1), 0))

	near := MustFrom(t, [][]float64{{1, 2}, {2 + 1e-10, 1}})
	require.ErrorIs(t, matrix.ValidateSymmetric(near, 0), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(near, 1e-9))
	require.NoError(t, matrix.ValidateSymmetric(near, -1e-9)) // |tol|

	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrDimensionMismatch)
}

// TestValidateSymmetricRelative: the verdict depends on asymmetry relative
// to max|A|, not on the absolute gap.
func TestValidateSymmetricRelative(t *testing.T) {
	t.Parallel()

	skew := MustFrom(t, [][]float64{{0, 4e-10}, {-4e-10, 0}})
	require.NoError(t, matrix.ValidateSymmetric(skew, 1e-9)) // absolute check admits it
	require.ErrorIs(t, matrix.ValidateSymmetricRelative(skew, 1e-9), matrix.ErrAsymmetry)

	big := MustFrom(t, [][]float64{{1e6, 2e6}, {2e6 + 1e-4, 1e6}})
	require.ErrorIs(t, matrix.ValidateSymmetric(big, 1e-9), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetricRelative(big, 1e-9))

	require.NoError(t, matrix.ValidateSymmetricRelative(MustDense(t, 3, 3), 0)) // zero matrix
	require.ErrorIs(t, matrix.ValidateSymmetricRelative(skew, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetricRelative(nil, 1e-9), matrix.ErrNilMatrix)
}

// nanMatrix reports NaN at a single cell; Dense itself cannot hold one.
type nanMatrix struct{ matrix.Matrix }

func (m nanMatrix) At(i, j int) (float64, error) {
	if i == 1 && j == 0 {
		return math.NaN(), nil
	}
	return m.Matrix.At(i, j)
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, matrix.ValidateFinite(m))
	require.NoError(t, matrix.ValidateFinite(hide{m}))
	require.ErrorIs(t, matrix.ValidateFinite(nanMatrix{m}), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
