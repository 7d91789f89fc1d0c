// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the element-wise kernels.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/matrix"
)

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, sum)

	// fallback path gives the same bits
	sum2, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, sum2)

	diff, err := matrix.Sub(b, hide{a})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{9, 18}, {27, 36}}, diff)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{1, -2}, {3, 4}})
	s, err := matrix.Scale(hide{a}, 0.5)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.5, -1}, {1.5, 2}}, s)
	require.Equal(t, 1.0, MustAt(t, a, 0, 0), "input untouched")

	_, err = matrix.Scale(a, math.Inf(-1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.Scale(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := MustFrom(t, [][]float64{{1, 2}, {3, 4 + 1e-9}})

	ok, err := matrix.AllClose(a, b, 0, 1e-8)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-10)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(hide{a}, b, -1e-9, 0) // |rtol|·4 covers 1e-9
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, MustDense(t, 1, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
