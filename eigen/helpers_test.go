// SPDX-License-Identifier: MIT
// Package eigen_test: shared fixtures for the eigen tests.

package eigen_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/matrix"
)

// mustFrom BUILDS a *Dense from row literals or fails the test.
func mustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// mustDecompose runs Decompose and fails the test on error.
func mustDecompose(t *testing.T, a matrix.Matrix, opts ...eigen.Option) *eigen.Set {
	t.Helper()
	s, err := eigen.Decompose(a, opts...)
	require.NoError(t, err)
	require.Equal(t, a.Rows(), s.Len())
	require.True(t, s.Complete())

	return s
}

// requireCloseToReal asserts b ≈ a entry-wise (complex b, real a).
func requireCloseToReal(t *testing.T, a matrix.Matrix, b *matrix.CDense, tol float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "rows")
	require.Equal(t, a.Cols(), b.Cols(), "cols")
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			want, err := a.At(i, j)
			require.NoError(t, err)
			got, err := b.At(i, j)
			require.NoError(t, err)
			require.LessOrEqualf(t, cmplx.Abs(got-complex(want, 0)), tol,
				"[%d,%d]: got %v want %v", i, j, got, want)
		}
	}
}

// requireAllClose asserts |a-b| ≤ atol element-wise for real matrices.
func requireAllClose(t *testing.T, a, b matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(b, a, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ by more than %g", atol)
}

// requireUnit asserts ‖v‖₂ = 1.
func requireUnit(t *testing.T, v []complex128) {
	t.Helper()
	norm := cmplxs.Norm(v, 2)
	require.Truef(t, scalar.EqualWithinAbsOrRel(norm, 1, 1e-12, 1e-12), "‖v‖ = %v", norm)
}

// hasValue reports whether some value of s lies within tol of want.
func hasValue(s *eigen.Set, want complex128, tol float64) bool {
	for _, v := range s.Values() {
		if cmplx.Abs(v-want) <= tol {
			return true
		}
	}

	return false
}

// overlap returns |⟨u, v⟩| for unit vectors; 1 means parallel.
func overlap(u, v []complex128) float64 {
	var dot complex128
	for i := range u {
		dot += cmplx.Conj(u[i]) * v[i]
	}

	return cmplx.Abs(dot)
}
