// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite to avoid numeric-policy interference.

package matrix_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFrom BUILDS a *Dense from row literals or fails the test.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES m[i,j] or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// MustCAt READS a complex entry or fails the test.
func MustCAt(t *testing.T, m *matrix.CDense, i, j int) complex128 {
	t.Helper()
	z, err := m.At(i, j)
	require.NoError(t, err, "CDense.At(%d,%d)", i, j)

	return z
}

// RandDense RETURNS a seeded r×c matrix with U(-1,1) entries.
func RandDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.RandomDense(rand.New(rand.NewSource(seed)), r, c)
	require.NoError(t, err)

	return m
}

// CompareExact asserts m equals want element-wise with no tolerance.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "at [%d,%d]", i, j)
		}
	}
}

// CompareClose asserts |a[i,j] - b[i,j]| ≤ delta for every entry.
func CompareClose(t *testing.T, a, b matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "rows")
	require.Equal(t, a.Cols(), b.Cols(), "cols")
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			require.InDelta(t, MustAt(t, a, i, j), MustAt(t, b, i, j), delta, "at [%d,%d]", i, j)
		}
	}
}

// CompareCClose asserts |a[i,j] - b[i,j]| ≤ delta for complex matrices.
func CompareCClose(t *testing.T, a, b *matrix.CDense, delta float64) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "rows")
	require.Equal(t, a.Cols(), b.Cols(), "cols")
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			d := cmplx.Abs(MustCAt(t, a, i, j) - MustCAt(t, b, i, j))
			require.LessOrEqual(t, d, delta, "at [%d,%d]", i, j)
		}
	}
}

// propOrthonormal asserts QᵀQ ≈ I within delta.
func propOrthonormal(t *testing.T, q matrix.Matrix, delta float64) {
	t.Helper()

	n := q.Rows()
	require.Equal(t, n, q.Cols())
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)

	id, err := matrix.Identity(n)
	require.NoError(t, err)
	CompareClose(t, id, qtq, delta)
}

// propEigenEquation asserts A*Q ≈ Q*diag(vals) within delta.
func propEigenEquation(t *testing.T, a, q matrix.Matrix, vals []float64, delta float64) {
	t.Helper()

	n := a.Rows()
	require.Len(t, vals, n)
	d := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		MustSet(t, d, i, i, vals[i])
	}

	aq, err := matrix.Mul(a, q)
	require.NoError(t, err)
	qd, err := matrix.Mul(q, d)
	require.NoError(t, err)
	CompareClose(t, aq, qd, delta)
}

// propReconstruction asserts A ≈ Q*diag(vals)*Qᵀ within delta.
func propReconstruction(t *testing.T, a, q matrix.Matrix, vals []float64, delta float64) {
	t.Helper()

	n := a.Rows()
	d := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		MustSet(t, d, i, i, vals[i])
	}

	qd, err := matrix.Mul(q, d)
	require.NoError(t, err)
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qdqt, err := matrix.Mul(qd, qt)
	require.NoError(t, err)
	CompareClose(t, a, qdqt, delta)
}
