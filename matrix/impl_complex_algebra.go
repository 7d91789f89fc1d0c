// SPDX-License-Identifier: MIT
// Package matrix: complex kernels backing eigenbasis reconstruction.
//
// Purpose:
//   - Build CDense values from column vectors and diagonals.
//   - Multiply, apply to vectors and invert complex square matrices.
//
// Notes:
//   - CInverse pivots partially and treats any pivot at or below
//     singularTol·max|m| as zero, so nearly dependent bases report ErrSingular.

package matrix

import (
	"fmt"
	"math/cmplx"
)

const (
	opCMul     = "CMul"
	opCMatVec  = "CMatVec"
	opCInverse = "CInverse"
	opFromCols = "FromColumns"
)

// FromColumns assembles an n×k CDense whose j-th column is cols[j].
// All columns must be non-empty and of equal length.
//
// Errors: ErrBadShape (no columns, empty or ragged columns).
func FromColumns(cols [][]complex128) (*CDense, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, matrixErrorf(opFromCols, ErrBadShape)
	}
	rows, k := len(cols[0]), len(cols)
	out := &CDense{r: rows, c: k, data: make([]complex128, rows*k)}

	var i, j int
	for j = 0; j < k; j++ {
		if len(cols[j]) != rows {
			return nil, matrixErrorf(opFromCols,
				fmt.Errorf("column %d has length %d, want %d: %w", j, len(cols[j]), rows, ErrBadShape))
		}
		for i = 0; i < rows; i++ {
			out.data[i*k+j] = cols[j][i]
		}
	}

	return out, nil
}

// CDiag returns the square diagonal matrix diag(values).
func CDiag(values []complex128) (*CDense, error) {
	n := len(values)
	out, err := NewCDense(n, n)
	if err != nil {
		return nil, matrixErrorf("CDiag", err)
	}
	for i, z := range values {
		out.data[i*n+i] = z
	}

	return out, nil
}

// CMul computes C = A × B for complex operands.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*n*c), Space O(r*c).
func CMul(a, b *CDense) (*CDense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opCMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opCMul, ErrDimensionMismatch)
	}
	res, err := NewCDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opCMul, err)
	}

	// i→k→j with row-major strides, as in the real Mul fast path.
	var (
		i, k, j int
		av      complex128
	)
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			av = a.data[i*a.c+k]
			if av == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				res.data[i*b.c+j] += av * b.data[k*b.c+j]
			}
		}
	}

	return res, nil
}

// CMatVec computes y = m * x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != m.Cols()).
func CMatVec(m *CDense, x []complex128) ([]complex128, error) {
	if m == nil || x == nil {
		return nil, matrixErrorf(opCMatVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opCMatVec, ErrDimensionMismatch)
	}
	y := make([]complex128, m.r)

	var (
		i, j, base int
		acc        complex128
	)
	for i = 0; i < m.r; i++ {
		acc = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// CInverse returns m⁻¹ for a square complex matrix.
//
// Implementation:
//   - Stage 1: Validate non-nil, square; compute bound = |singularTol|·MaxAbs(m).
//   - Stage 2: LU with partial pivoting on a working copy (P·A = L·U, L unit lower,
//     stored in place); a column whose best pivot has |pivot| ≤ bound is singular.
//   - Stage 3: For each basis vector eₖ, solve L·y = P·eₖ then U·x = y and store x
//     as column k.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tolerance),
//     ErrSingular (no pivot above bound; the zero matrix is always singular).
//
// Determinism:
//   - Pivot ties resolve to the lowest row index.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func CInverse(m *CDense, singularTol float64) (*CDense, error) {
	if m == nil {
		return nil, matrixErrorf(opCInverse, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, matrixErrorf(opCInverse, ErrDimensionMismatch)
	}
	if isNonFinite(singularTol) {
		return nil, matrixErrorf(opCInverse, ErrNaNInf)
	}
	if singularTol < 0 {
		singularTol = -singularTol
	}

	n := m.r
	bound := singularTol * m.MaxAbs()
	lu := m.Clone()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	// Stage 2: factorization
	var (
		i, j, k, best int
		bestAbs, abs  float64
		factor        complex128
	)
	for k = 0; k < n; k++ {
		best, bestAbs = k, cmplx.Abs(lu.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if abs = cmplx.Abs(lu.data[i*n+k]); abs > bestAbs {
				best, bestAbs = i, abs
			}
		}
		if bestAbs == NormZero || bestAbs <= bound {
			return nil, matrixErrorf(opCInverse,
				fmt.Errorf("pivot %d: |%g| <= %g: %w", k, bestAbs, bound, ErrSingular))
		}
		if best != k {
			for j = 0; j < n; j++ {
				lu.data[k*n+j], lu.data[best*n+j] = lu.data[best*n+j], lu.data[k*n+j]
			}
			perm[k], perm[best] = perm[best], perm[k]
		}
		for i = k + 1; i < n; i++ {
			factor = lu.data[i*n+k] / lu.data[k*n+k]
			lu.data[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				lu.data[i*n+j] -= factor * lu.data[k*n+j]
			}
		}
	}

	// Stage 3: triangular solves per column
	inv, err := NewCDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCInverse, err)
	}
	var (
		col int
		sum complex128
		y   = make([]complex128, n)
		x   = make([]complex128, n)
	)
	for col = 0; col < n; col++ {
		// Forward: L*y = P*e_col (row i of P*e is 1 where perm[i] == col).
		for i = 0; i < n; i++ {
			sum = 0
			if perm[i] == col {
				sum = 1
			}
			for k = 0; k < i; k++ {
				sum -= lu.data[i*n+k] * y[k]
			}
			y[i] = sum
		}
		// Backward: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for k = i + 1; k < n; k++ {
				sum -= lu.data[i*n+k] * x[k]
			}
			x[i] = sum / lu.data[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
