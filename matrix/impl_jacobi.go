// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const opSymmetricEigen = "SymmetricEigen"

// SymmetricEigen computes all eigenvalues and eigenvectors of a real
// symmetric matrix with classical Jacobi rotations.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square, finite, symmetric within tol·max|m|).
//   - Stage 2: Copy m into a private *Dense working buffer A; set V = I.
//   - Stage 3: Repeatedly pick the (p,q), p<q, with the largest |A[p,q]|
//     (row-major scan, first hit wins) and annihilate it with a rotation
//     applied to A from both sides and to V from the right.
//   - Stage 4: Stop once max|A[p,q]| ≤ tol·‖A‖_F; read eigenvalues off diag(A).
//
// Returns:
//   - []float64: eigenvalues, in diagonal order of the rotated matrix.
//   - *Dense:    V whose columns are orthonormal eigenvectors (column k ↔ value k).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrAsymmetry,
//     ErrEigenFailed (threshold not reached within maxRotations).
//
// Determinism:
//   - Fixed pivot scan and update order; identical inputs give identical bits.
//
// Complexity:
//   - Each rotation is O(n) to apply plus O(n²) to find the pivot; Space O(n²).
func SymmetricEigen(m Matrix, tol float64, maxRotations int) ([]float64, *Dense, error) {
	if err := ValidateFinite(m); err != nil {
		return nil, nil, matrixErrorf(opSymmetricEigen, err)
	}
	if err := ValidateSymmetricRelative(m, tol); err != nil {
		return nil, nil, matrixErrorf(opSymmetricEigen, err)
	}
	tol = math.Abs(tol)

	a, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opSymmetricEigen, err)
	}
	n := a.r
	v, err := Identity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opSymmetricEigen, err)
	}

	// Rotations preserve the Frobenius norm, so the threshold is fixed up front.
	// It scales with A: a zero matrix stops at once (off == 0).
	threshold := tol * frobenius(a.data)

	var (
		rot, p, q, i   int
		off            float64
		app, aqq, apq  float64
		theta, t, c, s float64
		aip, aiq       float64
	)
	for rot = 0; ; rot++ {
		off, p, q = maxOffDiagonal(a)
		if off <= threshold {
			break
		}
		if rot >= maxRotations {
			return nil, nil, matrixErrorf(opSymmetricEigen,
				fmt.Errorf("off-diagonal %g after %d rotations: %w", off, rot, ErrEigenFailed))
		}

		app, aqq, apq = a.data[p*n+p], a.data[q*n+q], a.data[p*n+q]
		// t is the smaller root of t² + 2θt − 1 = 0.
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = a.data[i*n+p], a.data[i*n+q]
			a.data[i*n+p] = c*aip - s*aiq
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+q] = s*aip + c*aiq
			a.data[q*n+i] = a.data[i*n+q]
		}
		a.data[p*n+p] = app - t*apq
		a.data[q*n+q] = aqq + t*apq
		a.data[p*n+q], a.data[q*n+p] = 0, 0

		for i = 0; i < n; i++ {
			aip, aiq = v.data[i*n+p], v.data[i*n+q]
			v.data[i*n+p] = c*aip - s*aiq
			v.data[i*n+q] = s*aip + c*aiq
		}
	}

	values := make([]float64, n)
	for i = 0; i < n; i++ {
		values[i] = a.data[i*n+i]
	}

	return values, v, nil
}

// maxOffDiagonal scans the strict upper triangle of a square Dense and
// returns the largest magnitude together with its position.
func maxOffDiagonal(a *Dense) (maxOff float64, p, q int) {
	n := a.r
	var i, j int
	var off float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			off = math.Abs(a.data[i*n+j])
			if off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return maxOff, p, q
}

// frobenius returns sqrt(Σ x²) over a flat buffer.
func frobenius(data []float64) float64 {
	sum := NormZero
	for _, x := range data {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// FrobeniusNorm returns ‖m‖_F.
//
// Errors: ErrNilMatrix or any At error from foreign implementations.
func FrobeniusNorm(m Matrix) (float64, error) {
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf("FrobeniusNorm", err)
	}

	return frobenius(d.data), nil
}
