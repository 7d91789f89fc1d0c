// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/cmplxs"

	"github.com/katalvlaran/spectral/matrix"
)

const opResidual = "Residual"

// Residual returns ‖A·v − λ·v‖₂ for the pair (λ, v), computed in complex
// arithmetic on a promoted copy of a.
//
// Errors:
//   - matrix.ErrNilMatrix.
//   - ErrDimension for non-square a or len(v) != n.
func Residual(a matrix.Matrix, p Pair) (float64, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, fmt.Errorf("%s: %w: %w", opResidual, ErrDimension, err)
	}
	if len(p.Vector) != a.Rows() {
		return 0, fmt.Errorf("%s: vector length %d, order %d: %w", opResidual, len(p.Vector), a.Rows(), ErrDimension)
	}

	ca, err := matrix.Promote(a)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}
	av, err := matrix.CMatVec(ca, p.Vector)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}
	lv := make([]complex128, len(p.Vector))
	for i, z := range p.Vector {
		lv[i] = p.Value * z
	}

	return cmplxs.Distance(av, lv, 2), nil
}

// Verify reports whether (λ, v) satisfies A·v ≈ λ·v:
//
//	‖A·v − λ·v‖₂ ≤ tol · max(1, ‖A‖_F·‖v‖₂)
//
// with tol from WithTolerance (DefaultTolerance otherwise). The bound is
// absolute for small matrices and relative for large ones.
//
// Verify never fails loudly: nil or non-square a, a length mismatch, a zero
// vector, or any non-finite quantity all yield false.
func Verify(a matrix.Matrix, p Pair, opts ...Option) bool {
	o := gatherOptions(opts...)

	res, err := Residual(a, p)
	if err != nil || math.IsNaN(res) || math.IsInf(res, 0) {
		return false
	}
	normV := cmplxs.Norm(p.Vector, 2)
	if normV == 0 || isNonFinite(normV) {
		return false
	}
	normA, err := matrix.FrobeniusNorm(a)
	if err != nil || isNonFinite(normA) {
		return false
	}

	return res <= o.tol*math.Max(1, normA*normV)
}
