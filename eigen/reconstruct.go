// SPDX-License-Identifier: MIT

package eigen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spectral/matrix"
)

const (
	opReconstruct     = "Reconstruct"
	opReconstructReal = "ReconstructReal"
)

// Reconstruct rebuilds the source matrix from a complete Set:
//
//	B = Q · D · Q⁻¹
//
// where column j of Q is eigenvector j and D = diag(λ₀ … λₙ₋₁) in set order.
//
// Implementation:
//   - Stage 1: Require a complete set (n pairs of length-n vectors).
//   - Stage 2: Invert Q with partial pivoting; a pivot at or below
//     singularTol·max|Q| means the vectors are linearly dependent.
//   - Stage 3: Multiply (Q·D)·Q⁻¹ in complex arithmetic.
//
// Errors:
//   - ErrIncomplete for nil, empty or partial sets.
//   - ErrSingular (also matching matrix.ErrSingular) when Q is not invertible.
//
// Notes:
//   - The result is complex. For a real source matrix, conjugate pairs cancel
//     and imaginary parts vanish up to rounding; see ReconstructReal.
func Reconstruct(s *Set, opts ...Option) (*matrix.CDense, error) {
	if !s.Complete() {
		return nil, fmt.Errorf("%s: %d pairs for order %d: %w", opReconstruct, s.Len(), s.Order(), ErrIncomplete)
	}
	o := gatherOptions(opts...)

	q, err := s.Vectors()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	d, err := matrix.CDiag(s.Values())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	qInv, err := matrix.CInverse(q, o.singularTol)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, fmt.Errorf("%s: %w: %w", opReconstruct, ErrSingular, err)
		}
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}

	qd, err := matrix.CMul(q, d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}
	b, err := matrix.CMul(qd, qInv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstruct, err)
	}

	return b, nil
}

// ReconstructReal is Reconstruct followed by demotion to a real Dense.
// Imaginary parts above tol·max(1, max|b|) fail with matrix.ErrNotReal,
// tol coming from WithTolerance.
func ReconstructReal(s *Set, opts ...Option) (*matrix.Dense, error) {
	b, err := Reconstruct(s, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstructReal, err)
	}
	o := gatherOptions(opts...)

	r, err := b.RealPart(o.tol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opReconstructReal, err)
	}

	return r, nil
}
