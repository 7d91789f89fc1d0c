// SPDX-License-Identifier: MIT

package eigen

import (
	"cmp"
	"errors"
	"fmt"
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spectral/matrix"
)

const opDecompose = "Decompose"

// Decompose computes the eigenpairs of a real square matrix.
//
// Implementation:
//   - Stage 1: Validate a (not nil, square, finite).
//   - Stage 2: Pick the solver: Jacobi for symmetric input under MethodAuto
//     or MethodJacobi, gonum's general eigen-solver otherwise.
//   - Stage 3: Normalize every eigenvector to unit length with canonical phase.
//   - Stage 4: Apply the requested Order, moving whole pairs.
//
// Behavior highlights:
//   - a is never mutated.
//   - Real matrices without a real eigenbasis (rotations) yield complex
//     conjugate pairs; the Set type is complex throughout.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf.
//   - ErrDimension (also matching matrix.ErrDimensionMismatch) for non-square input.
//   - matrix.ErrAsymmetry under MethodJacobi for non-symmetric input.
//   - ErrNoConvergence when the solver fails.
//
// Complexity:
//   - Time O(n³) per sweep / QR pass, Space O(n²).
func Decompose(a matrix.Matrix, opts ...Option) (*Set, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %dx%d: %w: %w", opDecompose, a.Rows(), a.Cols(), ErrDimension, err)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	o := gatherOptions(opts...)

	method := o.method
	if method == MethodAuto {
		method = MethodGeneral
		if matrix.ValidateSymmetricRelative(a, o.symEps) == nil {
			method = MethodJacobi
		}
	}

	var (
		pairs []Pair
		err   error
	)
	switch method {
	case MethodJacobi:
		pairs, err = decomposeJacobi(a, o)
	default:
		pairs, err = decomposeGeneral(a)
	}
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opDecompose, method, err)
	}

	for i := range pairs {
		if err = normalize(pairs[i].Vector); err != nil {
			return nil, fmt.Errorf("%s(%s): vector %d: %w: %w", opDecompose, method, i, ErrNoConvergence, err)
		}
	}
	sortPairs(pairs, o.order)

	return &Set{pairs: pairs, n: a.Rows()}, nil
}

// decomposeJacobi runs the symmetric solver on the symmetrized copy
// (A + Aᵀ)/2, after checking symmetry within the configured epsilon.
func decomposeJacobi(a matrix.Matrix, o Options) ([]Pair, error) {
	if err := matrix.ValidateSymmetricRelative(a, o.symEps); err != nil {
		return nil, err
	}
	sym, err := symmetrize(a)
	if err != nil {
		return nil, err
	}

	n := a.Rows()
	maxRotations := o.maxSweeps * max(1, n*(n-1)/2)
	values, vectors, err := matrix.SymmetricEigen(sym, o.jacobiTol, maxRotations)
	if err != nil {
		if errors.Is(err, matrix.ErrEigenFailed) {
			return nil, fmt.Errorf("%w: %w", ErrNoConvergence, err)
		}
		return nil, err
	}

	pairs := make([]Pair, n)
	var (
		i, j int
		x    float64
	)
	for j = 0; j < n; j++ {
		v := make([]complex128, n)
		for i = 0; i < n; i++ {
			x, _ = vectors.At(i, j) // indices are within the n×n result
			v[i] = complex(x, 0)
		}
		pairs[j] = Pair{Value: complex(values[j], 0), Vector: v}
	}

	return pairs, nil
}

// decomposeGeneral delegates to gonum's port of LAPACK Dgeev (Hessenberg
// reduction followed by shifted QR) and reads right eigenvectors.
func decomposeGeneral(a matrix.Matrix) ([]Pair, error) {
	g, err := matrix.ToGonum(a)
	if err != nil {
		return nil, err
	}

	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenRight); !ok {
		return nil, ErrNoConvergence
	}
	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	n := len(values)
	pairs := make([]Pair, n)
	for j := 0; j < n; j++ {
		v := make([]complex128, n)
		for i := 0; i < n; i++ {
			v[i] = vectors.At(i, j)
		}
		pairs[j] = Pair{Value: values[j], Vector: v}
	}

	return pairs, nil
}

// symmetrize returns (A + Aᵀ)/2 as a fresh Dense.
func symmetrize(a matrix.Matrix) (*matrix.Dense, error) {
	t, err := matrix.Transpose(a)
	if err != nil {
		return nil, err
	}
	sum, err := matrix.Add(a, t)
	if err != nil {
		return nil, err
	}

	return matrix.Scale(sum, 0.5)
}

// sortPairs reorders whole pairs in place; stable, so ties keep solver order.
func sortPairs(pairs []Pair, ord Order) {
	switch ord {
	case OrderAscending:
		slices.SortStableFunc(pairs, func(x, y Pair) int { return compareValues(x.Value, y.Value) })
	case OrderDescending:
		slices.SortStableFunc(pairs, func(x, y Pair) int { return compareValues(y.Value, x.Value) })
	case OrderMagnitude:
		slices.SortStableFunc(pairs, func(x, y Pair) int {
			return cmp.Compare(cmplx.Abs(y.Value), cmplx.Abs(x.Value))
		})
	}
}

// compareValues orders complex numbers by real part, then imaginary part.
func compareValues(x, y complex128) int {
	if c := cmp.Compare(real(x), real(y)); c != 0 {
		return c
	}

	return cmp.Compare(imag(x), imag(y))
}
