// SPDX-License-Identifier: MIT

// Package matrix: converters between Matrix and gonum's dense types.
//
// The spectral solver hands non-symmetric inputs to gonum's LAPACK port, so
// Matrix values cross the package boundary here and nowhere else.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// toDense returns a private *Dense copy of m, regardless of its dynamic type.
// The copy may be mutated freely by kernels.
func toDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	rows, cols := m.Rows(), m.Cols()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}

// ToGonum copies m into a freshly allocated *mat.Dense.
//
// Errors: ErrNilMatrix, or any At error from foreign implementations.
// Complexity: Time O(r*c), Space O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	// d is already a private copy; gonum takes ownership of the slice.
	return mat.NewDense(d.r, d.c, d.data), nil
}

// FromGonum copies any gonum matrix into a *Dense, rejecting empty shapes and
// non-finite entries.
//
// Errors: ErrNilMatrix, ErrBadShape, ErrNaNInf.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := g.Dims()
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = g.At(i, j)
			if isNonFinite(v) {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("At(%d,%d): %w", i, j, ErrNaNInf))
			}
			d.data[i*cols+j] = v
		}
	}

	return d, nil
}
