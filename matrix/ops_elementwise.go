// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels over same-shape matrices: Add, Sub, Scale, AllClose.
//   - Dense fast-path on flat row-major buffers; At/Set fallback otherwise.
//
// Determinism:
//   - Fixed flat 0..n-1 (fast path) or i→j (fallback) loop order.

package matrix

import "math"

const (
	opAdd      = "Add"
	opSub      = "Sub"
	opScale    = "Scale"
	opAllClose = "AllClose"
)

// ewBinary applies f to every aligned pair (a[i,j], b[i,j]) into a fresh Dense.
func ewBinary(op string, a, b Matrix, f func(x, y float64) float64) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	r, c := a.Rows(), a.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range out.data {
				out.data[idx] = f(da.data[idx], db.data[idx])
			}
			return out, nil
		}
	}

	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			out.data[i*c+j] = f(av, bv)
		}
	}

	return out, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) {
	return ewBinary(opAdd, a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) {
	return ewBinary(opSub, a, b, func(x, y float64) float64 { return x - y })
}

// Scale returns alpha·m. A non-finite alpha fails with ErrNaNInf.
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if isNonFinite(alpha) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	out, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range out.data {
		out.data[idx] *= alpha
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances fail with ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	ok := true
	_, err := ewBinary(opAllClose, a, b, func(x, y float64) float64 {
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			ok = false
		}
		return 0
	})
	if err != nil {
		return false, err
	}

	return ok, nil
}
