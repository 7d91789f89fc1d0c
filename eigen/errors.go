// SPDX-License-Identifier: MIT
// Package eigen: sentinel error set.
// Operations wrap these with an operation tag; when the root cause is a
// matrix sentinel, both are kept (multi-%w) so errors.Is matches either.

package eigen

import "errors"

var (
	// ErrDimension is returned when a square matrix is required but the input
	// is not square, or when a vector length disagrees with the matrix order.
	ErrDimension = errors.New("eigen: dimension error")

	// ErrSingular is returned by Reconstruct when the eigenvector matrix Q is
	// not invertible: the vectors are linearly dependent and the source
	// matrix is not diagonalizable with this basis.
	ErrSingular = errors.New("eigen: eigenvector matrix is singular")

	// ErrIncomplete signals a Set that cannot describe an n×n matrix
	// (nil, empty, or fewer/more than n pairs).
	ErrIncomplete = errors.New("eigen: eigen set is incomplete")

	// ErrNoConvergence is returned when the underlying solver fails to
	// converge or produces an unusable eigenvector.
	ErrNoConvergence = errors.New("eigen: decomposition did not converge")

	// ErrZeroVector signals an all-zero vector where an eigenvector is required.
	ErrZeroVector = errors.New("eigen: zero eigenvector")
)
