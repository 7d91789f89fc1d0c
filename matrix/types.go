// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by real and complex kernels.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Numeric policy shared by constructors and kernels.
const (
	// DefaultEpsilon is the non-negative tolerance used by structural checks
	// (symmetry, realness).
	DefaultEpsilon = 1e-9

	// DefaultSingularTolerance is the relative pivot threshold below which
	// CInverse reports ErrSingular: |pivot| <= tol * max|m[i,j]|.
	DefaultSingularTolerance = 1e-12
)

// Accumulator seeds; named to avoid magic literals inside kernels.
const (
	// NormZero is the additive identity for norm and accumulation operations.
	NormZero = 0.0

	// ZeroSum is the initial sum value for substitution and dot products.
	ZeroSum = 0.0
)
