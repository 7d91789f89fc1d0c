// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"

	"github.com/katalvlaran/spectral/matrix"
)

// Pair is one eigenvalue with its eigenvector: A·Vector ≈ Value·Vector.
// Vectors produced by this package have unit 2-norm and a canonical phase
// (the first largest-magnitude component is real and positive).
type Pair struct {
	Value  complex128
	Vector []complex128
}

// IsReal reports whether the value and every vector component have
// |imag| ≤ tol.
func (p Pair) IsReal(tol float64) bool {
	if math.Abs(imag(p.Value)) > tol {
		return false
	}
	for _, z := range p.Vector {
		if math.Abs(imag(z)) > tol {
			return false
		}
	}

	return true
}

// clone deep-copies the vector.
func (p Pair) clone() Pair {
	v := make([]complex128, len(p.Vector))
	copy(v, p.Vector)

	return Pair{Value: p.Value, Vector: v}
}

// Set is the ordered collection of eigenpairs of an n×n matrix. Value i
// belongs to vector i; the pairing is fixed at construction.
type Set struct {
	pairs []Pair
	n     int // order of the source matrix (= vector length)
}

// NewSet builds a Set from caller-supplied pairs. Vectors are deep-copied,
// normalized to unit length and brought to canonical phase.
//
// Errors:
//   - ErrIncomplete (no pairs).
//   - ErrDimension  (ragged vectors, or more pairs than the vector length).
//   - ErrZeroVector (a vector with zero norm).
func NewSet(pairs []Pair) (*Set, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("NewSet: %w", ErrIncomplete)
	}
	n := len(pairs[0].Vector)
	if n == 0 {
		return nil, fmt.Errorf("NewSet: empty vector: %w", ErrDimension)
	}
	if len(pairs) > n {
		return nil, fmt.Errorf("NewSet: %d pairs for order %d: %w", len(pairs), n, ErrDimension)
	}

	out := make([]Pair, len(pairs))
	for i, p := range pairs {
		if len(p.Vector) != n {
			return nil, fmt.Errorf("NewSet: vector %d has length %d, want %d: %w", i, len(p.Vector), n, ErrDimension)
		}
		out[i] = p.clone()
		if err := normalize(out[i].Vector); err != nil {
			return nil, fmt.Errorf("NewSet: vector %d: %w", i, err)
		}
	}

	return &Set{pairs: out, n: n}, nil
}

// Len returns the number of pairs.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.pairs)
}

// Order returns n, the order of the matrix the set describes.
func (s *Set) Order() int {
	if s == nil {
		return 0
	}

	return s.n
}

// Complete reports whether the set holds exactly n pairs.
func (s *Set) Complete() bool { return s.Len() > 0 && s.Len() == s.n }

// Pair returns a deep copy of pair i.
func (s *Set) Pair(i int) (Pair, error) {
	if i < 0 || i >= s.Len() {
		return Pair{}, fmt.Errorf("Set.Pair(%d): %w", i, matrix.ErrOutOfRange)
	}

	return s.pairs[i].clone(), nil
}

// Pairs returns deep copies of all pairs in set order.
func (s *Set) Pairs() []Pair {
	out := make([]Pair, s.Len())
	for i := range out {
		out[i] = s.pairs[i].clone()
	}

	return out
}

// Values returns the eigenvalues in set order.
func (s *Set) Values() []complex128 {
	out := make([]complex128, s.Len())
	for i := range out {
		out[i] = s.pairs[i].Value
	}

	return out
}

// Vectors returns the n×k matrix whose column j is eigenvector j.
func (s *Set) Vectors() (*matrix.CDense, error) {
	if s.Len() == 0 {
		return nil, fmt.Errorf("Set.Vectors: %w", ErrIncomplete)
	}
	cols := make([][]complex128, len(s.pairs))
	for j, p := range s.pairs {
		cols[j] = p.Vector
	}

	return matrix.FromColumns(cols)
}

// IsReal reports whether every pair is real within tol.
func (s *Set) IsReal(tol float64) bool {
	if s == nil {
		return false
	}
	for _, p := range s.pairs {
		if !p.IsReal(tol) {
			return false
		}
	}

	return true
}

// normalize scales v in place to unit 2-norm and canonical phase.
func normalize(v []complex128) error {
	norm := cmplxs.Norm(v, 2)
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return ErrZeroVector
	}
	cmplxs.Scale(complex(1/norm, 0), v)

	// Rotate so the first largest-magnitude entry is real and positive.
	k, best := 0, cmplx.Abs(v[0])
	for i := 1; i < len(v); i++ {
		if a := cmplx.Abs(v[i]); a > best {
			k, best = i, a
		}
	}
	phase := cmplx.Conj(v[k]) / complex(best, 0)
	if imag(phase) == 0 && real(phase) == 1 {
		return nil
	}
	cmplxs.Scale(phase, v)
	v[k] = complex(best, 0)

	return nil
}
