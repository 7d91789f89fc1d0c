// SPDX-License-Identifier: MIT

package eigen

import "math"

// Definiteness classifies a matrix by the signs of its eigenvalues.
type Definiteness int

const (
	// Undefined: empty set, or some eigenvalue is not real within tol.
	Undefined Definiteness = iota
	PositiveDefinite
	PositiveSemidefinite
	NegativeDefinite
	NegativeSemidefinite
	Indefinite
)

// String implements fmt.Stringer.
func (d Definiteness) String() string {
	switch d {
	case PositiveDefinite:
		return "positive definite"
	case PositiveSemidefinite:
		return "positive semidefinite"
	case NegativeDefinite:
		return "negative definite"
	case NegativeSemidefinite:
		return "negative semidefinite"
	case Indefinite:
		return "indefinite"
	default:
		return "undefined"
	}
}

// Classify returns the definiteness implied by the eigenvalues of s.
// Values with |λ| ≤ tol count as zero. An all-zero spectrum is reported
// as PositiveSemidefinite.
func Classify(s *Set, tol float64) Definiteness {
	if s.Len() == 0 {
		return Undefined
	}
	tol = math.Abs(tol)

	var pos, neg, zero int
	for _, v := range s.Values() {
		if math.Abs(imag(v)) > tol {
			return Undefined
		}
		switch re := real(v); {
		case re > tol:
			pos++
		case re < -tol:
			neg++
		default:
			zero++
		}
	}

	switch {
	case pos > 0 && neg > 0:
		return Indefinite
	case neg > 0 && zero == 0:
		return NegativeDefinite
	case neg > 0:
		return NegativeSemidefinite
	case zero == 0:
		return PositiveDefinite
	default:
		return PositiveSemidefinite
	}
}
