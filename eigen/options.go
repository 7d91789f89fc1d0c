// SPDX-License-Identifier: MIT

// Package eigen: functional configuration for decomposition, verification and
// reconstruction. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Every option changes observable behavior and is covered by tests.
//   - Panic only on invalid parameters (programmer error).
package eigen

import (
	"math"

	"github.com/katalvlaran/spectral/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance bounds the scaled residual accepted by Verify and the
	// imaginary residue accepted by ReconstructReal.
	DefaultTolerance = 1e-6

	// DefaultSymmetryEpsilon is the relative asymmetry accepted as symmetric
	// when MethodAuto picks a solver: |A[i,j]-A[j,i]| ≤ eps·max|A|.
	DefaultSymmetryEpsilon = matrix.DefaultEpsilon

	// DefaultJacobiTolerance is the relative off-diagonal threshold at which
	// Jacobi sweeps stop: max|A[p,q]| ≤ tol·‖A‖_F.
	DefaultJacobiTolerance = 1e-13

	// DefaultMaxSweeps caps Jacobi work at sweeps·n(n−1)/2 rotations.
	DefaultMaxSweeps = 50

	// DefaultSingularTolerance is the relative pivot threshold used when
	// inverting the eigenvector matrix.
	DefaultSingularTolerance = matrix.DefaultSingularTolerance
)

// ---------- Internal panic messages ----------

const (
	panicToleranceInvalid = "eigen: WithTolerance: tol must be finite and > 0"
	panicSymEpsInvalid    = "eigen: WithSymmetryEpsilon: eps must be finite and >= 0"
	panicJacobiTolInvalid = "eigen: WithJacobiTolerance: tol must be finite and > 0"
	panicSingularInvalid  = "eigen: WithSingularTolerance: tol must be finite and >= 0"
	panicSweepsInvalid    = "eigen: WithMaxSweeps: sweeps must be > 0"
	panicMethodInvalid    = "eigen: WithMethod: unknown method"
	panicOrderInvalid     = "eigen: WithOrder: unknown order"
)

// Method selects the eigen-solver used by Decompose.
type Method int

const (
	// MethodAuto uses Jacobi for symmetric input (within the symmetry
	// epsilon) and the general solver otherwise.
	MethodAuto Method = iota
	// MethodJacobi forces the Jacobi solver; non-symmetric input fails with
	// matrix.ErrAsymmetry.
	MethodJacobi
	// MethodGeneral forces the general (Hessenberg + shifted QR) solver.
	MethodGeneral
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodJacobi:
		return "jacobi"
	case MethodGeneral:
		return "general"
	default:
		return "unknown"
	}
}

// Order controls how Decompose arranges the pairs it returns. Pairs always
// move as a whole; a value never changes partner vector.
type Order int

const (
	// OrderNone keeps solver order.
	OrderNone Order = iota
	// OrderAscending sorts by real part, then imaginary part, ascending.
	OrderAscending
	// OrderDescending sorts by real part, then imaginary part, descending.
	OrderDescending
	// OrderMagnitude sorts by |λ| descending; ties keep solver order.
	OrderMagnitude
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol         float64 // Verify / ReconstructReal tolerance
	symEps      float64 // symmetry detection
	jacobiTol   float64 // Jacobi convergence threshold (relative)
	singularTol float64 // CInverse pivot threshold (relative)
	maxSweeps   int
	method      Method
	order       Order
}

// WithTolerance sets the tolerance used by Verify and ReconstructReal.
// Panics when tol is not finite or not positive.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithSymmetryEpsilon sets the asymmetry, relative to max|A|, accepted by
// MethodAuto and MethodJacobi. Zero demands exact symmetry.
func WithSymmetryEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicSymEpsInvalid)
	}

	return func(o *Options) { o.symEps = eps }
}

// WithJacobiTolerance sets the relative off-diagonal convergence threshold.
func WithJacobiTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicJacobiTolInvalid)
	}

	return func(o *Options) { o.jacobiTol = tol }
}

// WithSingularTolerance sets the relative pivot threshold below which the
// eigenvector matrix is treated as singular. Zero only rejects exact zeros.
func WithSingularTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicSingularInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithMaxSweeps caps the Jacobi solver at sweeps·n(n−1)/2 rotations.
func WithMaxSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// WithMethod selects the solver.
func WithMethod(m Method) Option {
	if m < MethodAuto || m > MethodGeneral {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// WithOrder selects the ordering of returned pairs.
func WithOrder(ord Order) Option {
	if ord < OrderNone || ord > OrderMagnitude {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.order = ord }
}

// gatherOptions applies opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		tol:         DefaultTolerance,
		symEps:      DefaultSymmetryEpsilon,
		jacobiTol:   DefaultJacobiTolerance,
		singularTol: DefaultSingularTolerance,
		maxSweeps:   DefaultMaxSweeps,
		method:      MethodAuto,
		order:       OrderNone,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
