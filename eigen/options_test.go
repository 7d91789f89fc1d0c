// SPDX-License-Identifier: MIT

package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/eigen"
)

// TestOptions_PanicOnInvalid ensures every With* constructor rejects
// nonsensical values at construction time.
func TestOptions_PanicOnInvalid(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"tol zero":          func() { eigen.WithTolerance(0) },
		"tol NaN":           func() { eigen.WithTolerance(math.NaN()) },
		"tol Inf":           func() { eigen.WithTolerance(math.Inf(1)) },
		"symEps negative":   func() { eigen.WithSymmetryEpsilon(-1) },
		"jacobiTol zero":    func() { eigen.WithJacobiTolerance(0) },
		"singular negative": func() { eigen.WithSingularTolerance(-1e-3) },
		"singular NaN":      func() { eigen.WithSingularTolerance(math.NaN()) },
		"sweeps zero":       func() { eigen.WithMaxSweeps(0) },
		"method unknown":    func() { eigen.WithMethod(eigen.Method(7)) },
		"order unknown":     func() { eigen.WithOrder(eigen.Order(-1)) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			require.Panics(t, fn)
		})
	}
}

func TestOptions_ValidDoNotPanic(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		_ = []eigen.Option{
			eigen.WithTolerance(1e-3),
			eigen.WithSymmetryEpsilon(0),
			eigen.WithJacobiTolerance(1e-10),
			eigen.WithSingularTolerance(0),
			eigen.WithMaxSweeps(1),
			eigen.WithMethod(eigen.MethodGeneral),
			eigen.WithOrder(eigen.OrderMagnitude),
		}
	})
}

// TestOptions_NilIgnored: a nil Option in the list is skipped.
func TestOptions_NilIgnored(t *testing.T) {
	t.Parallel()

	a := mustFrom(t, [][]float64{{1, 0}, {0, 2}})
	s := mustDecompose(t, a, nil, eigen.WithOrder(eigen.OrderDescending), nil)
	require.Equal(t, []complex128{2, 1}, s.Values())
}
