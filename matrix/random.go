// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"
)

// RandomDense returns an r×c matrix with entries drawn uniformly from [-1, 1)
// using the caller's generator. There is no package-level source: the same
// seed always yields the same matrix, and callers own the generator state.
//
// Errors: ErrNilMatrix when rng is nil, ErrBadShape on invalid dimensions.
func RandomDense(rng *rand.Rand, rows, cols int) (*Dense, error) {
	if rng == nil {
		return nil, fmt.Errorf("RandomDense: nil generator: %w", ErrNilMatrix)
	}
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("RandomDense: %w", err)
	}
	for idx := range m.data {
		m.data[idx] = 2*rng.Float64() - 1
	}

	return m, nil
}

// RandomSymmetric returns an n×n symmetric matrix (upper triangle drawn from
// [-1, 1) and mirrored), using the caller's generator.
func RandomSymmetric(rng *rand.Rand, n int) (*Dense, error) {
	m, err := RandomDense(rng, n, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			m.data[j*n+i] = m.data[i*n+j]
		}
	}

	return m, nil
}
