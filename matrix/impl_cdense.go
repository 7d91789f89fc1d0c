// SPDX-License-Identifier: MIT

// Package matrix - CDense: complex128 row-major storage.
//
// Purpose:
//   - Hold eigenvector bases and reconstructions, which are complex whenever a
//     real matrix has conjugate eigenpairs.
//   - Mirror Dense's contract: errors instead of panics, flat row-major data,
//     deep copies on Clone.
//
// Promotion rules:
//   - real → complex: Promote maps x to complex(x, 0), exactly.
//   - complex → real: RealPart(tol) succeeds only when every |imag| is within
//     tol·max(1, max|z|); otherwise ErrNotReal.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// CDense is a row-major matrix of complex128.
type CDense struct {
	r, c int
	data []complex128
}

var _ fmt.Stringer = (*CDense)(nil)

// cdenseErrorf mirrors denseErrorf for the complex storage.
func cdenseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CDense.%s(%d,%d): %w", method, row, col, err)
}

// NewCDense creates an r×c complex zero matrix.
//
// Errors: ErrBadShape when rows<=0 or cols<=0.
func NewCDense(rows, cols int) (*CDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewCDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &CDense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// Promote copies a real Matrix into a CDense with zero imaginary parts.
//
// Errors: ErrNilMatrix, or any At error from foreign implementations.
// Complexity: Time O(r*c), Space O(r*c).
func Promote(m Matrix) (*CDense, error) {
	d, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf("Promote", err)
	}
	out := &CDense{r: d.r, c: d.c, data: make([]complex128, len(d.data))}
	for idx, x := range d.data {
		out.data[idx] = complex(x, 0)
	}

	return out, nil
}

// Rows returns the number of rows.
func (m *CDense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CDense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *CDense) Shape() (rows, cols int) { return m.r, m.c }

func (m *CDense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *CDense) At(row, col int) (complex128, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, cdenseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set assigns z at (row, col). NaN or ±Inf in either part is rejected.
func (m *CDense) Set(row, col int, z complex128) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return cdenseErrorf(ctxSet, row, col, err)
	}
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return cdenseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = z

	return nil
}

// Clone returns a deep copy.
func (m *CDense) Clone() *CDense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &CDense{r: m.r, c: m.c, data: cp}
}

// Col returns a copy of column j.
func (m *CDense) Col(j int) ([]complex128, error) {
	if j < 0 || j >= m.c {
		return nil, cdenseErrorf("Col", 0, j, ErrOutOfRange)
	}
	out := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// MaxAbs returns max |m[i,j]|.
func (m *CDense) MaxAbs() float64 {
	maxAbs := NormZero
	for _, z := range m.data {
		maxAbs = math.Max(maxAbs, cmplx.Abs(z))
	}

	return maxAbs
}

// RealPart demotes m to a real Dense.
//
// Implementation:
//   - Stage 1: bound = |tol|·max(1, MaxAbs()).
//   - Stage 2: fail with ErrNotReal on the first |imag| > bound (row-major order).
//   - Stage 3: copy real parts into a fresh Dense.
//
// Errors: ErrNaNInf (bad tol), ErrNotReal.
func (m *CDense) RealPart(tol float64) (*Dense, error) {
	if isNonFinite(tol) {
		return nil, matrixErrorf("RealPart", ErrNaNInf)
	}
	bound := math.Abs(tol) * math.Max(1, m.MaxAbs())

	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx, z := range m.data {
		if math.Abs(imag(z)) > bound {
			return nil, cdenseErrorf("RealPart", idx/m.c, idx%m.c, ErrNotReal)
		}
		out.data[idx] = real(z)
	}

	return out, nil
}

// String renders rows as lines of comma-separated %g complex values.
func (m *CDense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
