// Package matrix offers the dense storage and kernels behind the spectral
// toolkit.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     rejects NaN/Inf, plus Mul, Transpose and MatVec kernels.
//   - SymmetricEigen, a deterministic Jacobi eigen-solver for real symmetric input.
//   - CDense, the complex128 counterpart, with CMul, CMatVec and a pivoting
//     CInverse used to rebuild matrices from eigenbases.
//   - Converters to and from gonum's mat.Dense.
//   - Seeded random fills that take an explicit *rand.Rand.
//
// Every kernel returns a fresh result; inputs are never mutated. Errors are
// package sentinels (ErrDimensionMismatch, ErrSingular, ...) wrapped with an
// operation tag, so callers match them with errors.Is.
package matrix
