// Package eigen computes, checks and inverts eigendecompositions of real
// square matrices.
//
// What & Why:
//
//	Decompose returns a Set of eigenpairs (λ, v) with A·v ≈ λ·v and ‖v‖ = 1.
//	Symmetric input goes through a deterministic Jacobi solver and yields real
//	orthonormal vectors; everything else goes through gonum's general solver,
//	which may return complex conjugate pairs (rotation-like matrices have no
//	real eigenbasis). Verify checks a single pair against its matrix, and
//	Reconstruct rebuilds A = Q·D·Q⁻¹ from a complete Set.
//
// Errors:
//
//	ErrDimension  – input is not square (or a vector has the wrong length).
//	ErrSingular   – the eigenvectors are linearly dependent; A is not
//	                diagonalizable with this basis.
//
// All operations are pure: inputs are never mutated, results share no
// storage with them, and there is no package-level state.
//
// Example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{2, 0}, {0, 3}})
//	set, _ := eigen.Decompose(a, eigen.WithOrder(eigen.OrderAscending))
//	p, _ := set.Pair(0)        // λ = 2, v = e₀
//	ok := eigen.Verify(a, p)   // true
//	b, _ := eigen.ReconstructReal(set)
package eigen
