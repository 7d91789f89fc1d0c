// Package spectral computes, verifies and inverts eigendecompositions of
// real square matrices.
//
// What is spectral?
//
//	A small, deterministic linear-algebra library built around one round trip:
//		• Decompose: A ↦ {(λᵢ, vᵢ)} with A·vᵢ ≈ λᵢ·vᵢ and ‖vᵢ‖ = 1
//		• Verify:    check one pair against its matrix
//		• Reconstruct: {(λᵢ, vᵢ)} ↦ Q·D·Q⁻¹ ≈ A
//
// Symmetric matrices go through a Jacobi solver and give real, orthonormal
// eigenvectors. General matrices go through gonum's Hessenberg + shifted QR
// solver and may give complex conjugate pairs.
//
// Everything is organized under two subpackages:
//
//	matrix/  Dense and CDense storage, validators, products, Jacobi, complex LU inverse
//	eigen/   Decompose, Verify, Residual, Reconstruct, Classify and their options
//
// A runnable walkthrough lives in examples/.
//
//	go get github.com/katalvlaran/spectral
package spectral
