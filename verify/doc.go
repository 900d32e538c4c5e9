// Package verify checks an eigen.Result against independent evidence.
//
// Three checks, from cheapest to heaviest:
//
//	Check      — per-vector residuals ‖(A − λI)v‖/‖v‖, the A·v and λ·v
//	             products printed next to each other, and Vieta's identities
//	             λ1+λ2 = trace, λ1·λ2 = det.
//	Jacobi     — a single Jacobi rotation that diagonalizes a symmetric 2×2
//	             matrix exactly; an independent real-arithmetic solver.
//	CrossCheck — gonum's LAPACK-backed mat.Eigen on the same matrix.
//
// None of these alter the result; they only report.
package verify
