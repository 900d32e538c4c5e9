// Package eigen2x2 computes and explains the eigen-decomposition of a real
// 2×2 matrix.
//
// 🚀 What is eigen2x2?
//
//	A small toolkit that takes four real numbers and
//	answers, step by step:
//		• the eigenvalues, classified as distinct real, repeated or complex
//		• one eigenvector per distinct eigenvalue, with its derivation
//		• a numerical self-check and a gonum cross-check on demand
//		• a picture of how A deforms the unit circle
//
// ✨ Why a dedicated 2×2 solver?
//
//   - Closed form: no iteration, no convergence tolerance to tune
//   - Explainable: every vector records which row produced it
//   - Total: every finite matrix yields an answer, degenerate rows included
//
// Packages:
//
//	matrix/  — Matrix2x2 and Vec2 value types, tolerance helpers, validators
//	eigen/   — eigenvalues, eigenvectors, free-parameter Scalers
//	verify/  — residuals, Jacobi rotation, gonum mat.Eigen cross-check
//	report/  — the human-readable text report
//	chart/   — gonum/plot figures (png, svg, pdf, webp, tga) and echarts HTML
//	config/  — JSON/YAML run settings merged with flags
//	input/   — interactive prompt and "a,b,c,d" parsing
//	cmd/eigen2x2 — the command-line front end
//
// Quick example:
//
//	    A = [2 1]     λ1 = 1  v1 ∥ (−1, 1)
//	        [1 2]     λ2 = 3  v2 ∥ ( 1, 1)
//
//	go install github.com/katalvlaran/eigen2x2/cmd/eigen2x2@latest
//	eigen2x2 -matrix "2,1,1,2" -verify -plot eigen.webp
package eigen2x2
