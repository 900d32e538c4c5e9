// Package matrix provides the value types shared by every stage of the
// 2×2 eigen-decomposition: the real input matrix, complex 2-vectors and the
// single numeric tolerance used for all "effectively zero" decisions.
//
// 🚀 What lives here?
//
//	Matrix2x2 — four real entries a00, a01, a10, a11 (row-major), immutable
//	            by convention: every method has a value receiver.
//	Shifted   — the complex matrix A − λI for a (possibly complex) λ.
//	Vec2      — a 2-component complex vector.
//	Epsilon   — the shared tolerance (1e-10).
//
// ✨ Numeric policy:
//
//   - One tolerance for everything: discriminant classification, eigenvalue
//     equality and matrix-entry zero checks all compare against Epsilon.
//   - Scalars are Go's complex128; real values carry a zero imaginary part.
//   - Sign checks on complex quantities look at the real part only.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/eigen2x2/matrix"
//
//	m := matrix.New(2, 1, 1, 2)
//	fmt.Println(m.Trace(), m.Det(), m.Discriminant()) // 4 3 4
//
// Interop: Dense converts to a gonum *mat.Dense for cross-checks against
// general-purpose LAPACK-backed routines.
package matrix
