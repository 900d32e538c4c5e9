// Package eigen computes the eigenvalues and eigenvectors of a real 2×2
// matrix in closed form.
//
// 🚀 Two stages, composed sequentially:
//
//	Values  — roots of λ² − trace·λ + det = 0, classified by the sign of the
//	          discriminant trace² − 4·det into three regimes:
//	            • disc > ε     two distinct real roots
//	            • |disc| < ε   one repeated root, exactly trace/2
//	            • otherwise    a complex-conjugate pair
//	Vectors — one non-zero solution of (A − λI)v = 0 per distinct
//	          eigenvalue, obtained by fixing one coordinate to a free scalar
//	          and solving the surviving row for the other.
//
// ✨ Key properties:
//   - Never fails: every finite real matrix yields a Pair and at least one
//     eigenvector. Degenerate rows fall back to canonical basis vectors.
//   - One tolerance (matrix.Epsilon) for every zero test.
//   - The free parameter comes from an injectable Scaler; any non-zero value
//     gives a valid eigenvector, so the scaler only affects presentation.
//   - Solvers do not print. Each vector carries a Derivation describing the
//     row used, the ratio and the chosen scalar for the report layer.
//
// ⚙️ Usage:
//
//	res := eigen.Decompose(matrix.New(2, 1, 1, 2), eigen.WithScaler(eigen.UnitScaler()))
//	fmt.Println(res.Pair.L1, res.Pair.L2) // (1+0i) (3+0i)
//	fmt.Println(res.Vectors.V1)           // [(-1+0i), (1+0i)]
//
// Concurrency: all functions are pure except for the Scaler. A RandomScaler
// wraps a *rand.Rand, which is not goroutine-safe; give each goroutine its own.
package eigen
