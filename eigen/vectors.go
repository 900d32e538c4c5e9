package eigen

import (
	"github.com/katalvlaran/eigen2x2/matrix"
)

// Vectors returns one eigenvector per distinct eigenvalue of m.
//
// Two free parameters t1, t2 are drawn from the configured Scaler up front,
// so the number of draws per call is fixed regardless of the branch taken.
//
// First vector (λ1), searched in row order 0, 1:
//   - |a01| > ε: row 0 gives v1 = (t1, x·t1), x = −(a00 − λ1)/a01.
//   - |a10| > ε: row 1 gives v1 = (x·t1, t1), x = −(a11 − λ1)/a10.
//   - diagonal:  (1, 0) if a00 ≈ λ1, else (0, 1).
//
// Second vector (λ2), only when |λ1 − λ2| > ε, searched in row order 1, 0:
//   - |a10| > ε: row 1 gives v2 = (t2, y·t2), y = −a10/(a11 − λ2),
//     or v2 = (0, t2) when a11 ≈ λ2.
//   - |a01| > ε: row 0 as for the first vector.
//   - diagonal:  (0, 1) if a11 ≈ λ2, else (1, 0).
//
// Orientation: on the primary row of each vector (row 0 for v1, row 1 for
// v2) the whole vector is negated when the real part of the shifted diagonal
// entry and the off-diagonal entry have the same strict sign. Negation keeps
// the vector in the null space.
//
// Complexity: O(1).
func Vectors(m matrix.Matrix2x2, l1, l2 complex128, opts ...Option) VectorSet {
	o := gatherOptions(opts...)
	t1 := o.scaler.draw()
	t2 := o.scaler.draw()

	var (
		vs VectorSet
		d  Derivation
	)

	vs.V1, d = firstVector(m, l1, t1)
	vs.Derivations = append(vs.Derivations, d)

	if !distinct(l1, l2) {
		return vs // V2 stays zero
	}

	vs.HasTwoVectors = true
	vs.V2, d = secondVector(m, l2, t2)
	vs.Derivations = append(vs.Derivations, d)

	return vs
}

// firstVector solves (A − λ1 I)v = 0 preferring row 0.
func firstVector(m matrix.Matrix2x2, l1 complex128, t float64) (matrix.Vec2, Derivation) {
	s := m.Shift(l1)
	var (
		v matrix.Vec2
		d Derivation
	)

	switch {
	case !matrix.IsZero(m.A01):
		v, d = solveRow0(s, t)
		if sameSign(real(s[0][0]), m.A01) {
			v, d = flip(v, d)
		}
	case !matrix.IsZero(m.A10):
		v, d = solveRow1FreeSecond(s, t)
	default:
		v, d = canonical(s[0][0], 0)
	}

	d.Index, d.Lambda = 1, l1

	return v, d
}

// secondVector solves (A − λ2 I)v = 0 preferring row 1.
func secondVector(m matrix.Matrix2x2, l2 complex128, t float64) (matrix.Vec2, Derivation) {
	s := m.Shift(l2)
	var (
		v matrix.Vec2
		d Derivation
	)

	switch {
	case !matrix.IsZero(m.A10):
		v, d = solveRow1FreeFirst(s, t)
		if sameSign(real(s[1][1]), m.A10) {
			v, d = flip(v, d)
		}
	case !matrix.IsZero(m.A01):
		v, d = solveRow0(s, t)
	default:
		v, d = canonical(s[1][1], 1)
	}

	d.Index, d.Lambda = 2, l2

	return v, d
}

// solveRow0 parametrizes row 0 (s00·x + s01·y = 0) by x = t.
// Requires s01 != 0.
func solveRow0(s matrix.Shifted, t float64) (matrix.Vec2, Derivation) {
	x := -s[0][0] / s[0][1]
	tc := complex(t, 0)

	return matrix.Vec2{tc, tc * x}, Derivation{Source: FromRow0, FreeCoord: 0, Ratio: x, Free: t}
}

// solveRow1FreeSecond parametrizes row 1 (s10·x + s11·y = 0) by y = t.
// Requires s10 != 0.
func solveRow1FreeSecond(s matrix.Shifted, t float64) (matrix.Vec2, Derivation) {
	x := -s[1][1] / s[1][0]
	tc := complex(t, 0)

	return matrix.Vec2{tc * x, tc}, Derivation{Source: FromRow1, FreeCoord: 1, Ratio: x, Free: t}
}

// solveRow1FreeFirst parametrizes row 1 by x = t. When s11 vanishes the row
// forces x = 0 and y becomes the free coordinate instead.
// Requires s10 != 0.
func solveRow1FreeFirst(s matrix.Shifted, t float64) (matrix.Vec2, Derivation) {
	tc := complex(t, 0)
	if matrix.IsZeroC(s[1][1]) {
		return matrix.Vec2{0, tc}, Derivation{Source: FromRow1, FreeCoord: 1, Ratio: 0, Free: t}
	}
	y := -s[1][0] / s[1][1]

	return matrix.Vec2{tc, tc * y}, Derivation{Source: FromRow1, FreeCoord: 0, Ratio: y, Free: t}
}

// canonical returns the basis vector for a diagonal matrix. diag is the
// shifted diagonal entry at index k; when it vanishes e_k is the
// eigenvector, otherwise the other basis vector is.
func canonical(diag complex128, k int) (matrix.Vec2, Derivation) {
	idx := 1 - k
	if matrix.IsZeroC(diag) {
		idx = k
	}
	var v matrix.Vec2
	v[idx] = 1

	return v, Derivation{Source: Canonical, FreeCoord: idx, Free: 1}
}

// flip negates v and records it on d.
func flip(v matrix.Vec2, d Derivation) (matrix.Vec2, Derivation) {
	d.Free = -d.Free
	d.Flipped = true

	return v.Scale(-1), d
}

// sameSign reports whether a and b are both strictly positive or both
// strictly negative.
func sameSign(a, b float64) bool {
	sa := matrix.Sign(a)

	return sa != 0 && sa == matrix.Sign(b)
}
