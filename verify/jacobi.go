package verify

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eigen2x2/matrix"
)

// Jacobi diagonalizes a symmetric 2×2 matrix with a single Jacobi rotation.
// It returns the eigenvalues in ascending order and the matching unit
// eigenvectors (columns of the rotation).
//
// Implementation:
//   - Stage 1: validate symmetry within matrix.Epsilon; the off-diagonal
//     entry used is the mean of a01 and a10.
//   - Stage 2: if the off-diagonal entry is already zero the matrix is
//     diagonal and the basis vectors are returned.
//   - Stage 3: θ = (a11 − a00)/(2·a01), t = sgn(θ)/(|θ| + √(θ²+1)),
//     c = 1/√(t²+1), s = t·c. The rotation annihilates a01 in one step:
//     λp = a00 − t·a01 with vector (c, −s), λq = a11 + t·a01 with (s, c).
//   - Stage 4: sort ascending.
//
// Errors: ErrNotSymmetric.
// Complexity: O(1).
func Jacobi(m matrix.Matrix2x2) ([2]float64, [2]matrix.Vec2, error) {
	var (
		vals [2]float64
		vecs [2]matrix.Vec2
	)
	if !m.IsSymmetric() {
		return vals, vecs, fmt.Errorf("Jacobi: a01=%g a10=%g: %w", m.A01, m.A10, ErrNotSymmetric)
	}

	apq := (m.A01 + m.A10) / 2
	if matrix.IsZero(apq) {
		vals = [2]float64{m.A00, m.A11}
		vecs = [2]matrix.Vec2{matrix.RealVec2(1, 0), matrix.RealVec2(0, 1)}

		return sortPair(vals, vecs)
	}

	var (
		theta = (m.A11 - m.A00) / (2 * apq)
		t     = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c     = 1.0 / math.Sqrt(t*t+1)
		s     = t * c
	)
	vals = [2]float64{m.A00 - t*apq, m.A11 + t*apq}
	vecs = [2]matrix.Vec2{matrix.RealVec2(c, -s), matrix.RealVec2(s, c)}

	return sortPair(vals, vecs)
}

func sortPair(vals [2]float64, vecs [2]matrix.Vec2) ([2]float64, [2]matrix.Vec2, error) {
	if vals[1] < vals[0] {
		vals[0], vals[1] = vals[1], vals[0]
		vecs[0], vecs[1] = vecs[1], vecs[0]
	}

	return vals, vecs, nil
}
