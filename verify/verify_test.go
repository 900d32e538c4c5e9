package verify_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eigen2x2/eigen"
	"github.com/katalvlaran/eigen2x2/matrix"
	"github.com/katalvlaran/eigen2x2/verify"
)

// reference matrices shared by the table-driven tests.
var reference = []struct {
	name string
	m    matrix.Matrix2x2
}{
	{"diag23", matrix.New(2, 0, 0, 3)},
	{"sym2112", matrix.New(2, 1, 1, 2)},
	{"twoI", matrix.New(2, 0, 0, 2)},
	{"rot90", matrix.New(0, -1, 1, 0)},
	{"upper", matrix.New(2, 1, 0, 3)},
	{"jordan", matrix.New(1, 1, 0, 1)},
	{"general", matrix.New(4, -2, 1, 1)},
	{"spiral", matrix.New(1, -3, 2, 0.5)},
}

func TestCheck_Reference(t *testing.T) {
	for _, tc := range reference {
		t.Run(tc.name, func(t *testing.T) {
			res := eigen.Decompose(tc.m, eigen.WithSeed(99))
			rep := verify.Check(res)
			require.True(t, rep.OK, "report %+v", rep)

			want := 1
			if res.Vectors.HasTwoVectors {
				want = 2
			}
			require.Len(t, rep.Vectors, want)
			for _, vc := range rep.Vectors {
				// A·v and λ·v agree component-wise.
				assert.InDelta(t, 0, vc.Av.Sub(vc.LambdaV).Norm(), 1e-9, "vector %d", vc.Index)
				assert.Less(t, vc.Residual, verify.ResidualTol)
			}
			assert.Equal(t, tc.m.IsSymmetric(), rep.Jacobi)
		})
	}
}

// TestCheck_DetectsBadVector feeds a tampered result through Check.
func TestCheck_DetectsBadVector(t *testing.T) {
	res := eigen.Decompose(matrix.New(2, 1, 1, 2), eigen.WithScaler(eigen.UnitScaler()))
	res.Vectors.V1 = matrix.RealVec2(1, 1) // belongs to λ2, not λ1
	rep := verify.Check(res)
	assert.False(t, rep.OK)
	assert.False(t, rep.Vectors[0].OK)
	assert.True(t, rep.Vectors[1].OK)
}

func TestResidual_ZeroVector(t *testing.T) {
	assert.True(t, math.IsInf(verify.Residual(matrix.New(1, 0, 0, 1), 1, matrix.Vec2{}), 1))
}

// TestJacobi_AgainstEigenSym compares the single-rotation solver with gonum's
// symmetric eigensolver on random symmetric matrices.
func TestJacobi_AgainstEigenSym(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var i int
	for i = 0; i < 500; i++ {
		a, b, d := 10*rng.NormFloat64(), 10*rng.NormFloat64(), 10*rng.NormFloat64()
		m := matrix.New(a, b, b, d)

		vals, vecs, err := verify.Jacobi(m)
		require.NoError(t, err)

		var es mat.EigenSym
		require.True(t, es.Factorize(mat.NewSymDense(2, []float64{a, b, b, d}), true))
		want := es.Values(nil) // ascending
		var ev mat.Dense
		es.VectorsTo(&ev)

		var k int
		for k = 0; k < 2; k++ {
			require.True(t, scalar.EqualWithinAbsOrRel(vals[k], want[k], 1e-10, 1e-10),
				"λ%d: jacobi=%v gonum=%v", k+1, vals[k], want[k])
			assert.InDelta(t, 1, vecs[k].Norm(), 1e-12, "unit vectors")
			if !scalar.EqualWithinAbsOrRel(want[0], want[1], 1e-8, 1e-8) {
				g := matrix.RealVec2(ev.At(0, k), ev.At(1, k))
				assert.True(t, vecs[k].Parallel(g, 1e-8), "vector %d: %v vs %v", k, vecs[k], g)
			}
			assert.Less(t, verify.Residual(m, complex(vals[k], 0), vecs[k]), 1e-9)
		}
	}
}

func TestJacobi_DiagonalAndErrors(t *testing.T) {
	vals, vecs, err := verify.Jacobi(matrix.New(3, 0, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, [2]float64{-1, 3}, vals)
	assert.Equal(t, matrix.RealVec2(0, 1), vecs[0])

	_, _, err = verify.Jacobi(matrix.New(0, -1, 1, 0))
	assert.ErrorIs(t, err, verify.ErrNotSymmetric)
}

func TestCrossCheck_Reference(t *testing.T) {
	for _, tc := range reference {
		t.Run(tc.name, func(t *testing.T) {
			res := eigen.Decompose(tc.m, eigen.WithSeed(5))
			cmp, err := verify.CrossCheck(res)
			require.NoError(t, err, "comparison %+v", cmp)
			assert.Len(t, cmp.Values, 2)
			assert.True(t, cmp.VectorsAgree)
		})
	}
}

// TestCrossCheck_Random runs the gonum comparison on random matrices with
// well-separated eigenvalues.
func TestCrossCheck_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	var n int
	for n < 300 {
		m := matrix.New(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		if math.Abs(m.Discriminant()) < 1e-3 {
			continue
		}
		n++
		res := eigen.Decompose(m, eigen.WithSeed(int64(n)))
		_, err := verify.CrossCheck(res)
		require.NoError(t, err, "A=%v", m)
	}
}

// TestCrossCheck_Mismatch feeds a tampered eigenvalue.
func TestCrossCheck_Mismatch(t *testing.T) {
	res := eigen.Decompose(matrix.New(2, 1, 1, 2))
	res.Pair.L2 = 4
	_, err := verify.CrossCheck(res)
	assert.ErrorIs(t, err, verify.ErrMismatch)
}
