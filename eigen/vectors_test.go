package eigen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigen2x2/eigen"
	"github.com/katalvlaran/eigen2x2/matrix"
)

// residualTol bounds ‖(A − λI)v‖ / ‖v‖.
const residualTol = 1e-6

// residual returns ‖(A − λI)v‖ / ‖v‖.
func residual(m matrix.Matrix2x2, lambda complex128, v matrix.Vec2) float64 {
	return m.Shift(lambda).MulVec(v).Norm() / v.Norm()
}

// requireEigenvectors asserts the null-space invariant for every returned vector.
func requireEigenvectors(t *testing.T, m matrix.Matrix2x2, p eigen.Pair, vs eigen.VectorSet) {
	t.Helper()
	require.False(t, vs.V1.IsZero(), "v1 must be non-zero for %v", m)
	require.Less(t, residual(m, p.L1, vs.V1), residualTol, "v1=%v λ1=%v A=%v", vs.V1, p.L1, m)
	if vs.HasTwoVectors {
		require.False(t, vs.V2.IsZero(), "v2 must be non-zero for %v", m)
		require.Less(t, residual(m, p.L2, vs.V2), residualTol, "v2=%v λ2=%v A=%v", vs.V2, p.L2, m)
	} else {
		require.Equal(t, matrix.Vec2{}, vs.V2, "v2 must be zero without a second eigenvalue")
	}
}

// TestVectors_Scenarios checks the reference matrices and their directions.
func TestVectors_Scenarios(t *testing.T) {
	for _, tc := range []struct {
		name   string
		m      matrix.Matrix2x2
		two    bool
		d1, d2 matrix.Vec2 // expected directions; d2 ignored when !two
	}{
		{"diag23", matrix.New(2, 0, 0, 3), true, matrix.RealVec2(1, 0), matrix.RealVec2(0, 1)},
		{"diag32", matrix.New(3, 0, 0, 2), true, matrix.RealVec2(0, 1), matrix.RealVec2(1, 0)},
		{"sym2112", matrix.New(2, 1, 1, 2), true, matrix.RealVec2(1, -1), matrix.RealVec2(1, 1)},
		{"twoI", matrix.New(2, 0, 0, 2), false, matrix.RealVec2(1, 0), matrix.Vec2{}},
		{"rot90", matrix.New(0, -1, 1, 0), true, matrix.Vec2{1, 1i}, matrix.Vec2{1, -1i}},
		{"upper", matrix.New(2, 1, 0, 3), true, matrix.RealVec2(1, 0), matrix.RealVec2(1, 1)},
		{"lower", matrix.New(2, 0, 1, 3), true, matrix.RealVec2(1, -1), matrix.RealVec2(0, 1)},
		{"jordan", matrix.New(1, 1, 0, 1), false, matrix.RealVec2(1, 0), matrix.Vec2{}},
		{"zero", matrix.New(0, 0, 0, 0), false, matrix.RealVec2(1, 0), matrix.Vec2{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			res := eigen.Decompose(tc.m, eigen.WithSeed(7))
			require.Equal(t, tc.two, res.Vectors.HasTwoVectors)
			requireEigenvectors(t, tc.m, res.Pair, res.Vectors)
			assert.True(t, res.Vectors.V1.Parallel(tc.d1, 1e-9), "v1=%v want along %v", res.Vectors.V1, tc.d1)
			if tc.two {
				assert.True(t, res.Vectors.V2.Parallel(tc.d2, 1e-9), "v2=%v want along %v", res.Vectors.V2, tc.d2)
			}
		})
	}
}

// TestVectors_RandomMatrices checks the null-space invariant on random input,
// including matrices with zeroed rows and columns.
func TestVectors_RandomMatrices(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	var i int
	for i = 0; i < 3000; i++ {
		m := randomMatrix(rng, 10)
		switch i % 5 {
		case 1:
			m.A01 = 0
		case 2:
			m.A10 = 0
		case 3:
			m.A00, m.A01 = 0, 0
		case 4:
			m.A10, m.A11 = 0, 0
		}
		p := eigen.Values(m)
		vs := eigen.Vectors(m, p.L1, p.L2, eigen.WithScaler(eigen.RandomScaler(rng)))
		require.Equal(t, p.Distinct(), vs.HasTwoVectors)
		requireEigenvectors(t, m, p, vs)
	}
}

// TestVectors_DirectionIndependentOfScale verifies that different free
// parameters only rescale the vectors.
func TestVectors_DirectionIndependentOfScale(t *testing.T) {
	m := matrix.New(4, -2, 1, 1)
	p := eigen.Values(m)
	ref := eigen.Vectors(m, p.L1, p.L2, eigen.WithScaler(eigen.UnitScaler()))

	var seed int64
	for seed = 1; seed <= 50; seed++ {
		vs := eigen.Vectors(m, p.L1, p.L2, eigen.WithSeed(seed))
		require.True(t, vs.V1.Parallel(ref.V1, 1e-12), "seed %d v1=%v", seed, vs.V1)
		require.True(t, vs.V2.Parallel(ref.V2, 1e-12), "seed %d v2=%v", seed, vs.V2)
	}
}

// TestVectors_Derivations checks the structured explanation and the
// orientation rule.
func TestVectors_Derivations(t *testing.T) {
	m := matrix.New(2, 1, 1, 2)
	res := eigen.Decompose(m, eigen.WithScaler(eigen.FixedScaler(3, -5)))
	require.Len(t, res.Vectors.Derivations, 2)

	d1 := res.Vectors.Derivations[0]
	assert.Equal(t, 1, d1.Index)
	assert.Equal(t, eigen.FromRow0, d1.Source)
	assert.Equal(t, 0, d1.FreeCoord)
	assert.Equal(t, 1, d1.Dependent())
	assert.Equal(t, complex(-1, 0), d1.Ratio)
	// a00 − λ1 = 1 and a01 = 1 share a sign: the vector is negated.
	assert.True(t, d1.Flipped)
	assert.Equal(t, -3.0, d1.Free)
	assert.Equal(t, -3.0, real(res.Vectors.V1[0]))
	assert.Equal(t, 3.0, real(res.Vectors.V1[1]))

	d2 := res.Vectors.Derivations[1]
	assert.Equal(t, 2, d2.Index)
	assert.Equal(t, eigen.FromRow1, d2.Source)
	// a11 − λ2 = −1 and a10 = 1 differ in sign: no flip.
	assert.False(t, d2.Flipped)
	assert.Equal(t, -5.0, d2.Free)
	assert.Equal(t, complex(1, 0), d2.Ratio)
	assert.Equal(t, -5.0, real(res.Vectors.V2[1]))
}

// TestVectors_CanonicalFallbacks covers the diagonal branch.
func TestVectors_CanonicalFallbacks(t *testing.T) {
	res := eigen.Decompose(matrix.New(5, 0, 0, -1), eigen.WithSeed(3))
	require.True(t, res.Vectors.HasTwoVectors)
	for _, d := range res.Vectors.Derivations {
		assert.Equal(t, eigen.Canonical, d.Source)
		assert.Equal(t, 1.0, d.Free)
	}
	// λ1 = −1 belongs to e2, λ2 = 5 to e1.
	assert.Equal(t, matrix.RealVec2(0, 1), res.Vectors.V1)
	assert.Equal(t, matrix.RealVec2(1, 0), res.Vectors.V2)
}

// TestVectors_SecondRowSingular covers a10 ≠ 0 with a11 == λ2.
func TestVectors_SecondRowSingular(t *testing.T) {
	// Lower-triangular with λ2 = a11 = 3: row 1 forces x = 0.
	m := matrix.New(1, 0, 4, 3)
	res := eigen.Decompose(m, eigen.WithScaler(eigen.FixedScaler(2, 6)))
	require.True(t, res.Vectors.HasTwoVectors)
	assert.Equal(t, complex(3, 0), res.Pair.L2)
	assert.Equal(t, matrix.Vec2{0, 6}, res.Vectors.V2)
	assert.Equal(t, 1, res.Vectors.Derivations[1].FreeCoord)
}

func TestScalers(t *testing.T) {
	r := eigen.RandomScaler(eigen.NewRand(11))
	var i int
	for i = 0; i < 500; i++ {
		v := r()
		if v < 0 {
			v = -v
		}
		require.GreaterOrEqual(t, v, float64(eigen.MinFree))
		require.LessOrEqual(t, v, float64(eigen.MaxFree))
		require.Equal(t, float64(int(v)), v, "integer magnitude")
	}

	// Same seed, same stream.
	a, b := eigen.RandomScaler(eigen.NewRand(5)), eigen.RandomScaler(eigen.NewRand(5))
	for i = 0; i < 20; i++ {
		require.Equal(t, a(), b())
	}

	f := eigen.FixedScaler(2, 3)
	assert.Equal(t, 2.0, f())
	assert.Equal(t, 3.0, f())
	assert.Equal(t, 3.0, f(), "last value repeats")
	assert.Equal(t, 1.0, eigen.FixedScaler()())
	assert.Equal(t, 1.0, eigen.UnitScaler()())
}

// TestVectors_ZeroScalerIsReplaced ensures a zero free parameter never yields
// the trivial vector.
func TestVectors_ZeroScalerIsReplaced(t *testing.T) {
	m := matrix.New(2, 1, 1, 2)
	res := eigen.Decompose(m, eigen.WithScaler(eigen.FixedScaler(0)))
	requireEigenvectors(t, m, res.Pair, res.Vectors)
}

func TestWithScaler_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { eigen.WithScaler(nil) })
}
