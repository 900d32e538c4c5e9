package report_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigen2x2/eigen"
	"github.com/katalvlaran/eigen2x2/matrix"
	"github.com/katalvlaran/eigen2x2/report"
	"github.com/katalvlaran/eigen2x2/verify"
)

func TestFormatScalar(t *testing.T) {
	for _, tc := range []struct {
		z    complex128
		prec int
		want string
	}{
		{2, 4, "2.0000"},
		{complex(1.5, 1e-12), 2, "1.50"},
		{complex(1.5, 0.866), 2, "1.50 + 0.87i"},
		{complex(1.5, -0.866), 2, "1.50 - 0.87i"},
		{complex(0, -1), 2, "0.00 - 1.00i"},
		{complex(-0.001, 0), 2, "0.00"},
		{complex(-0.5, 2), 1, "-0.5 + 2.0i"},
	} {
		assert.Equal(t, tc.want, report.FormatScalar(tc.z, tc.prec), "z=%v", tc.z)
	}
}

func TestFormatVec(t *testing.T) {
	assert.Equal(t, "[1.00, 0.00 + 1.00i]", report.FormatVec(matrix.Vec2{1, 1i}, 2))
}

// TestWrite_Symmetric pins the full layout for a deterministic run.
func TestWrite_Symmetric(t *testing.T) {
	res := eigen.Decompose(matrix.New(2, 1, 1, 2), eigen.WithScaler(eigen.FixedScaler(3, -5)))

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res, report.Options{}))

	want := `Your matrix:
[2, 1]
[1, 2]

==================================================
EIGENVALUES
==================================================
The matrix has two eigenvalues:
λ1 = 1.00
λ2 = 3.00

==================================================
EIGENVECTORS
==================================================
From λ1 = 1.00 and row 0 of (A - λI)v = 0 the vector can be written as
-----> y = (-1.00) * x
Let x = (-3) so y = 3.00

From λ2 = 3.00 and row 1 of (A - λI)v = 0 the vector can be written as
-----> y = (1.00) * x
Let x = (-5) so y = -5.00

The matrix has two eigenvectors:
for λ1 = 1.00 -> [-3.00, 3.00]
for λ2 = 3.00 -> [-5.00, -5.00]
`
	assert.Equal(t, want, buf.String())
}

func TestWrite_Repeated(t *testing.T) {
	res := eigen.Decompose(matrix.New(2, 0, 0, 2))

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res, report.Options{HideMatrix: true}))
	out := buf.String()

	assert.NotContains(t, out, "Your matrix")
	assert.Contains(t, out, "The matrix has one eigenvalue:\nλ1 = 2.0000\n")
	assert.Contains(t, out, "the matrix is diagonal; the x axis is an eigenvector")
	assert.Contains(t, out, "The matrix has one eigenvector:\n[1.00, 0.00]\n")
}

// TestWrite_GapAtTolerance keeps the eigenvalue and eigenvector blocks in
// agreement when |λ1 − λ2| equals the tolerance exactly.
func TestWrite_GapAtTolerance(t *testing.T) {
	m := matrix.New(0, 0, 0, matrix.Epsilon)
	pair := eigen.Pair{L1: 0, L2: complex(matrix.Epsilon, 0), Kind: eigen.RealDistinct}
	require.False(t, pair.Distinct())
	require.False(t, pair.Identical())

	res := eigen.Result{
		Matrix:  m,
		Pair:    pair,
		Vectors: eigen.Vectors(m, pair.L1, pair.L2, eigen.WithScaler(eigen.UnitScaler())),
	}
	require.False(t, res.Vectors.HasTwoVectors)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res, report.Options{HideMatrix: true}))
	out := buf.String()

	assert.Contains(t, out, "The matrix has one eigenvalue:\nλ1 = 0.0000\n")
	assert.NotContains(t, out, "two eigenvalues")
	assert.Contains(t, out, "The matrix has one eigenvector:")
}

func TestWrite_ComplexWithVerification(t *testing.T) {
	res := eigen.Decompose(matrix.New(0, -1, 1, 0), eigen.WithScaler(eigen.UnitScaler()))
	rep := verify.Check(res)
	cmp, err := verify.CrossCheck(res)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res, report.Options{Check: &rep, Comparison: &cmp}))
	out := buf.String()

	assert.Contains(t, out, "Complex eigenvalues detected\n\n")
	assert.Contains(t, out, "λ1 = 0.00 - 1.00i\nλ2 = 0.00 + 1.00i\n")
	assert.Contains(t, out, "for λ1 = 0.00 - 1.00i -> [1.00, 0.00 + 1.00i]")
	assert.Contains(t, out, "for λ2 = 0.00 + 1.00i -> [1.00, 0.00 - 1.00i]")
	assert.Contains(t, out, "VERIFICATION")
	assert.Contains(t, out, "overall: ok")
	assert.Contains(t, out, "gonum eigenvalues = [0.0000 - 1.0000i, 0.0000 + 1.0000i]")
	assert.NotContains(t, out, "Jacobi", "rotation matrix is not symmetric")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWrite_PropagatesWriterError(t *testing.T) {
	res := eigen.Decompose(matrix.New(1, 2, 3, 4))
	assert.Error(t, report.Write(failingWriter{}, res, report.Options{}))
}
