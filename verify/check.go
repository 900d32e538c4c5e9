package verify

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/eigen2x2/eigen"
	"github.com/katalvlaran/eigen2x2/matrix"
)

// Tolerances used by Check.
const (
	// ResidualTol bounds ‖(A − λI)v‖/‖v‖.
	ResidualTol = 1e-6

	// IdentityTol bounds |λ1+λ2 − trace| and |λ1·λ2 − det|, scaled by
	// max(1, |reference|).
	IdentityTol = 1e-9
)

// VectorCheck reports the evidence for one eigenvector.
type VectorCheck struct {
	Index    int
	Lambda   complex128
	V        matrix.Vec2
	Av       matrix.Vec2 // A·v
	LambdaV  matrix.Vec2 // λ·v
	Residual float64     // ‖Av − λv‖ / ‖v‖
	OK       bool
}

// Report is the outcome of Check.
type Report struct {
	Vectors []VectorCheck

	SumError     float64 // |λ1 + λ2 − trace|
	ProductError float64 // |λ1 · λ2 − det|

	// Jacobi is set for symmetric inputs: the largest difference between
	// the closed-form eigenvalues and a Jacobi rotation.
	Jacobi        bool
	JacobiError   float64
	JacobiMatches bool

	OK bool
}

// Residual returns ‖(A − λI)v‖ / ‖v‖, or +Inf for the zero vector.
func Residual(m matrix.Matrix2x2, lambda complex128, v matrix.Vec2) float64 {
	n := v.Norm()
	if n == 0 {
		return math.Inf(1)
	}

	return m.Shift(lambda).MulVec(v).Norm() / n
}

// Check evaluates every returned eigenvector of res and the trace/det
// identities of its eigenvalues. Symmetric inputs are additionally compared
// against Jacobi.
func Check(res eigen.Result) Report {
	var (
		m   = res.Matrix
		p   = res.Pair
		vs  = res.Vectors
		rep Report
	)

	rep.Vectors = append(rep.Vectors, checkVector(m, 1, p.L1, vs.V1))
	if vs.HasTwoVectors {
		rep.Vectors = append(rep.Vectors, checkVector(m, 2, p.L2, vs.V2))
	}

	rep.SumError = cmplx.Abs(p.L1 + p.L2 - complex(m.Trace(), 0))
	rep.ProductError = cmplx.Abs(p.L1*p.L2 - complex(m.Det(), 0))

	rep.OK = withinScaled(rep.SumError, m.Trace(), IdentityTol) &&
		withinScaled(rep.ProductError, m.Det(), IdentityTol)
	for _, vc := range rep.Vectors {
		rep.OK = rep.OK && vc.OK
	}

	if vals, _, err := Jacobi(m); err == nil {
		rep.Jacobi = true
		rep.JacobiError = math.Max(
			math.Abs(vals[0]-real(p.L1)),
			math.Abs(vals[1]-real(p.L2)),
		)
		// A band-classified repeated root may differ from the exact pair by √ε.
		tol := IdentityTol * math.Max(1, math.Abs(vals[1]))
		if p.Kind == eigen.Repeated {
			tol += math.Sqrt(matrix.Epsilon)
		}
		rep.JacobiMatches = rep.JacobiError <= tol
		rep.OK = rep.OK && rep.JacobiMatches
	}

	return rep
}

func checkVector(m matrix.Matrix2x2, idx int, lambda complex128, v matrix.Vec2) VectorCheck {
	vc := VectorCheck{
		Index:   idx,
		Lambda:  lambda,
		V:       v,
		Av:      m.MulVec(v),
		LambdaV: v.Scale(lambda),
	}
	vc.Residual = Residual(m, lambda, v)
	vc.OK = vc.Residual < ResidualTol

	return vc
}

// withinScaled reports err <= tol·max(1, |ref|).
func withinScaled(err, ref, tol float64) bool {
	return scalar.EqualWithinAbs(err, 0, tol*math.Max(1, math.Abs(ref)))
}
