package verify

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/eigen2x2/eigen"
	"github.com/katalvlaran/eigen2x2/matrix"
)

// CrossTol bounds the eigenvalue difference against gonum, scaled by
// max(1, |λ|). Band-classified repeated roots get an extra √ε.
const CrossTol = 1e-8

// Comparison is the outcome of CrossCheck.
type Comparison struct {
	// Values are gonum's eigenvalues sorted by (real, imag).
	Values []complex128

	// Vectors are gonum's right eigenvectors in the same order as Values.
	Vectors []matrix.Vec2

	// MaxValueError is the largest |λ_gonum − λ_closed| after sorting.
	MaxValueError float64

	// VectorsAgree reports that every returned closed-form eigenvector is
	// parallel to a gonum eigenvector for the same eigenvalue.
	VectorsAgree bool
}

// CrossCheck factorizes res.Matrix with gonum's mat.Eigen and compares the
// eigenvalues and eigenvector directions with res.
//
// Errors: ErrFactorize when gonum reports failure; ErrMismatch (wrapped with
// the offending values) when eigenvalues or directions disagree. The
// Comparison is filled in either way once factorization succeeded.
func CrossCheck(res eigen.Result) (Comparison, error) {
	var (
		cmp Comparison
		eig mat.Eigen
	)
	if ok := eig.Factorize(res.Matrix.Dense(), mat.EigenRight); !ok {
		return cmp, ErrFactorize
	}

	vals := eig.Values(nil)
	var cv mat.CDense
	eig.VectorsTo(&cv)

	idx := []int{0, 1}
	sort.Slice(idx, func(a, b int) bool { return lessComplex(vals[idx[a]], vals[idx[b]]) })
	for _, j := range idx {
		cmp.Values = append(cmp.Values, vals[j])
		cmp.Vectors = append(cmp.Vectors, matrix.Vec2{cv.At(0, j), cv.At(1, j)})
	}

	ours := []complex128{res.Pair.L1, res.Pair.L2}
	sort.Slice(ours, func(a, b int) bool { return lessComplex(ours[a], ours[b]) })

	var tol float64
	for k := range ours {
		cmp.MaxValueError = math.Max(cmp.MaxValueError, cmplx.Abs(ours[k]-cmp.Values[k]))
		tol = math.Max(tol, CrossTol*math.Max(1, cmplx.Abs(ours[k])))
	}
	if res.Pair.Kind == eigen.Repeated {
		tol += math.Sqrt(matrix.Epsilon)
	}

	cmp.VectorsAgree = cmp.hasParallel(res.Pair.L1, res.Vectors.V1, tol)
	if res.Vectors.HasTwoVectors {
		cmp.VectorsAgree = cmp.VectorsAgree && cmp.hasParallel(res.Pair.L2, res.Vectors.V2, tol)
	}

	if cmp.MaxValueError > tol {
		return cmp, fmt.Errorf("CrossCheck: values %v vs %v: %w", ours, cmp.Values, ErrMismatch)
	}
	if !cmp.VectorsAgree {
		return cmp, fmt.Errorf("CrossCheck: eigenvector directions: %w", ErrMismatch)
	}

	return cmp, nil
}

// hasParallel reports whether some gonum eigenvector for an eigenvalue
// within tol of lambda spans the same line as v.
func (c Comparison) hasParallel(lambda complex128, v matrix.Vec2, tol float64) bool {
	for k, gv := range c.Vectors {
		if cmplx.Abs(c.Values[k]-lambda) > tol {
			continue
		}
		if v.Parallel(gv, 1e-6) {
			return true
		}
	}

	return false
}

// lessComplex orders by real part, then imaginary part. Real parts closer
// than CrossTol (relative) count as equal so conjugate pairs from different
// solvers sort the same way.
func lessComplex(a, b complex128) bool {
	ra, rb := real(a), real(b)
	if math.Abs(ra-rb) > CrossTol*math.Max(1, math.Max(math.Abs(ra), math.Abs(rb))) {
		return ra < rb
	}

	return imag(a) < imag(b)
}
