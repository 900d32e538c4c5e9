package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/eigen2x2/eigen"
	"github.com/katalvlaran/eigen2x2/verify"
)

const ruleWidth = 50

// coordNames labels vector coordinates in derivation notes.
var coordNames = [2]string{"x", "y"}

// Options controls optional report sections.
type Options struct {
	// Check, when non-nil, adds a VERIFICATION block.
	Check *verify.Report

	// Comparison, when non-nil, adds the gonum cross-check line.
	Comparison *verify.Comparison

	// HideMatrix omits the "Your matrix" header.
	HideMatrix bool
}

// Write renders res to w. It returns the first write error.
func Write(w io.Writer, res eigen.Result, opts Options) error {
	bw := bufio.NewWriter(w)

	if !opts.HideMatrix {
		fmt.Fprintf(bw, "Your matrix:\n%s\n", res.Matrix)
	}

	section(bw, "EIGENVALUES")
	writeValues(bw, res.Pair)

	section(bw, "EIGENVECTORS")
	for _, d := range res.Vectors.Derivations {
		writeDerivation(bw, d)
	}
	writeVectors(bw, res.Pair, res.Vectors)

	if opts.Check != nil || opts.Comparison != nil {
		section(bw, "VERIFICATION")
		if opts.Check != nil {
			writeCheck(bw, *opts.Check)
		}
		if opts.Comparison != nil {
			writeComparison(bw, *opts.Comparison)
		}
	}

	return bw.Flush()
}

func section(w io.Writer, title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, title, rule)
}

func writeValues(w io.Writer, p eigen.Pair) {
	if p.Kind == eigen.ComplexPair {
		fmt.Fprint(w, "Complex eigenvalues detected\n\n")
	}
	if !p.Distinct() {
		fmt.Fprintf(w, "The matrix has one eigenvalue:\nλ1 = %s\n",
			FormatScalar(p.L1, PrecisionRepeated))

		return
	}
	fmt.Fprintf(w, "The matrix has two eigenvalues:\nλ1 = %s\nλ2 = %s\n",
		FormatScalar(p.L1, PrecisionDistinct), FormatScalar(p.L2, PrecisionDistinct))
}

// writeDerivation narrates how one vector was obtained.
func writeDerivation(w io.Writer, d eigen.Derivation) {
	lambda := FormatScalar(d.Lambda, PrecisionDistinct)
	if d.Source == eigen.Canonical {
		fmt.Fprintf(w, "For λ%d = %s the matrix is diagonal; the %s axis is an eigenvector\n\n",
			d.Index, lambda, coordNames[d.FreeCoord])

		return
	}

	free, dep := coordNames[d.FreeCoord], coordNames[d.Dependent()]
	fmt.Fprintf(w, "From λ%d = %s and %s of (A - λI)v = 0 the vector can be written as\n",
		d.Index, lambda, d.Source)
	fmt.Fprintf(w, "-----> %s = (%s) * %s\n", dep, FormatScalar(d.Ratio, PrecisionDistinct), free)
	fmt.Fprintf(w, "Let %s = (%s) so %s = %s\n\n",
		free, FormatReal(d.Free, 0), dep, FormatScalar(d.Ratio*complex(d.Free, 0), PrecisionDistinct))
}

func writeVectors(w io.Writer, p eigen.Pair, vs eigen.VectorSet) {
	if !vs.HasTwoVectors {
		fmt.Fprintf(w, "The matrix has one eigenvector:\n%s\n", FormatVec(vs.V1, PrecisionVector))

		return
	}
	fmt.Fprint(w, "The matrix has two eigenvectors:\n")
	fmt.Fprintf(w, "for λ1 = %s -> %s\n", FormatScalar(p.L1, PrecisionDistinct), FormatVec(vs.V1, PrecisionVector))
	fmt.Fprintf(w, "for λ2 = %s -> %s\n", FormatScalar(p.L2, PrecisionDistinct), FormatVec(vs.V2, PrecisionVector))
}

func writeCheck(w io.Writer, rep verify.Report) {
	for _, vc := range rep.Vectors {
		fmt.Fprintf(w, "λ%d: A*v = %s  λ*v = %s  residual = %.1e %s\n",
			vc.Index, FormatVec(vc.Av, PrecisionVector), FormatVec(vc.LambdaV, PrecisionVector),
			vc.Residual, verdict(vc.OK))
	}
	fmt.Fprintf(w, "|λ1 + λ2 - trace| = %.1e\n", rep.SumError)
	fmt.Fprintf(w, "|λ1 * λ2 - det|   = %.1e\n", rep.ProductError)
	if rep.Jacobi {
		fmt.Fprintf(w, "Jacobi rotation   = %.1e %s\n", rep.JacobiError, verdict(rep.JacobiMatches))
	}
	fmt.Fprintf(w, "overall: %s\n", verdict(rep.OK))
}

func writeComparison(w io.Writer, c verify.Comparison) {
	vals := make([]string, len(c.Values))
	for i, v := range c.Values {
		vals[i] = FormatScalar(v, PrecisionRepeated)
	}
	fmt.Fprintf(w, "gonum eigenvalues = [%s]  max diff = %.1e  directions %s\n",
		strings.Join(vals, ", "), c.MaxValueError, verdict(c.VectorsAgree))
}

func verdict(ok bool) string {
	if ok {
		return "ok"
	}

	return "MISMATCH"
}
