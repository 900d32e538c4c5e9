package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/eigen2x2/matrix"
)

// Precisions used by Write.
const (
	PrecisionRepeated = 4
	PrecisionDistinct = 2
	PrecisionVector   = 2
)

// FormatReal renders x with prec decimals, never printing a negative zero.
func FormatReal(x float64, prec int) string {
	s := strconv.FormatFloat(x, 'f', prec, 64)

	return trimNegativeZero(s)
}

// FormatScalar renders z with prec decimals: "1.50" when z is real within
// matrix.Epsilon, "1.50 + 0.87i" or "1.50 - 0.87i" otherwise.
func FormatScalar(z complex128, prec int) string {
	if matrix.IsReal(z) {
		return FormatReal(real(z), prec)
	}

	op := " + "
	if math.Signbit(imag(z)) {
		op = " - "
	}

	return FormatReal(real(z), prec) + op + FormatReal(math.Abs(imag(z)), prec) + "i"
}

// FormatVec renders v as "[a, b]" with FormatScalar components.
func FormatVec(v matrix.Vec2, prec int) string {
	return "[" + FormatScalar(v[0], prec) + ", " + FormatScalar(v[1], prec) + "]"
}

// trimNegativeZero turns "-0.00" into "0.00".
func trimNegativeZero(s string) string {
	if !strings.HasPrefix(s, "-") {
		return s
	}
	if strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}

	return s
}
