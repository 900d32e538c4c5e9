// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"math/cmplx"
)

// Epsilon is the tolerance below which a value is treated as exactly zero.
// It is shared by discriminant classification, eigenvalue equality and
// matrix-entry zero checks; changing it changes all three together.
const Epsilon = 1e-10

// IsZero reports whether |x| < Epsilon.
func IsZero(x float64) bool { return math.Abs(x) < Epsilon }

// IsZeroC reports whether |z| < Epsilon.
func IsZeroC(z complex128) bool { return cmplx.Abs(z) < Epsilon }

// IsReal reports whether z has a negligible imaginary part.
func IsReal(z complex128) bool { return IsZero(imag(z)) }

// Close reports whether two scalars are within Epsilon of each other.
func Close(a, b complex128) bool { return IsZeroC(a - b) }

// Sign returns -1, 0 or +1 for x, using strict comparisons against zero.
func Sign(x float64) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
