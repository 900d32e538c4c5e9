package eigen

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/eigen2x2/matrix"
)

// Values returns the eigenvalue pair of m.
//
// Algorithm:
//  1. disc = trace² − 4·det, evaluated as (a00 − a11)² + 4·a01·a10 on the
//     entries divided by their largest magnitude s, so finite inputs near
//     the float64 range neither overflow nor cancel into NaN.
//  2. |disc| < ε           → Repeated,     λ1 = λ2 = trace/2.
//  3. disc > 0 (so > ε)    → RealDistinct, λ = (trace ∓ √disc)/2.
//  4. otherwise (disc < −ε) → ComplexPair, λ = (trace ∓ √disc)/2 with the
//     complex square root of disc + 0i.
//
// The repeated check runs first so a positive discriminant inside the
// tolerance band is a repeated root, not two nearly equal real ones.
// Pair.Trace, Pair.Det and Pair.Discriminant are informational and may
// be ±Inf for entries beyond ~1e154; the roots stay finite.
// Complexity: O(1).
func Values(m matrix.Matrix2x2) Pair {
	var (
		half     = m.A00/2 + m.A11/2
		sd, disc = scaledDiscriminant(m)
		p        = Pair{Trace: m.Trace(), Det: m.Det(), Discriminant: disc}
	)

	switch {
	case sd.repeated():
		p.Kind = Repeated
		p.L1 = complex(half, 0)
		p.L2 = p.L1
	case sd.d > 0:
		hs := sd.s * math.Sqrt(sd.d) / 2
		p.Kind = RealDistinct
		p.L1 = complex(half-hs, 0)
		p.L2 = complex(half+hs, 0)
	default:
		hs := cmplx.Sqrt(complex(sd.d, 0)) * complex(sd.s/2, 0) // purely imaginary, positive part
		p.Kind = ComplexPair
		p.L1 = complex(half, 0) - hs
		p.L2 = complex(half, 0) + hs
	}

	return p
}

// scaled is a discriminant factored as s²·d with s the largest entry
// magnitude.
type scaled struct {
	s, d float64
}

// repeated reports |s²·d| < ε without forming s².
func (sd scaled) repeated() bool {
	if sd.s == 0 {
		return true
	}

	return math.Abs(sd.d) < matrix.Epsilon/sd.s/sd.s
}

func scaledDiscriminant(m matrix.Matrix2x2) (scaled, float64) {
	var s float64
	for _, v := range m.Entries() {
		s = math.Max(s, math.Abs(v))
	}
	if s == 0 {
		return scaled{}, 0
	}
	b00, b01, b10, b11 := m.A00/s, m.A01/s, m.A10/s, m.A11/s
	d := (b00-b11)*(b00-b11) + 4*b01*b10

	return scaled{s: s, d: d}, d * s * s
}

// distinct is the single definition of "two eigenvectors exist".
func distinct(l1, l2 complex128) bool {
	return cmplx.Abs(l1-l2) > matrix.Epsilon
}
