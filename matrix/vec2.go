// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
)

// Vec2 is a 2-component complex column vector.
type Vec2 [2]complex128

// RealVec2 lifts two reals into a Vec2.
func RealVec2(x, y float64) Vec2 { return Vec2{complex(x, 0), complex(y, 0)} }

// Scale returns s·v.
func (v Vec2) Scale(s complex128) Vec2 { return Vec2{s * v[0], s * v[1]} }

// Sub returns v − w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v[0] - w[0], v[1] - w[1]} }

// Norm returns the Euclidean norm of v.
func (v Vec2) Norm() float64 { return cmplxs.Norm(v[:], 2) }

// IsZero reports whether every component is within Epsilon of zero.
func (v Vec2) IsZero() bool { return IsZeroC(v[0]) && IsZeroC(v[1]) }

// Real returns the real parts of both components.
func (v Vec2) Real() [2]float64 { return [2]float64{real(v[0]), real(v[1])} }

// Parallel reports whether v and w span the same complex line, i.e. the 2×2
// determinant v0·w1 − v1·w0 vanishes relative to ‖v‖·‖w‖.
// Zero vectors are parallel to nothing.
func (v Vec2) Parallel(w Vec2, tol float64) bool {
	nv, nw := v.Norm(), w.Norm()
	if nv == 0 || nw == 0 {
		return false
	}

	return cmplx.Abs(v[0]*w[1]-v[1]*w[0]) <= tol*nv*nw
}

// String renders v as "[a, b]" using Go's default complex formatting.
func (v Vec2) String() string { return fmt.Sprintf("[%v, %v]", v[0], v[1]) }
