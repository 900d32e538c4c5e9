// SPDX-License-Identifier: MIT
// Package matrix — the 2×2 real input matrix.
//
// Purpose:
//   - Hold the four entries supplied by the caller, row-major.
//   - Expose the characteristic-polynomial coefficients (trace, det) and the
//     discriminant used to classify the eigenvalues.
//   - Build the complex shifted matrix A − λI consumed by the eigenvector stage.
//
// Determinism:
//   - Every method is a pure function of the receiver; nothing allocates on
//     the heap except Dense.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix2x2 is a real 2×2 matrix [[A00, A01], [A10, A11]].
type Matrix2x2 struct {
	A00, A01 float64 // row 0
	A10, A11 float64 // row 1
}

// New returns the matrix with the given entries in row-major order.
func New(a00, a01, a10, a11 float64) Matrix2x2 {
	return Matrix2x2{A00: a00, A01: a01, A10: a10, A11: a11}
}

// FromRows builds a Matrix2x2 from a [][]float64 after validating shape and
// finiteness. Returns wrapped ErrBadShape or ErrNaNInf.
func FromRows(rows [][]float64) (Matrix2x2, error) {
	if err := ValidateRows(rows); err != nil {
		return Matrix2x2{}, err
	}
	m := New(rows[0][0], rows[0][1], rows[1][0], rows[1][1])
	if err := ValidateFinite(m); err != nil {
		return Matrix2x2{}, err
	}

	return m, nil
}

// FromEntries builds a Matrix2x2 from exactly four row-major values.
// Returns wrapped ErrEntryCount or ErrNaNInf.
func FromEntries(vals []float64) (Matrix2x2, error) {
	if len(vals) != 4 {
		return Matrix2x2{}, validatorErrorf("FromEntries", ErrEntryCount)
	}
	m := New(vals[0], vals[1], vals[2], vals[3])
	if err := ValidateFinite(m); err != nil {
		return Matrix2x2{}, err
	}

	return m, nil
}

// At returns entry (i, j). Returns ErrOutOfRange for indices outside 0..1.
func (m Matrix2x2) At(i, j int) (float64, error) {
	switch {
	case i == 0 && j == 0:
		return m.A00, nil
	case i == 0 && j == 1:
		return m.A01, nil
	case i == 1 && j == 0:
		return m.A10, nil
	case i == 1 && j == 1:
		return m.A11, nil
	}

	return 0, fmt.Errorf("Matrix2x2.At(%d,%d): %w", i, j, ErrOutOfRange)
}

// Entries returns the entries in row-major order.
func (m Matrix2x2) Entries() [4]float64 {
	return [4]float64{m.A00, m.A01, m.A10, m.A11}
}

// Row returns row i (0 or 1). Any other index yields row 1.
func (m Matrix2x2) Row(i int) [2]float64 {
	if i == 0 {
		return [2]float64{m.A00, m.A01}
	}

	return [2]float64{m.A10, m.A11}
}

// Trace returns a00 + a11.
func (m Matrix2x2) Trace() float64 { return m.A00 + m.A11 }

// Det returns a00·a11 − a01·a10.
func (m Matrix2x2) Det() float64 { return m.A00*m.A11 - m.A01*m.A10 }

// Discriminant returns trace² − 4·det of the characteristic polynomial
// λ² − trace·λ + det = 0.
func (m Matrix2x2) Discriminant() float64 {
	tr := m.Trace()

	return tr*tr - 4*m.Det()
}

// IsDiagonal reports whether both off-diagonal entries are within Epsilon of zero.
func (m Matrix2x2) IsDiagonal() bool { return IsZero(m.A01) && IsZero(m.A10) }

// IsSymmetric reports whether |a01 − a10| < Epsilon.
func (m Matrix2x2) IsSymmetric() bool { return IsZero(m.A01 - m.A10) }

// MulVec returns A·v.
func (m Matrix2x2) MulVec(v Vec2) Vec2 {
	return Vec2{
		complex(m.A00, 0)*v[0] + complex(m.A01, 0)*v[1],
		complex(m.A10, 0)*v[0] + complex(m.A11, 0)*v[1],
	}
}

// Shift returns the complex matrix A − λI.
func (m Matrix2x2) Shift(lambda complex128) Shifted {
	return Shifted{
		{complex(m.A00, 0) - lambda, complex(m.A01, 0)},
		{complex(m.A10, 0), complex(m.A11, 0) - lambda},
	}
}

// Dense returns a freshly allocated gonum *mat.Dense holding the same entries.
func (m Matrix2x2) Dense() *mat.Dense {
	return mat.NewDense(2, 2, []float64{m.A00, m.A01, m.A10, m.A11})
}

// String renders the matrix as two bracketed rows.
func (m Matrix2x2) String() string {
	return fmt.Sprintf("[%g, %g]\n[%g, %g]", m.A00, m.A01, m.A10, m.A11)
}

// Shifted is a complex 2×2 matrix, typically A − λI.
type Shifted [2][2]complex128

// MulVec returns S·v.
func (s Shifted) MulVec(v Vec2) Vec2 {
	return Vec2{
		s[0][0]*v[0] + s[0][1]*v[1],
		s[1][0]*v[0] + s[1][1]*v[1],
	}
}
