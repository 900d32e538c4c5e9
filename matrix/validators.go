// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for input validation ahead of the solver.
//   - Return sentinel errors wrapped with the validator tag.
//
// The eigen stage itself never validates: any four finite reals are legal.
// These checks guard the ingestion boundary (prompts, flags, config files).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRows ensures rows is exactly two rows of two values.
// Returns wrapped ErrBadShape.
func ValidateRows(rows [][]float64) error {
	if len(rows) != 2 {
		return validatorErrorf("ValidateRows", ErrBadShape)
	}
	for i := range rows {
		if len(rows[i]) != 2 {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d", i), ErrBadShape)
		}
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries. Returns wrapped ErrNaNInf
// naming the first offending cell in row-major order.
func ValidateFinite(m Matrix2x2) error {
	for k, v := range m.Entries() {
		if err := ValidateValue(v); err != nil {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: A[%d][%d]", k/2, k%2), err)
		}
	}

	return nil
}

// ValidateValue rejects a single NaN or ±Inf value with ErrNaNInf.
func ValidateValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}

	return nil
}
