// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Validators return these sentinels wrapped with a short tag; callers match
// them via errors.Is. Value methods on Matrix2x2 never fail.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a row-slice input is not exactly 2×2.
	ErrBadShape = errors.New("matrix: input is not 2x2")

	// ErrNaNInf signals a NaN or ±Inf entry where a finite real is required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrOutOfRange indicates that a row or column index is outside 0..1.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrEntryCount is returned when a flat entry list does not hold four values.
	ErrEntryCount = errors.New("matrix: need exactly 4 entries")
)
