package verify

import "errors"

var (
	// ErrNotSymmetric is returned by Jacobi for a non-symmetric input.
	ErrNotSymmetric = errors.New("verify: matrix is not symmetric")

	// ErrFactorize is returned when gonum fails to factorize the matrix.
	ErrFactorize = errors.New("verify: gonum eigen factorization failed")

	// ErrMismatch is returned when an independent solver disagrees with the
	// closed-form result beyond tolerance.
	ErrMismatch = errors.New("verify: eigen results disagree")
)
