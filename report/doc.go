// Package report renders an eigen.Result as the human-readable console
// layout: the input matrix, an EIGENVALUES block, the derivation notes, an
// EIGENVECTORS block and, optionally, a VERIFICATION block.
//
// Scalars print as plain reals when their imaginary part is below
// matrix.Epsilon and as "re + imi" composites otherwise. Eigenvalues use four
// decimals for a repeated root and two for distinct roots; vectors use two.
package report
