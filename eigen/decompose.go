package eigen

import "github.com/katalvlaran/eigen2x2/matrix"

// Decompose runs Values then Vectors on m.
func Decompose(m matrix.Matrix2x2, opts ...Option) Result {
	p := Values(m)

	return Result{
		Matrix:  m,
		Pair:    p,
		Vectors: Vectors(m, p.L1, p.L2, opts...),
	}
}
