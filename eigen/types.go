package eigen

import "github.com/katalvlaran/eigen2x2/matrix"

// Kind classifies an eigenvalue pair by the discriminant regime.
type Kind int

const (
	// RealDistinct: discriminant above the tolerance band, two real roots.
	RealDistinct Kind = iota

	// Repeated: discriminant inside the tolerance band, λ1 == λ2 == trace/2.
	Repeated

	// ComplexPair: discriminant below the tolerance band, λ2 == conj(λ1).
	ComplexPair
)

// String returns a short human-readable label.
func (k Kind) String() string {
	switch k {
	case RealDistinct:
		return "real-distinct"
	case Repeated:
		return "repeated"
	case ComplexPair:
		return "complex-pair"
	default:
		return "unknown"
	}
}

// Pair is the output of the eigenvalue stage.
// For ComplexPair the root with negative imaginary part comes first; for
// RealDistinct the smaller root comes first.
type Pair struct {
	L1, L2 complex128

	Kind Kind

	// Characteristic polynomial coefficients the pair was derived from.
	Trace        float64
	Det          float64
	Discriminant float64
}

// Identical reports whether |λ1 − λ2| < matrix.Epsilon.
func (p Pair) Identical() bool { return matrix.Close(p.L1, p.L2) }

// Distinct reports whether |λ1 − λ2| > matrix.Epsilon.
func (p Pair) Distinct() bool { return distinct(p.L1, p.L2) }

// Source names where an eigenvector came from.
type Source int

const (
	// FromRow0 solved row 0 of (A − λI)v = 0.
	FromRow0 Source = iota

	// FromRow1 solved row 1 of (A − λI)v = 0.
	FromRow1

	// Canonical returned a standard basis vector for a diagonal matrix.
	Canonical
)

// String returns a short label for logs and reports.
func (s Source) String() string {
	switch s {
	case FromRow0:
		return "row 0"
	case FromRow1:
		return "row 1"
	case Canonical:
		return "canonical"
	default:
		return "unknown"
	}
}

// Derivation explains how one eigenvector was obtained.
//
// The relation is v[Dependent] = Ratio · v[FreeCoord] where Dependent is the
// other coordinate, and v[FreeCoord] == Free. For Canonical vectors Ratio is
// zero and Free is 1.
type Derivation struct {
	Index     int        // 1 or 2
	Lambda    complex128 // eigenvalue the vector belongs to
	Source    Source     // row used or canonical fallback
	FreeCoord int        // coordinate fixed to the free scalar (0 or 1)
	Ratio     complex128 // dependent / free
	Free      float64    // effective free scalar after orientation
	Flipped   bool       // orientation rule negated the vector
}

// Dependent returns the index of the coordinate derived from the free one.
func (d Derivation) Dependent() int { return 1 - d.FreeCoord }

// VectorSet is the output of the eigenvector stage.
// When HasTwoVectors is false, V2 is the zero vector and carries no meaning.
type VectorSet struct {
	V1, V2        matrix.Vec2
	HasTwoVectors bool
	Derivations   []Derivation
}

// Result bundles both stages for one input matrix.
type Result struct {
	Matrix  matrix.Matrix2x2
	Pair    Pair
	Vectors VectorSet
}
