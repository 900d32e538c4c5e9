package chart

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eigen2x2/eigen"
	"github.com/katalvlaran/eigen2x2/matrix"
	"github.com/katalvlaran/eigen2x2/report"
)

// circleSegments is the number of chords approximating the unit circle.
const circleSegments = 96

// margin pads the plotted extent beyond the largest coordinate.
const margin = 1.15

// Series is a named polyline in the plane.
type Series struct {
	Name   string
	Points [][2]float64
}

// Geometry holds everything the renderers draw.
type Geometry struct {
	Title      string
	Extent     float64 // axes span [−Extent, Extent] on both axes
	Circle     Series
	Image      Series
	Directions []Series
}

// Build computes the Geometry of res.
func Build(res eigen.Result) Geometry {
	var (
		m = res.Matrix
		g = Geometry{
			Title:  fmt.Sprintf("A = [[%g, %g], [%g, %g]]", m.A00, m.A01, m.A10, m.A11),
			Circle: Series{Name: "unit circle"},
			Image:  Series{Name: "A · unit circle"},
		}
		ext = 1.0
	)

	for k := 0; k <= circleSegments; k++ {
		th := 2 * math.Pi * float64(k) / circleSegments
		c, s := math.Cos(th), math.Sin(th)
		img := m.MulVec(matrix.RealVec2(c, s)).Real()
		g.Circle.Points = append(g.Circle.Points, [2]float64{c, s})
		g.Image.Points = append(g.Image.Points, img)
		ext = math.Max(ext, math.Max(math.Abs(img[0]), math.Abs(img[1])))
	}
	g.Extent = ext * margin

	g.Directions = append(g.Directions, directions(1, res.Pair.L1, res.Vectors.V1, g.Extent)...)
	if res.Vectors.HasTwoVectors {
		g.Directions = append(g.Directions, directions(2, res.Pair.L2, res.Vectors.V2, g.Extent)...)
	}

	return g
}

// directions returns the line(s) through the origin spanned by the real and
// imaginary parts of v, clipped to ±ext. Parts that vanish are skipped.
func directions(idx int, lambda complex128, v matrix.Vec2, ext float64) []Series {
	label := fmt.Sprintf("v%d (λ%d = %s)", idx, idx, report.FormatScalar(lambda, report.PrecisionDistinct))
	re := [2]float64{real(v[0]), real(v[1])}
	im := [2]float64{imag(v[0]), imag(v[1])}

	var out []Series
	if matrix.IsReal(v[0]) && matrix.IsReal(v[1]) {
		if s, ok := line(label, re, ext); ok {
			out = append(out, s)
		}

		return out
	}
	if s, ok := line("Re "+label, re, ext); ok {
		out = append(out, s)
	}
	if s, ok := line("Im "+label, im, ext); ok {
		out = append(out, s)
	}

	return out
}

func line(name string, d [2]float64, ext float64) (Series, bool) {
	n := math.Hypot(d[0], d[1])
	if n < matrix.Epsilon {
		return Series{}, false
	}
	ux, uy := d[0]/n*ext, d[1]/n*ext

	return Series{Name: name, Points: [][2]float64{{-ux, -uy}, {ux, uy}}}, true
}
