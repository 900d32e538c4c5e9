package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/eigen2x2/eigen"
)

// palette colors eigen-direction lines in order.
var palette = []color.Color{
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

// Plot builds a gonum/plot figure of res.
func Plot(res eigen.Result) (*plot.Plot, error) {
	return plotGeometry(Build(res))
}

func plotGeometry(g Geometry) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = g.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = -g.Extent, g.Extent
	p.Y.Min, p.Y.Max = -g.Extent, g.Extent
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	circle, err := newLine(g.Circle)
	if err != nil {
		return nil, err
	}
	circle.LineStyle.Color = color.Gray{Y: 150}
	circle.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	image, err := newLine(g.Image)
	if err != nil {
		return nil, err
	}
	image.LineStyle.Color = color.Black

	p.Add(circle, image)
	p.Legend.Add(g.Circle.Name, circle)
	p.Legend.Add(g.Image.Name, image)

	for i, d := range g.Directions {
		l, err := newLine(d)
		if err != nil {
			return nil, err
		}
		l.LineStyle.Color = palette[i%len(palette)]
		l.LineStyle.Width = vg.Points(2)
		p.Add(l)
		p.Legend.Add(d.Name, l)
	}

	return p, nil
}

func newLine(s Series) (*plotter.Line, error) {
	xys := make(plotter.XYs, len(s.Points))
	for i, pt := range s.Points {
		xys[i].X, xys[i].Y = pt[0], pt[1]
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("chart: %s: %w", s.Name, err)
	}

	return l, nil
}
