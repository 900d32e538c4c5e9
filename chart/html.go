package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/katalvlaran/eigen2x2/eigen"
)

// PageTitle is the <title> of pages written by WriteHTML.
const PageTitle = "eigen2x2"

// WriteHTML renders res as a standalone go-echarts page.
func WriteHTML(w io.Writer, res eigen.Result) error {
	g := Build(res)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeWesteros,
			PageTitle: PageTitle,
			Width:     "720px",
			Height:    "720px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    g.Title,
			Subtitle: fmt.Sprintf("%s eigenvalues", res.Pair.Kind),
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "40",
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: -g.Extent, Max: g.Extent}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: -g.Extent, Max: g.Extent}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	series := append([]Series{g.Circle, g.Image}, g.Directions...)
	for _, s := range series {
		line.AddSeries(s.Name, lineData(s),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
	}

	page := components.NewPage()
	page.SetPageTitle(PageTitle)
	page.AddCharts(line)

	return page.Render(w)
}

func lineData(s Series) []opts.LineData {
	out := make([]opts.LineData, len(s.Points))
	for i, pt := range s.Points {
		out[i] = opts.LineData{Value: []float64{pt[0], pt[1]}}
	}

	return out
}
