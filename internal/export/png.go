package export

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/san-kum/entui/internal/entropy"
)

var (
	lineColor = drawing.ColorFromHex("00a8cc")
	hotColor  = drawing.ColorFromHex("ff4757")
)

// WritePNG renders the entropy profile as a line chart with the y axis fixed
// to [0, 8] and the threshold drawn as a flat reference line.
func WritePNG(w io.Writer, ds *entropy.Dataset, opts Options) error {
	opts = opts.withDefaults()
	xs, ys := ds.Offsets(), ds.Entropies()
	// go-chart needs at least two points per series.
	switch len(xs) {
	case 0:
		xs, ys = []float64{0, ds.TotalSize}, []float64{0, 0}
	case 1:
		xs, ys = []float64{xs[0], ds.TotalSize}, []float64{ys[0], ys[0]}
	}

	title := "Entropy"
	if opts.Source != "" {
		title = "Entropy of " + opts.Source
	}

	graph := chart.Chart{
		Title:  title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: chart.XAxis{
			Name:           "offset",
			ValueFormatter: formatOffset,
		},
		YAxis: chart.YAxis{
			Name:  "bits/byte",
			Range: &chart.ContinuousRange{Min: 0, Max: entropy.MaxEntropy},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "entropy",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: lineColor, StrokeWidth: 1.5},
			},
			chart.ContinuousSeries{
				Name:    "threshold",
				XValues: []float64{0, ds.TotalSize},
				YValues: []float64{opts.Threshold, opts.Threshold},
				Style: chart.Style{
					StrokeColor:     hotColor,
					StrokeWidth:     1,
					StrokeDashArray: []float64{4, 4},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("export: render png: %w", err)
	}
	return nil
}

func formatOffset(v interface{}) string {
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}
