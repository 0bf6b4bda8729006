package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/entui/internal/entropy"
	"github.com/san-kum/entui/internal/nav"
	"github.com/san-kum/entui/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG, one circle per set
// sub-pixel.
func CanvasToSVG(canvas *viz.Canvas, scale float64, fill string) string {
	if canvas == nil {
		return ""
	}

	pw, ph := canvas.PixelSize()
	width := float64(pw) * scale
	height := float64(ph) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="%s">
`, width, height, width, height, fill)

	dotRadius := scale * 0.4
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius)
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// WriteSVG draws the whole profile on a braille canvas, the same renderer
// the terminal chart uses, and writes it as SVG.
func WriteSVG(w io.Writer, ds *entropy.Dataset, opts Options) error {
	opts = opts.withDefaults()
	v := nav.New(ds.TotalSize, ds.BlockSize)
	ch := viz.RenderChart(ds.Samples, v, opts.Columns, opts.Rows)
	_, err := io.WriteString(w, CanvasToSVG(ch.Canvas, opts.Scale, "#00ffff"))
	return err
}
