package viz

import (
	"math"
	"sort"

	"github.com/san-kum/entui/internal/entropy"
	"github.com/san-kum/entui/internal/nav"
)

// Chart is a rendered entropy line over a viewport. ColumnMax holds, per
// character column, the highest entropy plotted there (NaN when empty).
type Chart struct {
	Canvas    *Canvas
	ColumnMax []float64
}

// RenderChart draws the samples visible in v onto a w x h character canvas.
// The x axis spans [v.Start(), v.End()] and the y axis [0, 8]. One sample on
// each side of the window is included so the line reaches the edges.
func RenderChart(samples []entropy.Sample, v nav.Viewport, w, h int) Chart {
	c := NewCanvas(w, h)
	colMax := make([]float64, c.Width)
	for i := range colMax {
		colMax[i] = math.NaN()
	}
	ch := Chart{Canvas: c, ColumnMax: colMax}

	lo, hi := v.Start(), v.End()
	if len(samples) == 0 || hi <= lo {
		return ch
	}

	i := sort.Search(len(samples), func(k int) bool { return float64(samples[k].Offset) >= lo })
	j := sort.Search(len(samples), func(k int) bool { return float64(samples[k].Offset) > hi })
	if i > 0 {
		i--
	}
	if j < len(samples) {
		j++
	}
	visible := samples[i:j]

	pw, ph := c.PixelSize()
	xOf := func(off int64) int {
		return int(math.Round((float64(off) - lo) / (hi - lo) * float64(pw-1)))
	}
	yOf := func(e float64) int {
		return ph - 1 - int(math.Round(e/entropy.MaxEntropy*float64(ph-1)))
	}

	px, py := xOf(visible[0].Offset), yOf(visible[0].Entropy)
	ch.mark(px, visible[0].Entropy)
	if len(visible) == 1 {
		c.Set(px, py)
		return ch
	}
	for _, s := range visible[1:] {
		x, y := xOf(s.Offset), yOf(s.Entropy)
		c.DrawLine(px, py, x, y)
		ch.mark(x, s.Entropy)
		px, py = x, y
	}
	return ch
}

func (ch *Chart) mark(x int, e float64) {
	col := x / 2
	if x < 0 || col >= len(ch.ColumnMax) {
		return
	}
	if math.IsNaN(ch.ColumnMax[col]) || e > ch.ColumnMax[col] {
		ch.ColumnMax[col] = e
	}
}
