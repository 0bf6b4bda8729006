// Package nav holds the navigation state of the entropy chart: which slice
// of the offset range is visible and how pan and zoom commands move it.
package nav

import (
	"fmt"
	"math"
)

const (
	// panFraction is the share of the window width moved by one pan.
	panFraction = 0.1
	zoomInRate  = 0.9
	zoomOutRate = 1.1
	// minBlocks is the smallest number of blocks a zoomed-in window spans.
	minBlocks = 10
)

// DisplayMode selects how offsets are formatted in axis labels.
type DisplayMode int

const (
	Decimal DisplayMode = iota
	Hexadecimal
)

func (m DisplayMode) String() string {
	if m == Hexadecimal {
		return "hex"
	}
	return "dec"
}

// Viewport is the visible window [Start, Start+Width] over an offset range of
// fixed total size. The zero value is not useful; use New.
type Viewport struct {
	start     float64
	width     float64
	blockSize int
	totalSize float64
	mode      DisplayMode
	quit      bool
}

// New returns a viewport showing the whole range.
func New(totalSize float64, blockSize int) Viewport {
	return Viewport{
		start:     0,
		width:     totalSize,
		blockSize: blockSize,
		totalSize: totalSize,
		mode:      Decimal,
	}
}

func (v Viewport) Start() float64     { return v.start }
func (v Viewport) Width() float64     { return v.width }
func (v Viewport) End() float64       { return v.start + v.width }
func (v Viewport) BlockSize() int     { return v.blockSize }
func (v Viewport) TotalSize() float64 { return v.totalSize }
func (v Viewport) Mode() DisplayMode  { return v.mode }

// QuitRequested reports whether the viewport reached its terminal state.
func (v Viewport) QuitRequested() bool { return v.quit }

// MinWidth is the narrowest window ZoomIn may produce: ten blocks, or the
// whole range when the file is smaller than that.
func (v Viewport) MinWidth() float64 {
	return math.Min(float64(v.blockSize*minBlocks), v.totalSize)
}

// Bounds returns the x-axis bounds of the visible window.
func (v Viewport) Bounds() [2]float64 {
	return [2]float64{v.start, v.start + v.width}
}

// Apply returns the state after cmd. Once Quit has been applied every later
// command is ignored.
func (v Viewport) Apply(cmd Command) Viewport {
	if v.quit {
		return v
	}
	switch cmd {
	case PanLeft:
		v.panLeft()
	case PanRight:
		v.panRight()
	case ZoomIn:
		v.zoomIn()
	case ZoomOut:
		v.zoomOut()
	case ToggleHex:
		v.toggleHex()
	case Reset:
		v = New(v.totalSize, v.blockSize).withMode(v.mode)
	case Quit:
		v.quit = true
	}
	return v
}

func (v Viewport) withMode(m DisplayMode) Viewport {
	v.mode = m
	return v
}

func (v *Viewport) panLeft() {
	step := v.width * panFraction
	v.start = math.Max(0, v.start-step)
}

func (v *Viewport) panRight() {
	step := v.width * panFraction
	v.start = math.Min(v.start+step, v.totalSize-v.width)
}

func (v *Viewport) zoomIn() {
	newWidth := math.Max(v.width*zoomInRate, v.MinWidth())
	center := v.start + v.width/2
	v.start = clamp(center-newWidth/2, 0, v.totalSize-newWidth)
	v.width = newWidth
}

func (v *Viewport) zoomOut() {
	newWidth := math.Min(v.width*zoomOutRate, v.totalSize)
	center := v.start + v.width/2
	v.start = clamp(center-newWidth/2, 0, v.totalSize-newWidth)
	v.width = newWidth
}

func (v *Viewport) toggleHex() {
	if v.mode == Decimal {
		v.mode = Hexadecimal
	} else {
		v.mode = Decimal
	}
}

// clamp pins x into [lo, hi], preferring lo when the range is empty.
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(x, hi))
}

// Labels returns the x-axis labels at the window's start, midpoint and end.
// Offsets are truncated to whole bytes before formatting.
func (v Viewport) Labels() [3]string {
	start := uint64(v.start)
	width := uint64(v.width)
	return [3]string{
		v.FormatOffset(start),
		v.FormatOffset(start + width/2),
		v.FormatOffset(start + width),
	}
}

// FormatOffset renders off in the current display mode.
func (v Viewport) FormatOffset(off uint64) string {
	if v.mode == Hexadecimal {
		return fmt.Sprintf("0x%08x", off)
	}
	return fmt.Sprintf("%d", off)
}
