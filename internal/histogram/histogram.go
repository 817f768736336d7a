// Package histogram builds per-channel frequency tables of 8-bit samples and
// rasterises them as a line chart.
package histogram

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

// Bins is the number of distinct sample values per channel.
const Bins = 256

// Canvas geometry of a rendered chart.
const (
	Size      = 256
	GridLines = 20
	gridGap   = Size / GridLines
)

// Bins at or below LowCut and at or above HighCut are ignored when locating
// the dominant tone of a channel.
const (
	LowCut  = 10
	HighCut = 245
)

// Chart colours.
var (
	Background = mustHex("#ffffff")
	Grid       = mustHex("#c0c0c0")
	Traces     = [3]color.RGBA{mustHex("#ff0000"), mustHex("#00ff00"), mustHex("#0000ff")}
)

func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("histogram: bad colour %q: %v", s, err))
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// Table counts sample occurrences, indexed [channel][value].
type Table [3][Bins]int

// Build counts the values of three equally sized planes. Every sample must
// lie in [0, 255].
func Build(r, g, b []int32) Table {
	var t Table
	for i := range r {
		t[0][r[i]]++
		t[1][g[i]]++
		t[2][b[i]]++
	}
	return t
}

// Max returns the largest count across all bins of all channels.
func (t *Table) Max() int {
	max := 0
	for c := range t {
		for _, n := range t[c] {
			if n > max {
				max = n
			}
		}
	}
	return max
}

// Peaks returns, per channel, the most frequent value after discarding bins
// at or below LowCut and at or above HighCut. Ties resolve to the lowest
// value. A channel with no remaining samples reports 0.
func (t *Table) Peaks() [3]int {
	var peaks [3]int
	for c := range t {
		best := 0
		for v := LowCut + 1; v < HighCut; v++ {
			if t[c][v] > best {
				best = t[c][v]
				peaks[c] = v
			}
		}
	}
	return peaks
}

// Render draws t on a Size x Size white canvas with a light grey grid and one
// trace per channel, drawn red, green, then blue. Counts are scaled so that
// the largest bin spans the full height.
func Render(t *Table) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, Size, Size))
	xdraw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, xdraw.Src)

	for i := 0; i <= GridLines; i++ {
		x := i * gridGap
		line(canvas, x, 0, x, Size, Grid)
		y := Size - i*gridGap
		line(canvas, 0, y, Size, y, Grid)
	}

	scale := 0.0
	if max := t.Max(); max > 0 {
		scale = float64(Size) / float64(max)
	}
	for c := range t {
		for i := 0; i < Bins-1; i++ {
			y1 := Size - 1 - int(float64(t[c][i])*scale)
			y2 := Size - 1 - int(float64(t[c][i+1])*scale)
			line(canvas, i, y1, i+1, y2, Traces[c])
		}
	}
	return canvas
}

// line plots the segment from (x0, y0) to (x1, y1) inclusive, stepping along
// the major axis and rounding the minor coordinate half up. Points outside
// the canvas are dropped.
func line(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	steps := abs(dx)
	if abs(dy) > steps {
		steps = abs(dy)
	}
	if steps == 0 {
		plot(img, x0, y0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		x := x0 + floorDiv(2*i*dx+steps, 2*steps)
		y := y0 + floorDiv(2*i*dy+steps, 2*steps)
		plot(img, x, y, c)
	}
}

func plot(img *image.RGBA, x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	img.SetRGBA(x, y, c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// floorDiv divides rounding toward negative infinity. d must be positive.
func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
