package histogram

import (
	"image/color"
	"testing"
)

func TestBuild(t *testing.T) {
	r := []int32{0, 10, 10, 255}
	g := []int32{5, 5, 5, 5}
	b := []int32{1, 2, 3, 255}

	tbl := Build(r, g, b)
	if tbl[0][10] != 2 || tbl[0][0] != 1 || tbl[0][255] != 1 {
		t.Errorf("red counts wrong: 0=%d 10=%d 255=%d", tbl[0][0], tbl[0][10], tbl[0][255])
	}
	if tbl[1][5] != 4 {
		t.Errorf("green[5] = %d, want 4", tbl[1][5])
	}
	if got := tbl.Max(); got != 4 {
		t.Errorf("Max() = %d, want 4", got)
	}
}

func TestPeaksIgnoresExtremes(t *testing.T) {
	var tbl Table
	tbl[0][0] = 100
	tbl[0][40] = 3
	tbl[0][50] = 3
	tbl[1][255] = 100
	tbl[1][245] = 50
	tbl[1][244] = 1
	tbl[2][10] = 9
	tbl[2][11] = 2

	got := tbl.Peaks()
	want := [3]int{40, 244, 11}
	if got != want {
		t.Errorf("Peaks() = %v, want %v", got, want)
	}
}

func TestPeaksEmptyChannel(t *testing.T) {
	var tbl Table
	tbl[0][3] = 7
	if got := tbl.Peaks(); got != [3]int{} {
		t.Errorf("Peaks() = %v, want all zero", got)
	}
}

func TestRenderTwoBlackPixels(t *testing.T) {
	tbl := Build([]int32{0, 0}, []int32{0, 0}, []int32{0, 0})
	img := Render(&tbl)

	if b := img.Bounds(); b.Dx() != Size || b.Dy() != Size {
		t.Fatalf("bounds = %v, want %dx%d", b, Size, Size)
	}

	blue := Traces[2]
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"rising trace before switch", 0, 126, blue},
		{"rising trace after switch", 1, 127, blue},
		{"grid at origin column", 0, 255, Grid},
		{"baseline trace", 1, 255, blue},
		{"baseline trace end", 255, 255, blue},
		{"background", 1, 126, Background},
		{"vertical grid", 12, 100, Grid},
		{"horizontal grid", 100, 244, Grid},
		{"open area", 5, 5, Background},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRenderEmptyTable(t *testing.T) {
	var tbl Table
	img := Render(&tbl)
	// Every trace lies on the bottom row.
	if got := img.RGBAAt(100, 255); got != Traces[2] {
		t.Errorf("pixel (100,255) = %v, want blue", got)
	}
}

func TestLineClipsAndRounds(t *testing.T) {
	tbl := Table{}
	img := Render(&tbl)
	c := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	line(img, -5, 0, 5, 0, c)
	if got := img.RGBAAt(0, 0); got != c {
		t.Errorf("clipped line missed (0,0): %v", got)
	}

	// Slope 1/2: minor coordinate rounds half up.
	line(img, 50, 50, 54, 52, c)
	for _, p := range [][2]int{{50, 50}, {51, 51}, {52, 51}, {53, 52}, {54, 52}} {
		if got := img.RGBAAt(p[0], p[1]); got != c {
			t.Errorf("pixel %v = %v, want line colour", p, got)
		}
	}
}
