package imagecore

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/mrjoshuak/go-imagecore/internal/pixel"
)

// Image is an immutable width x height grid of RGB samples in [0, 255].
//
// *Image implements image.Image, so it can be handed straight to the
// standard encoders.
type Image struct {
	m *pixel.Matrix
}

// PixelFunc returns the red, green and blue samples at (x, y).
type PixelFunc func(x, y int) (r, g, b int)

// wrap clamps m and takes ownership of it.
func wrap(m *pixel.Matrix) *Image {
	m.Clamp()
	return &Image{m: m}
}

// New builds an image from pixels indexed [x][y][channel]. The grid is
// copied. It must be non-empty and rectangular with exactly three samples per
// pixel, each in [0, 255].
func New(pixels [][][]int) (*Image, error) {
	if len(pixels) == 0 || len(pixels[0]) == 0 {
		return nil, fmt.Errorf("%w: empty pixel grid", ErrInvalidArgument)
	}
	width, height := len(pixels), len(pixels[0])
	for x, col := range pixels {
		if len(col) != height {
			return nil, fmt.Errorf("%w: column %d has %d rows, want %d", ErrInvalidArgument, x, len(col), height)
		}
		for y, px := range col {
			if len(px) != pixel.Channels {
				return nil, fmt.Errorf("%w: pixel (%d,%d) has %d channels", ErrInvalidArgument, x, y, len(px))
			}
		}
	}
	return Load(width, height, func(x, y int) (int, int, int) {
		px := pixels[x][y]
		return px[0], px[1], px[2]
	})
}

// Load builds a width x height image by calling src once per pixel.
func Load(width, height int, src PixelFunc) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrInvalidArgument, width, height)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil pixel source", ErrInvalidArgument)
	}
	m := pixel.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := src(x, y)
			for c, v := range [pixel.Channels]int{r, g, b} {
				if v < 0 || v > pixel.MaxValue {
					return nil, fmt.Errorf("%w: sample %d at (%d,%d) channel %d", ErrInvalidArgument, v, x, y, c)
				}
				m.Set(x, y, c, int32(v))
			}
		}
	}
	return &Image{m: m}, nil
}

// FromImage copies the colour samples of src, dropping alpha. Images other
// than *image.RGBA and *image.NRGBA are first converted to RGBA.
func FromImage(src image.Image) (*Image, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	bounds := src.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: empty bounds %v", ErrInvalidArgument, bounds)
	}

	var at func(x, y int) (uint8, uint8, uint8)
	switch img := src.(type) {
	case *image.RGBA:
		at = func(x, y int) (uint8, uint8, uint8) {
			c := img.RGBAAt(x, y)
			return c.R, c.G, c.B
		}
	case *image.NRGBA:
		at = func(x, y int) (uint8, uint8, uint8) {
			c := img.NRGBAAt(x, y)
			return c.R, c.G, c.B
		}
	default:
		rgba := image.NewRGBA(bounds)
		xdraw.Draw(rgba, bounds, src, bounds.Min, xdraw.Src)
		at = func(x, y int) (uint8, uint8, uint8) {
			c := rgba.RGBAAt(x, y)
			return c.R, c.G, c.B
		}
	}

	return Load(bounds.Dx(), bounds.Dy(), func(x, y int) (int, int, int) {
		r, g, b := at(bounds.Min.X+x, bounds.Min.Y+y)
		return int(r), int(g), int(b)
	})
}

// Width returns the number of columns.
func (img *Image) Width() int { return img.m.Width() }

// Height returns the number of rows.
func (img *Image) Height() int { return img.m.Height() }

// Pixel returns the sample at (x, y) on channel c. It panics when the
// coordinate or channel is out of range; use Lookup for a checked read.
func (img *Image) Pixel(x, y int, c Channel) int {
	if !c.valid() {
		panic(fmt.Sprintf("imagecore: channel %d out of range", int(c)))
	}
	return int(img.m.At(x, y, int(c)))
}

// Lookup is Pixel with an error instead of a panic.
func (img *Image) Lookup(x, y int, c Channel) (int, error) {
	if err := checkChannel(c); err != nil {
		return 0, err
	}
	if !img.m.In(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d image", ErrOutOfBounds, x, y, img.Width(), img.Height())
	}
	return int(img.m.At(x, y, int(c))), nil
}

// Pixels returns a copy of the samples indexed [x][y][channel], the same
// layout New accepts.
func (img *Image) Pixels() [][][]int {
	out := make([][][]int, img.Width())
	for x := range out {
		out[x] = make([][]int, img.Height())
		for y := range out[x] {
			out[x][y] = []int{
				int(img.m.At(x, y, 0)),
				int(img.m.At(x, y, 1)),
				int(img.m.At(x, y, 2)),
			}
		}
	}
	return out
}

// Equal reports whether img and o have the same size and samples.
func (img *Image) Equal(o *Image) bool {
	if img == nil || o == nil {
		return img == o
	}
	return img.m.Equal(o.m)
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image. The origin is always (0, 0).
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width(), img.Height())
}

// At implements image.Image. Points outside the bounds are transparent black.
func (img *Image) At(x, y int) color.Color {
	if !img.m.In(x, y) {
		return color.RGBA{}
	}
	return img.rgbaAt(x, y)
}

func (img *Image) rgbaAt(x, y int) color.RGBA {
	return color.RGBA{
		R: uint8(img.m.At(x, y, 0)),
		G: uint8(img.m.At(x, y, 1)),
		B: uint8(img.m.At(x, y, 2)),
		A: 0xff,
	}
}

// ToRGBA returns an opaque copy of img as an *image.RGBA.
func (img *Image) ToRGBA() *image.RGBA {
	w, h := img.Width(), img.Height()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	r, g, b := img.m.Plane(0), img.m.Plane(1), img.m.Plane(2)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := y*w + x
			dst := out.PixOffset(x, y)
			out.Pix[dst+0] = uint8(r[src])
			out.Pix[dst+1] = uint8(g[src])
			out.Pix[dst+2] = uint8(b[src])
			out.Pix[dst+3] = 0xff
		}
	}
	return out
}

// derive runs fn on a copy of the samples and wraps the clamped result.
func (img *Image) derive(fn func(m *pixel.Matrix)) *Image {
	m := img.m.Clone()
	fn(m)
	return wrap(m)
}
