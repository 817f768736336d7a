package imagecore

import (
	"github.com/mrjoshuak/go-imagecore/internal/mct"
	"github.com/mrjoshuak/go-imagecore/internal/pixel"
)

// ColorMatrix maps a pixel as out[c] = sum over k of M[c][k] * in[k].
type ColorMatrix [3][3]float64

// Greyscale sets every channel to the Rec. 709 luma of the pixel.
func (img *Image) Greyscale() *Image {
	return img.ColorTransform(ColorMatrix(mct.Luma))
}

// Sepia applies the sepia-tone matrix.
func (img *Image) Sepia() *Image {
	return img.ColorTransform(ColorMatrix(mct.Sepia))
}

// ColorTransform applies m to every pixel, truncating each weighted sum
// toward zero before clamping.
func (img *Image) ColorTransform(m ColorMatrix) *Image {
	mm := mct.Matrix(m)
	return img.derive(func(p *pixel.Matrix) {
		mm.Apply(p.Plane(0), p.Plane(1), p.Plane(2))
	})
}
