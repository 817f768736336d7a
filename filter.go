package imagecore

import (
	"fmt"

	"github.com/mrjoshuak/go-imagecore/internal/convolve"
	"github.com/mrjoshuak/go-imagecore/internal/pixel"
)

// Kernel is a square, odd-sized convolution kernel. Weight (i, j) multiplies
// the sample i columns right of and j rows below the window's top-left
// corner.
type Kernel struct {
	k convolve.Kernel
}

// NewKernel validates and copies weights, indexed [i][j].
func NewKernel(weights [][]float64) (Kernel, error) {
	k, err := convolve.NewKernel(weights)
	if err != nil {
		return Kernel{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return Kernel{k: k}, nil
}

// Size returns the side length of the kernel.
func (k Kernel) Size() int { return k.k.Size() }

// Blur applies the 3x3 Gaussian kernel.
func (img *Image) Blur() *Image {
	return img.convolve(convolve.Blur)
}

// Sharpen applies the 5x5 sharpening kernel.
func (img *Image) Sharpen() *Image {
	return img.convolve(convolve.Sharpen)
}

// Convolve applies k to every channel. Samples beyond the edges read as
// zero and weighted sums are truncated toward zero before clamping.
func (img *Image) Convolve(k Kernel) (*Image, error) {
	if k.Size() == 0 {
		return nil, fmt.Errorf("%w: zero kernel", ErrInvalidArgument)
	}
	return img.convolve(k.k), nil
}

func (img *Image) convolve(k convolve.Kernel) *Image {
	w, h := img.Width(), img.Height()
	out := pixel.New(w, h)
	for c := 0; c < pixel.Channels; c++ {
		copy(out.Plane(c), convolve.Apply(img.m.Plane(c), w, h, k))
	}
	return wrap(out)
}
