// Package convolve implements zero-padded 2D convolution over a single
// channel plane.
//
// Weighted sums are truncated toward zero, not rounded; callers clamp the
// result to the sample range afterwards.
package convolve

import (
	"errors"
	"fmt"
)

// ErrInvalidKernel is returned for kernels that are empty, not square, or of
// even size.
var ErrInvalidKernel = errors.New("invalid kernel")

// Kernel is a square, odd-sized weight matrix. Weights[i][j] multiplies the
// sample at horizontal offset i and vertical offset j from the window origin.
type Kernel struct {
	weights [][]float64
}

// NewKernel validates and copies weights into a Kernel.
func NewKernel(weights [][]float64) (Kernel, error) {
	n := len(weights)
	if n == 0 || n%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: size %d is not odd", ErrInvalidKernel, n)
	}
	w := make([][]float64, n)
	for i, row := range weights {
		if len(row) != n {
			return Kernel{}, fmt.Errorf("%w: row %d has %d weights, want %d", ErrInvalidKernel, i, len(row), n)
		}
		w[i] = append([]float64(nil), row...)
	}
	return Kernel{weights: w}, nil
}

// mustKernel is for the fixed kernels below.
func mustKernel(weights [][]float64) Kernel {
	k, err := NewKernel(weights)
	if err != nil {
		panic(err)
	}
	return k
}

// Size returns the side length of the kernel.
func (k Kernel) Size() int { return len(k.weights) }

// Radius returns the zero padding applied on every side, floor(Size/2).
func (k Kernel) Radius() int { return len(k.weights) / 2 }

// Weight returns the weight at (i, j).
func (k Kernel) Weight(i, j int) float64 { return k.weights[i][j] }

// Blur is the 3x3 Gaussian approximation [1 2 1; 2 4 2; 1 2 1] / 16.
var Blur = mustKernel([][]float64{
	{0.0625, 0.125, 0.0625},
	{0.125, 0.25, 0.125},
	{0.0625, 0.125, 0.0625},
})

// Sharpen is the 5x5 unsharp-mask kernel: centre 1, inner ring 0.25, outer
// ring -0.125.
var Sharpen = mustKernel([][]float64{
	{-0.125, -0.125, -0.125, -0.125, -0.125},
	{-0.125, 0.25, 0.25, 0.25, -0.125},
	{-0.125, 0.25, 1, 0.25, -0.125},
	{-0.125, 0.25, 0.25, 0.25, -0.125},
	{-0.125, -0.125, -0.125, -0.125, -0.125},
})

// Apply convolves a row-major width x height plane with k and returns a new
// plane of truncated sums. Samples outside the plane read as zero.
func Apply(src []int32, width, height int, k Kernel) []int32 {
	dst := make([]int32, len(src))
	size := k.Size()
	pad := k.Radius()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sum float64
			// i walks x and j walks y; the accumulation order is fixed so
			// that truncation is reproducible.
			for i := 0; i < size; i++ {
				sx := x + i - pad
				if sx < 0 || sx >= width {
					continue
				}
				for j := 0; j < size; j++ {
					sy := y + j - pad
					if sy < 0 || sy >= height {
						continue
					}
					// The conversion blocks fused multiply-add.
					sum += float64(k.weights[i][j] * float64(src[sy*width+sx]))
				}
			}
			dst[y*width+x] = int32(sum)
		}
	}
	return dst
}
