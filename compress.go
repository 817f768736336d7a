package imagecore

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mrjoshuak/go-imagecore/internal/dwt"
	"github.com/mrjoshuak/go-imagecore/internal/pixel"
)

// Compress performs lossy Haar wavelet compression and returns the
// reconstructed image.
//
// Each channel is zero padded to the next power-of-two square and
// transformed. The distinct coefficient magnitudes of all three channels are
// pooled and sorted; every coefficient at or below the magnitude found at
// fraction ratio of that pool is discarded before the inverse transform.
// ratio must be in [0, 1]: 0 keeps almost everything and 1 yields a black
// image.
func (img *Image) Compress(ratio float64, opts *CompressOptions) (*Image, error) {
	if err := checkRatio(ratio); err != nil {
		return nil, err
	}
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	w, h := img.Width(), img.Height()
	n := dwt.NextPowerOfTwo(max(w, h))

	var coeffs [pixel.Channels][]float64
	for c := range coeffs {
		// Coefficients are stored x-major: column x of the image is row x
		// of the square.
		buf := make([]float64, n*n)
		plane := img.m.Plane(c)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				buf[x*n+y] = float64(plane[y*w+x])
			}
		}
		coeffs[c] = buf
	}

	perChannel(opts.Parallel, func(c int) { dwt.Forward2D(coeffs[c], n) })

	for c := range coeffs {
		dwt.SnapIntegers(coeffs[c])
	}
	cutoff, kept := dwt.Threshold(coeffs[:], ratio)

	if opts.Logger != nil {
		opts.Logger.Debug("wavelet threshold",
			slog.Int("width", w),
			slog.Int("height", h),
			slog.Int("padded", n),
			slog.Float64("ratio", ratio),
			slog.Float64("cutoff", cutoff),
			slog.Int("kept", kept),
			slog.Int("total", pixel.Channels*n*n))
	}

	perChannel(opts.Parallel, func(c int) { dwt.Inverse2D(coeffs[c], n) })

	out := pixel.New(w, h)
	for c := range coeffs {
		buf, plane := coeffs[c], out.Plane(c)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				plane[y*w+x] = toSample(dwt.Round(buf[x*n+y]))
			}
		}
	}
	return wrap(out), nil
}

// perChannel runs fn for every channel, concurrently when parallel is set.
func perChannel(parallel bool, fn func(c int)) {
	if !parallel {
		for c := 0; c < pixel.Channels; c++ {
			fn(c)
		}
		return
	}
	var g errgroup.Group
	for c := 0; c < pixel.Channels; c++ {
		c := c
		g.Go(func() error {
			fn(c)
			return nil
		})
	}
	_ = g.Wait()
}

// toSample clamps a rounded coefficient into the sample range.
func toSample(v float64) int32 {
	switch {
	case v <= 0:
		return 0
	case v >= pixel.MaxValue:
		return pixel.MaxValue
	}
	return int32(v)
}
