// Package imagecore provides an immutable RGB image value and the pixel
// transforms that derive new images from it.
//
// Every transform returns a new *Image and leaves its receiver untouched.
// Sample values are always in [0, 255]; intermediate results are clamped,
// never wrapped.
//
// Basic usage:
//
//	img, err := imagecore.New(pixels) // pixels[x][y][c]
//	if err != nil {
//	    log.Fatal(err)
//	}
//	soft := img.Blur()
//	preview, err := img.Split(50, soft)
//
// Transforms can also be described as values and run through Apply:
//
//	out, err := imagecore.Apply(img, imagecore.LevelsRequest{
//	    Black: 20, Mid: 100, White: 255, Percent: 100,
//	})
package imagecore

import "log/slog"

// Channel identifies one of the three colour channels.
type Channel int

const (
	// Red is channel 0.
	Red Channel = iota
	// Green is channel 1.
	Green
	// Blue is channel 2.
	Blue
)

// String returns the string representation of the channel.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

func (c Channel) valid() bool {
	return c >= Red && c <= Blue
}

// CompressOptions holds the wavelet compression options.
type CompressOptions struct {
	// Parallel runs the forward and inverse transforms of the three
	// channels concurrently. Results are identical either way.
	Parallel bool

	// Logger receives one debug record per call with the chosen threshold
	// and the number of retained coefficients. Nil disables logging.
	Logger *slog.Logger
}

// DefaultCompressOptions returns the default compression options.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		Parallel: true,
	}
}
