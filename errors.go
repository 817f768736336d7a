package imagecore

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is returned for parameters outside their domain:
	// percentages, compression ratios, levels control points, channels,
	// kernels and malformed pixel grids.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDimensionMismatch is returned when images that must share a size
	// do not.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrOutOfBounds is returned by Lookup for coordinates outside the image.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrUnknownRequest is returned by Apply for request types it does not
	// handle.
	ErrUnknownRequest = errors.New("unknown request")
)

func checkPercent(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 100 {
		return fmt.Errorf("%w: percent %v outside [0, 100]", ErrInvalidArgument, p)
	}
	return nil
}

func checkRatio(r float64) error {
	if math.IsNaN(r) || r < 0 || r > 1 {
		return fmt.Errorf("%w: compression ratio %v outside [0, 1]", ErrInvalidArgument, r)
	}
	return nil
}

func checkLevels(black, mid, white int) error {
	if black < 0 || white > 255 || mid > white || black > mid {
		return fmt.Errorf("%w: levels %d, %d, %d must satisfy 0 <= black <= mid <= white <= 255",
			ErrInvalidArgument, black, mid, white)
	}
	if black == mid || mid == white {
		return fmt.Errorf("%w: levels %d, %d, %d have coincident control points",
			ErrInvalidArgument, black, mid, white)
	}
	return nil
}

func checkChannel(c Channel) error {
	if !c.valid() {
		return fmt.Errorf("%w: channel %d", ErrInvalidArgument, int(c))
	}
	return nil
}

func checkSameSize(imgs ...*Image) error {
	for _, img := range imgs {
		if img == nil {
			return fmt.Errorf("%w: nil image", ErrInvalidArgument)
		}
	}
	for _, img := range imgs[1:] {
		if !img.m.SameSize(imgs[0].m) {
			return fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch,
				imgs[0].Width(), imgs[0].Height(), img.Width(), img.Height())
		}
	}
	return nil
}
