package imagecore

import (
	"fmt"

	"github.com/mrjoshuak/go-imagecore/internal/curve"
	"github.com/mrjoshuak/go-imagecore/internal/pixel"
)

// LevelsAdjust remaps every sample through the quadratic curve that sends
// black to 0, mid to 128 and white to 255, then previews the result over
// the leftmost percent of the image.
//
// The control points must satisfy 0 <= black < mid < white <= 255.
func (img *Image) LevelsAdjust(black, mid, white int, percent float64) (*Image, error) {
	if err := checkLevels(black, mid, white); err != nil {
		return nil, err
	}
	if err := checkPercent(percent); err != nil {
		return nil, err
	}
	q, err := curve.Fit(black, mid, white)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	table := q.Table()
	adjusted := img.derive(func(m *pixel.Matrix) {
		for c := 0; c < pixel.Channels; c++ {
			plane := m.Plane(c)
			for i, v := range plane {
				plane[i] = table[v]
			}
		}
	})
	return img.split(percent, adjusted), nil
}
