package imagecore

import (
	"github.com/mrjoshuak/go-imagecore/internal/pixel"
)

// Split composes a preview of transformed over img. Columns left of
// int(percent*width)/100 come from transformed; the rest come from img.
// Split(0, t) equals img and Split(100, t) equals t.
func (img *Image) Split(percent float64, transformed *Image) (*Image, error) {
	if err := checkPercent(percent); err != nil {
		return nil, err
	}
	if err := checkSameSize(img, transformed); err != nil {
		return nil, err
	}
	return img.split(percent, transformed), nil
}

// split assumes validated arguments.
func (img *Image) split(percent float64, transformed *Image) *Image {
	w, h := img.Width(), img.Height()
	boundary := int(percent*float64(w)) / 100

	switch {
	case boundary <= 0:
		return img
	case boundary >= w:
		return transformed
	}

	out := pixel.New(w, h)
	for c := 0; c < pixel.Channels; c++ {
		left, right, dst := transformed.m.Plane(c), img.m.Plane(c), out.Plane(c)
		for y := 0; y < h; y++ {
			row := y * w
			copy(dst[row:row+boundary], left[row:row+boundary])
			copy(dst[row+boundary:row+w], right[row+boundary:row+w])
		}
	}
	return wrap(out)
}
