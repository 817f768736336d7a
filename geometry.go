package imagecore

import (
	"github.com/mrjoshuak/go-imagecore/internal/mct"
	"github.com/mrjoshuak/go-imagecore/internal/pixel"
)

// FlipVertical mirrors the image top to bottom.
func (img *Image) FlipVertical() *Image {
	w, h := img.Width(), img.Height()
	out := pixel.New(w, h)
	for c := 0; c < pixel.Channels; c++ {
		src, dst := img.m.Plane(c), out.Plane(c)
		for y := 0; y < h; y++ {
			copy(dst[y*w:(y+1)*w], src[(h-1-y)*w:(h-y)*w])
		}
	}
	return wrap(out)
}

// FlipHorizontal mirrors the image left to right.
func (img *Image) FlipHorizontal() *Image {
	w, h := img.Width(), img.Height()
	out := pixel.New(w, h)
	for c := 0; c < pixel.Channels; c++ {
		src, dst := img.m.Plane(c), out.Plane(c)
		for y := 0; y < h; y++ {
			row := y * w
			for x := 0; x < w; x++ {
				dst[row+x] = src[row+w-1-x]
			}
		}
	}
	return wrap(out)
}

// Component keeps channel c and zeroes the other two. The result is still a
// three-channel image.
func (img *Image) Component(c Channel) (*Image, error) {
	if err := checkChannel(c); err != nil {
		return nil, err
	}
	out := pixel.New(img.Width(), img.Height())
	copy(out.Plane(int(c)), img.m.Plane(int(c)))
	return wrap(out), nil
}

// Merge builds an image whose red, green and blue channels come from the
// matching channel of r, g and b. All three must share one size.
func Merge(r, g, b *Image) (*Image, error) {
	if err := checkSameSize(r, g, b); err != nil {
		return nil, err
	}
	out := pixel.New(r.Width(), r.Height())
	for c, src := range [pixel.Channels]*Image{r, g, b} {
		copy(out.Plane(c), src.m.Plane(c))
	}
	return wrap(out), nil
}

// Intensity replaces each pixel with the truncated mean of its channels.
func (img *Image) Intensity() *Image {
	return img.derive(func(m *pixel.Matrix) {
		mct.Intensity(m.Plane(0), m.Plane(1), m.Plane(2))
	})
}

// Value replaces each pixel with the maximum of its channels.
func (img *Image) Value() *Image {
	return img.derive(func(m *pixel.Matrix) {
		mct.Value(m.Plane(0), m.Plane(1), m.Plane(2))
	})
}

// Brighten adds delta to every sample. A negative delta darkens.
func (img *Image) Brighten(delta int) *Image {
	// Any shift beyond the sample range saturates the same way.
	if delta > pixel.MaxValue {
		delta = pixel.MaxValue + 1
	} else if delta < -pixel.MaxValue {
		delta = -pixel.MaxValue - 1
	}
	return img.derive(func(m *pixel.Matrix) {
		for c := 0; c < pixel.Channels; c++ {
			mct.Shift(m.Plane(c), int32(delta))
		}
	})
}
