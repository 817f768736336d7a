package imagecore

import (
	"github.com/mrjoshuak/go-imagecore/internal/histogram"
	"github.com/mrjoshuak/go-imagecore/internal/mct"
	"github.com/mrjoshuak/go-imagecore/internal/pixel"
)

// ColorCorrect aligns the histogram peaks of the three channels. Each
// channel's peak is its most frequent value in [11, 244]; every channel is
// shifted by the truncated mean of the peaks minus its own peak. The result
// is previewed over the leftmost percent of the image.
func (img *Image) ColorCorrect(percent float64) (*Image, error) {
	if err := checkPercent(percent); err != nil {
		return nil, err
	}

	table := img.frequencies()
	peaks := table.Peaks()
	avg := (peaks[0] + peaks[1] + peaks[2]) / 3

	corrected := img.derive(func(m *pixel.Matrix) {
		for c := 0; c < pixel.Channels; c++ {
			mct.Shift(m.Plane(c), int32(avg-peaks[c]))
		}
	})
	return img.split(percent, corrected), nil
}

func (img *Image) frequencies() histogram.Table {
	return histogram.Build(img.m.Plane(0), img.m.Plane(1), img.m.Plane(2))
}
