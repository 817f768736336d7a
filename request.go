package imagecore

import (
	"fmt"
)

// Request describes one transform. The set of implementations is closed;
// Apply handles every one of them.
//
// Requests that carry a Percent produce a preview: the transform covers the
// leftmost Percent of the width and the rest shows the source. Use 100 for
// the full result.
type Request interface {
	// Name returns a short identifier for the transform.
	Name() string

	validate() error
}

// FlipVerticalRequest mirrors the image top to bottom.
type FlipVerticalRequest struct{}

// FlipHorizontalRequest mirrors the image left to right.
type FlipHorizontalRequest struct{}

// ComponentRequest keeps a single channel.
type ComponentRequest struct {
	Channel Channel
}

// BrightenRequest adds Delta to every sample.
type BrightenRequest struct {
	Delta int
}

// IntensityRequest replaces each pixel with its channel mean.
type IntensityRequest struct{}

// ValueRequest replaces each pixel with its channel maximum.
type ValueRequest struct{}

// BlurRequest applies the Gaussian blur kernel.
type BlurRequest struct {
	Percent float64
}

// SharpenRequest applies the sharpening kernel.
type SharpenRequest struct {
	Percent float64
}

// GreyscaleRequest applies the luma matrix.
type GreyscaleRequest struct {
	Percent float64
}

// SepiaRequest applies the sepia matrix.
type SepiaRequest struct {
	Percent float64
}

// LevelsRequest adjusts levels through three control points.
type LevelsRequest struct {
	Black, Mid, White int
	Percent           float64
}

// ColorCorrectRequest aligns the channel histogram peaks.
type ColorCorrectRequest struct {
	Percent float64
}

// CompressRequest performs wavelet compression discarding Percent of the
// distinct coefficient magnitudes. Options may be nil.
type CompressRequest struct {
	Percent float64
	Options *CompressOptions
}

// HistogramRequest renders the frequency chart.
type HistogramRequest struct{}

// MergeRequest combines the red channel of Red, the green channel of Green
// and the blue channel of Blue. All three must match the size of the image
// the request is applied to.
type MergeRequest struct {
	Red, Green, Blue *Image
}

func (FlipVerticalRequest) Name() string   { return "vertical-flip" }
func (FlipHorizontalRequest) Name() string { return "horizontal-flip" }
func (r ComponentRequest) Name() string    { return r.Channel.String() + "-component" }
func (BrightenRequest) Name() string       { return "brighten" }
func (IntensityRequest) Name() string      { return "intensity-component" }
func (ValueRequest) Name() string          { return "value-component" }
func (BlurRequest) Name() string           { return "blur" }
func (SharpenRequest) Name() string        { return "sharpen" }
func (GreyscaleRequest) Name() string      { return "greyscale" }
func (SepiaRequest) Name() string          { return "sepia" }
func (LevelsRequest) Name() string         { return "levels-adjust" }
func (ColorCorrectRequest) Name() string   { return "color-correct" }
func (CompressRequest) Name() string       { return "compress" }
func (HistogramRequest) Name() string      { return "histogram" }
func (MergeRequest) Name() string          { return "rgb-combine" }

func (FlipVerticalRequest) validate() error   { return nil }
func (FlipHorizontalRequest) validate() error { return nil }
func (r ComponentRequest) validate() error    { return checkChannel(r.Channel) }
func (BrightenRequest) validate() error       { return nil }
func (IntensityRequest) validate() error      { return nil }
func (ValueRequest) validate() error          { return nil }
func (r BlurRequest) validate() error         { return checkPercent(r.Percent) }
func (r SharpenRequest) validate() error      { return checkPercent(r.Percent) }
func (r GreyscaleRequest) validate() error    { return checkPercent(r.Percent) }
func (r SepiaRequest) validate() error        { return checkPercent(r.Percent) }
func (r ColorCorrectRequest) validate() error { return checkPercent(r.Percent) }
func (r CompressRequest) validate() error     { return checkPercent(r.Percent) }
func (HistogramRequest) validate() error      { return nil }

func (r LevelsRequest) validate() error {
	if err := checkLevels(r.Black, r.Mid, r.White); err != nil {
		return err
	}
	return checkPercent(r.Percent)
}

func (r MergeRequest) validate() error {
	return checkSameSize(r.Red, r.Green, r.Blue)
}

// Apply validates req and runs it on img. Invalid requests fail before any
// pixel work is done.
func Apply(img *Image, req Request) (*Image, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidArgument)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrUnknownRequest)
	}
	if err := req.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", req.Name(), err)
	}

	switch r := req.(type) {
	case FlipVerticalRequest:
		return img.FlipVertical(), nil
	case FlipHorizontalRequest:
		return img.FlipHorizontal(), nil
	case ComponentRequest:
		return img.Component(r.Channel)
	case BrightenRequest:
		return img.Brighten(r.Delta), nil
	case IntensityRequest:
		return img.Intensity(), nil
	case ValueRequest:
		return img.Value(), nil
	case BlurRequest:
		return img.split(r.Percent, img.Blur()), nil
	case SharpenRequest:
		return img.split(r.Percent, img.Sharpen()), nil
	case GreyscaleRequest:
		return img.split(r.Percent, img.Greyscale()), nil
	case SepiaRequest:
		return img.split(r.Percent, img.Sepia()), nil
	case LevelsRequest:
		return img.LevelsAdjust(r.Black, r.Mid, r.White, r.Percent)
	case ColorCorrectRequest:
		return img.ColorCorrect(r.Percent)
	case CompressRequest:
		return img.Compress(r.Percent/100, r.Options)
	case HistogramRequest:
		return img.Histogram(), nil
	case MergeRequest:
		if err := checkSameSize(img, r.Red); err != nil {
			return nil, fmt.Errorf("%s: %w", req.Name(), err)
		}
		return Merge(r.Red, r.Green, r.Blue)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownRequest, req)
	}
}
