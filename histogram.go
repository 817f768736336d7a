package imagecore

import (
	"github.com/mrjoshuak/go-imagecore/internal/histogram"
)

// FrequencyTable counts sample occurrences, indexed [channel][value].
type FrequencyTable [3][256]int

// Frequencies counts how often each sample value occurs in each channel.
func (img *Image) Frequencies() FrequencyTable {
	return FrequencyTable(img.frequencies())
}

// Histogram renders the frequency table as a 256x256 line chart: a white
// background, a light grey grid every twentieth of the axis, and one red,
// green and blue trace scaled so the largest bin spans the full height.
func (img *Image) Histogram() *Image {
	table := img.frequencies()
	chart, err := FromImage(histogram.Render(&table))
	if err != nil {
		// The chart has fixed non-empty bounds.
		panic(err)
	}
	return chart
}
