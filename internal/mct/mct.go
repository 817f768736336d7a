// Package mct implements per-pixel transforms that mix the three colour
// channels of an image:
// - 3x3 linear colour matrices (greyscale luma, sepia, caller supplied)
// - intensity (channel mean) and value (channel max) reductions
//
// All transforms work in place on three parallel component planes and
// truncate toward zero. Clamping is left to the caller.
package mct

// Matrix is a 3x3 colour matrix applied as out[c] = sum_k M[c][k] * in[k].
type Matrix [3][3]float64

// Luma maps every channel to the Rec. 709 luma of the pixel.
var Luma = Matrix{
	{0.2126, 0.7152, 0.0722},
	{0.2126, 0.7152, 0.0722},
	{0.2126, 0.7152, 0.0722},
}

// Sepia is the classic sepia-tone matrix.
var Sepia = Matrix{
	{0.393, 0.769, 0.189},
	{0.349, 0.686, 0.168},
	{0.272, 0.534, 0.131},
}

// Apply transforms the r, g, b planes in place. Each output sample is the
// truncated weighted sum of the three input samples at the same index.
func (m *Matrix) Apply(r, g, b []int32) {
	for i := range r {
		in0 := float64(r[i])
		in1 := float64(g[i])
		in2 := float64(b[i])

		r[i] = m.row(0, in0, in1, in2)
		g[i] = m.row(1, in0, in1, in2)
		b[i] = m.row(2, in0, in1, in2)
	}
}

// row evaluates one output channel. The explicit conversions keep each
// product rounded on its own so results do not depend on FMA support.
func (m *Matrix) row(c int, in0, in1, in2 float64) int32 {
	sum := float64(m[c][0]*in0) + float64(m[c][1]*in1) + float64(m[c][2]*in2)
	return int32(sum)
}

// Intensity replaces every channel with the integer mean of the three
// channels at that index.
func Intensity(r, g, b []int32) {
	for i := range r {
		avg := (r[i] + g[i] + b[i]) / 3
		r[i], g[i], b[i] = avg, avg, avg
	}
}

// Value replaces every channel with the largest of the three channels at
// that index.
func Value(r, g, b []int32) {
	for i := range r {
		v := r[i]
		if g[i] > v {
			v = g[i]
		}
		if b[i] > v {
			v = b[i]
		}
		r[i], g[i], b[i] = v, v, v
	}
}

// Shift adds delta to every sample of data.
func Shift(data []int32, delta int32) {
	if delta == 0 {
		return
	}
	for i := range data {
		data[i] += delta
	}
}
