// Package pixel implements the owned three-channel pixel grid that backs
// every image value.
//
// Samples are stored planar, one row-major plane per channel, the same way
// component data is laid out during transform work. A Matrix is mutable; the
// caller is expected to finish all writes (and Clamp) before sharing it.
package pixel

// Channels is the fixed number of colour channels in a Matrix.
const Channels = 3

// MaxValue is the largest sample value after clamping.
const MaxValue = 255

// Matrix is a width x height grid of three int32 planes.
type Matrix struct {
	width  int
	height int
	planes [Channels][]int32
}

// New allocates a zeroed matrix.
func New(width, height int) *Matrix {
	m := &Matrix{width: width, height: height}
	for c := range m.planes {
		m.planes[c] = make([]int32, width*height)
	}
	return m
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.height }

// In reports whether (x, y) lies inside the grid.
func (m *Matrix) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// SameSize reports whether m and o have identical dimensions.
func (m *Matrix) SameSize(o *Matrix) bool {
	return m.width == o.width && m.height == o.height
}

// At returns the sample at (x, y) on channel c. It panics when the
// coordinate is outside the grid.
func (m *Matrix) At(x, y, c int) int32 {
	return m.planes[c][m.offset(x, y)]
}

// Set stores v at (x, y) on channel c without clamping.
func (m *Matrix) Set(x, y, c int, v int32) {
	m.planes[c][m.offset(x, y)] = v
}

// Plane returns the backing slice for channel c. Index (x, y) lives at
// y*Width()+x.
func (m *Matrix) Plane(c int) []int32 {
	return m.planes[c]
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{width: m.width, height: m.height}
	for c := range m.planes {
		out.planes[c] = make([]int32, len(m.planes[c]))
		copy(out.planes[c], m.planes[c])
	}
	return out
}

// Clamp restricts every sample to [0, MaxValue] in place.
func (m *Matrix) Clamp() {
	for c := range m.planes {
		ClampSlice(m.planes[c])
	}
}

// Equal reports whether two matrices have the same size and samples.
func (m *Matrix) Equal(o *Matrix) bool {
	if !m.SameSize(o) {
		return false
	}
	for c := range m.planes {
		a, b := m.planes[c], o.planes[c]
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}
	return true
}

func (m *Matrix) offset(x, y int) int {
	if !m.In(x, y) {
		panic("pixel: coordinate out of range")
	}
	return y*m.width + x
}

// Clamp8 clamps a single value to [0, MaxValue].
func Clamp8(v int32) int32 {
	if v < 0 {
		return 0
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}

// ClampSlice clamps every element of data to [0, MaxValue].
func ClampSlice(data []int32) {
	for i, v := range data {
		data[i] = Clamp8(v)
	}
}
