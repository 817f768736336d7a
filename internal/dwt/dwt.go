// Package dwt implements the orthonormal 2D Haar wavelet transform used for
// lossy image compression, and the coefficient thresholding that drives it.
//
// Coefficients live in a square n x n row-major float64 buffer where n is a
// power of two. Each level of the forward transform first processes every
// row, then every column, of the top-left c x c block, halving c until it
// reaches 1. The inverse walks the levels in the opposite order, columns
// before rows.
//
// Every intermediate value whose magnitude is at most SnapEpsilon is forced
// to zero.
package dwt

import (
	"math"
	"sort"
	"sync"
)

// SnapEpsilon is the magnitude at or below which transform outputs become 0.
const SnapEpsilon = 0.1

// Buffer pool for line scratch space to reduce allocations
var floatBufPool = sync.Pool{
	New: func() interface{} {
		buf := make([]float64, 4096)
		return &buf
	},
}

// getFloatBuf returns a buffer of at least size n from the pool.
func getFloatBuf(n int) []float64 {
	bp := floatBufPool.Get().(*[]float64)
	buf := *bp
	if cap(buf) < n {
		buf = make([]float64, n)
		*bp = buf
	}
	return buf[:n]
}

// putFloatBuf returns a buffer to the pool.
func putFloatBuf(buf []float64) {
	bp := &buf
	floatBufPool.Put(bp)
}

// NextPowerOfTwo returns the smallest power of two that is >= n. It returns 1
// for n <= 1.
func NextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func snap(v float64) float64 {
	if math.Abs(v) <= SnapEpsilon {
		return 0
	}
	return v
}

// forward1D replaces data[:length] with its pairwise averages followed by its
// pairwise differences. length must be even.
func forward1D(data, tmp []float64, length int) {
	half := length / 2
	for i := 0; i < half; i++ {
		a, b := data[2*i], data[2*i+1]
		tmp[i] = snap((a + b) / math.Sqrt2)
		tmp[half+i] = snap((a - b) / math.Sqrt2)
	}
	copy(data[:length], tmp[:length])
}

// inverse1D undoes forward1D, interleaving the reconstructed pairs.
func inverse1D(data, tmp []float64, length int) {
	half := length / 2
	for i := 0; i < half; i++ {
		a, b := data[i], data[half+i]
		tmp[2*i] = snap((a + b) / math.Sqrt2)
		tmp[2*i+1] = snap((a - b) / math.Sqrt2)
	}
	copy(data[:length], tmp[:length])
}

// Forward2D performs the multi-level forward Haar transform in place on an
// n x n row-major buffer. n must be a power of two.
func Forward2D(data []float64, n int) {
	if n < 2 {
		return
	}
	line := getFloatBuf(n)
	tmp := getFloatBuf(n)
	defer putFloatBuf(line)
	defer putFloatBuf(tmp)

	for c := n; c > 1; c /= 2 {
		for i := 0; i < c; i++ {
			forward1D(data[i*n:i*n+c], tmp, c)
		}
		for j := 0; j < c; j++ {
			gatherColumn(data, line, n, j, c)
			forward1D(line, tmp, c)
			scatterColumn(data, line, n, j, c)
		}
	}
}

// Inverse2D performs the multi-level inverse Haar transform in place on an
// n x n row-major buffer. Values are left unrounded.
func Inverse2D(data []float64, n int) {
	if n < 2 {
		return
	}
	line := getFloatBuf(n)
	tmp := getFloatBuf(n)
	defer putFloatBuf(line)
	defer putFloatBuf(tmp)

	for c := 2; c <= n; c *= 2 {
		for j := 0; j < c; j++ {
			gatherColumn(data, line, n, j, c)
			inverse1D(line, tmp, c)
			scatterColumn(data, line, n, j, c)
		}
		for i := 0; i < c; i++ {
			inverse1D(data[i*n:i*n+c], tmp, c)
		}
	}
}

func gatherColumn(data, line []float64, n, j, length int) {
	for i := 0; i < length; i++ {
		line[i] = data[i*n+j]
	}
}

func scatterColumn(data, line []float64, n, j, length int) {
	for i := 0; i < length; i++ {
		data[i*n+j] = line[i]
	}
}

// Round rounds half up, floor(v + 0.5).
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// SnapIntegers replaces every value within SnapEpsilon of its rounded value
// with the rounded value.
func SnapIntegers(data []float64) {
	for i, v := range data {
		r := Round(v)
		if math.Abs(r-v) < SnapEpsilon {
			data[i] = r
		}
	}
}

// Threshold chooses a cutoff from the pooled distinct magnitudes of every
// plane and zeroes each coefficient whose magnitude is at or below it.
//
// ratio is the fraction of distinct magnitudes to discard, in [0, 1]. The
// cutoff is the magnitude at index floor(len*ratio) of the sorted pool, or
// the largest magnitude when ratio is 1. It returns the cutoff and the
// number of coefficients that survived.
func Threshold(planes [][]float64, ratio float64) (cutoff float64, kept int) {
	seen := make(map[float64]struct{})
	for _, p := range planes {
		for _, v := range p {
			seen[math.Abs(v)] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return 0, 0
	}

	pool := make([]float64, 0, len(seen))
	for v := range seen {
		pool = append(pool, v)
	}
	sort.Float64s(pool)

	idx := int(float64(len(pool)) * ratio)
	if ratio >= 1 || idx >= len(pool) {
		idx = len(pool) - 1
	}
	cutoff = pool[idx]

	for _, p := range planes {
		for i, v := range p {
			if math.Abs(v) <= cutoff {
				p[i] = 0
			} else {
				kept++
			}
		}
	}
	return cutoff, kept
}
