package convolve

import (
	"errors"
	"testing"
)

// plane builds a row-major plane from columns, cols[x][y].
func plane(cols [][]int32) []int32 {
	w, h := len(cols), len(cols[0])
	out := make([]int32, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			out[y*w+x] = cols[x][y]
		}
	}
	return out
}

func TestApplyBlurReference(t *testing.T) {
	red := plane([][]int32{
		{0, 10, 20},
		{200, 210, 220},
		{255, 255, 255},
	})
	want := plane([][]int32{
		{39, 57, 46},
		{124, 171, 132},
		{133, 180, 136},
	})

	got := Apply(red, 3, 3, Blur)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestApplySharpenTruncatesBeforeClamp(t *testing.T) {
	red := plane([][]int32{
		{0, 10, 20},
		{200, 210, 220},
		{255, 255, 255},
	})

	got := Apply(red, 3, 3, Sharpen)
	// (0,1): 10 + 0.25*650 - 0.125*765 = 76.875
	if got[1*3+0] != 76 {
		t.Errorf("(0,1) = %d, want 76", got[3])
	}
	// (0,0) goes negative and is left for the caller to clamp.
	if got[0] >= 0 {
		t.Errorf("(0,0) = %d, want a negative unclamped sum", got[0])
	}
}

func TestApplyIdentityKernel(t *testing.T) {
	identity, err := NewKernel([][]float64{
		{0, 0, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	src := []int32{1, 2, 3, 4, 5, 6}
	got := Apply(src, 3, 2, identity)
	for i := range src {
		if got[i] != src[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], src[i])
		}
	}
}

func TestApplyLargerKernelZeroPads(t *testing.T) {
	ones := make([][]float64, 7)
	for i := range ones {
		ones[i] = []float64{1, 1, 1, 1, 1, 1, 1}
	}
	k, err := NewKernel(ones)
	if err != nil {
		t.Fatal(err)
	}
	if k.Radius() != 3 {
		t.Fatalf("Radius = %d, want 3", k.Radius())
	}
	// A 2x2 plane is fully covered by every 7x7 window.
	got := Apply([]int32{1, 2, 3, 4}, 2, 2, k)
	for i, v := range got {
		if v != 10 {
			t.Errorf("index %d: got %d, want 10", i, v)
		}
	}
}

func TestNewKernelRejects(t *testing.T) {
	tests := []struct {
		name    string
		weights [][]float64
	}{
		{"empty", nil},
		{"even", [][]float64{{1, 1}, {1, 1}}},
		{"ragged", [][]float64{{1, 1, 1}, {1, 1}, {1, 1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKernel(tt.weights)
			if !errors.Is(err, ErrInvalidKernel) {
				t.Errorf("NewKernel() error = %v, want ErrInvalidKernel", err)
			}
		})
	}
}

func TestNewKernelCopies(t *testing.T) {
	w := [][]float64{{2}}
	k, err := NewKernel(w)
	if err != nil {
		t.Fatal(err)
	}
	w[0][0] = 5
	if k.Weight(0, 0) != 2 {
		t.Errorf("kernel aliases caller weights")
	}
}

func BenchmarkApplyBlur(b *testing.B) {
	const w, h = 256, 256
	src := make([]int32, w*h)
	for i := range src {
		src[i] = int32(i % 256)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Apply(src, w, h, Blur)
	}
}
