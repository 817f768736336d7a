package curve

import (
	"errors"
	"math"
	"testing"
)

func TestFitPassesThroughControlPoints(t *testing.T) {
	tests := []struct {
		name    string
		b, m, w int
	}{
		{"default", 0, 128, 255},
		{"reference", 20, 100, 255},
		{"narrow", 100, 120, 140},
		{"crowded top", 253, 254, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Fit(tt.b, tt.m, tt.w)
			if err != nil {
				t.Fatalf("Fit() error = %v", err)
			}
			pts := []struct {
				x int
				y float64
			}{{tt.b, 0}, {tt.m, 128}, {tt.w, 255}}
			for _, p := range pts {
				x := float64(p.x)
				if got := q.A*x*x + q.B*x + q.C; math.Abs(got-p.y) > 1e-6 {
					t.Errorf("curve(%d) = %v, want %v", p.x, got, p.y)
				}
			}
		})
	}
}

func TestFitMatchesSolve(t *testing.T) {
	for _, pts := range [][3]int{{0, 128, 255}, {20, 100, 255}, {5, 60, 200}, {0, 1, 2}} {
		fit, err := Fit(pts[0], pts[1], pts[2])
		if err != nil {
			t.Fatalf("Fit%v error = %v", pts, err)
		}
		sol, err := Solve(pts[0], pts[1], pts[2])
		if err != nil {
			t.Fatalf("Solve%v error = %v", pts, err)
		}
		for x := int32(0); x <= 255; x++ {
			if a, b := fit.Eval(x), sol.Eval(x); a-b > 1 || b-a > 1 {
				t.Errorf("%v at %d: Fit=%d Solve=%d", pts, x, a, b)
			}
		}
	}
}

func TestFitDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		b, m, w int
	}{
		{"black equals mid", 50, 50, 200},
		{"mid equals white", 0, 200, 200},
		{"all equal", 10, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fit(tt.b, tt.m, tt.w)
			if !errors.Is(err, ErrDegenerate) {
				t.Errorf("Fit() error = %v, want ErrDegenerate", err)
			}
		})
	}
}

func TestEvalReference(t *testing.T) {
	q, err := Fit(20, 100, 255)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in, want int32
	}{
		{0, 0},
		{10, 0},
		{20, 0},
		{30, 18},
		{40, 35},
		{50, 52},
		{60, 69},
		{70, 84},
		{90, 114},
		{110, 141},
		{120, 153},
		{130, 165},
		{150, 186},
		{155, 191},
		{170, 205},
		{180, 213},
		{190, 221},
		{200, 228},
		{210, 234},
		{220, 240},
		{255, 255},
	}

	table := q.Table()
	for _, tt := range tests {
		if got := q.Eval(tt.in); got != tt.want {
			t.Errorf("Eval(%d) = %d, want %d", tt.in, got, tt.want)
		}
		if table[tt.in] != tt.want {
			t.Errorf("Table()[%d] = %d, want %d", tt.in, table[tt.in], tt.want)
		}
	}
}

func TestEvalClamps(t *testing.T) {
	q := Quadratic{A: 0, B: 2, C: -100}
	if got := q.Eval(10); got != 0 {
		t.Errorf("Eval(10) = %d, want 0", got)
	}
	if got := q.Eval(250); got != 255 {
		t.Errorf("Eval(250) = %d, want 255", got)
	}
	if got := q.Eval(100); got != 100 {
		t.Errorf("Eval(100) = %d, want 100", got)
	}
}
