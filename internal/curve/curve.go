// Package curve fits the quadratic tone curve used by levels adjustment.
//
// The curve passes through (black, 0), (mid, 128) and (white, 255). The
// coefficients come from the closed-form Lagrange solution; the system is
// then checked against its Vandermonde form with gonum before use.
package curve

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Output levels the three control points map to.
const (
	blackOut = 0
	midOut   = 128
	whiteOut = 255
)

// maxCond bounds the condition number of an accepted control point system.
const maxCond = 1e15

// ErrDegenerate is returned when the control points do not define a unique
// quadratic.
var ErrDegenerate = errors.New("degenerate control points")

// Quadratic is y = A*x*x + B*x + C.
type Quadratic struct {
	A, B, C float64
}

// Fit returns the quadratic through (b, 0), (m, 128) and (w, 255).
func Fit(b, m, w int) (Quadratic, error) {
	if b == m || m == w || b == w {
		return Quadratic{}, fmt.Errorf("%w: black=%d mid=%d white=%d", ErrDegenerate, b, m, w)
	}

	bb, mm, ww := int64(b), int64(m), int64(w)
	denom := float64((mm - ww) * (bb*bb - bb*(mm+ww) + ww*mm))
	na := float64(midOut*ww - whiteOut*mm - bb*(midOut-whiteOut))
	nb := float64(bb*bb*(midOut-whiteOut) + whiteOut*mm*mm - midOut*ww*ww)
	nc := float64(bb*bb*(whiteOut*mm-midOut*ww) - bb*(whiteOut*mm*mm-midOut*ww*ww))

	q := Quadratic{A: na / denom, B: nb / denom, C: nc / denom}
	if err := q.check(b, m, w); err != nil {
		return Quadratic{}, err
	}
	return q, nil
}

// check verifies q against the Vandermonde system of the control points.
func (q Quadratic) check(b, m, w int) error {
	v := vandermonde(b, m, w)
	if c := mat.Cond(v, 2); c > maxCond || math.IsInf(c, 0) {
		return fmt.Errorf("%w: condition number %g", ErrDegenerate, c)
	}

	var got mat.VecDense
	got.MulVec(v, mat.NewVecDense(3, []float64{q.A, q.B, q.C}))
	tol := 1e-9 * (1 + math.Abs(q.A)*whiteOut*whiteOut + math.Abs(q.B)*whiteOut + math.Abs(q.C))
	want := []float64{blackOut, midOut, whiteOut}
	for i, y := range want {
		if r := math.Abs(got.AtVec(i) - y); r > tol {
			return fmt.Errorf("%w: residual %g at point %d", ErrDegenerate, r, i)
		}
	}
	return nil
}

// Solve computes the same curve as Fit by solving the Vandermonde system
// numerically.
func Solve(b, m, w int) (Quadratic, error) {
	var coef mat.VecDense
	err := coef.SolveVec(vandermonde(b, m, w), mat.NewVecDense(3, []float64{blackOut, midOut, whiteOut}))
	if err != nil {
		return Quadratic{}, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}
	return Quadratic{A: coef.AtVec(0), B: coef.AtVec(1), C: coef.AtVec(2)}, nil
}

func vandermonde(b, m, w int) *mat.Dense {
	row := func(x int) []float64 {
		fx := float64(x)
		return []float64{fx * fx, fx, 1}
	}
	data := make([]float64, 0, 9)
	data = append(data, row(b)...)
	data = append(data, row(m)...)
	data = append(data, row(w)...)
	return mat.NewDense(3, 3, data)
}

// Eval evaluates the curve at x, truncates toward zero and clamps the
// result to [0, 255].
func (q Quadratic) Eval(x int32) int32 {
	// The conversions keep each product rounded on its own.
	y := float64(q.A*float64(x*x)) + float64(q.B*float64(x)) + q.C
	switch {
	case y <= 0:
		return 0
	case y >= whiteOut:
		return whiteOut
	}
	return int32(y)
}

// Table returns Eval for every sample value 0..255.
func (q Quadratic) Table() [256]int32 {
	var t [256]int32
	for i := range t {
		t[i] = q.Eval(int32(i))
	}
	return t
}
