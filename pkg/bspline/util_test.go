package bspline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const tolerance = 1e-9

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx() cmp.Option {
	return cmpopts.EquateApprox(0, tolerance)
}

func factorial(n int) int {
	if n == 0 {
		return 1
	}

	return n * factorial(n-1)
}

// bezier evaluates the Bernstein form of the curve through points.
// A clamped B-spline with exactly degree+1 points is this curve.
func bezier(t float64, points []Point) Point {
	var result Point
	n := len(points) - 1

	for i, p := range points {
		d := float64(factorial(n)) /
			float64(factorial(i)*factorial(n-i)) *
			math.Pow(t, float64(i)) *
			math.Pow(1-t, float64(n-i))
		result = result.Add(p.Mul(d))
	}

	return result
}

// zigzag returns n deterministic, non-sorted control points.
func zigzag(n int) []Point {
	result := make([]Point, n)
	for i := range result {
		result[i] = Pt(float64((i*37)%11)*50, float64(i%3)*120+float64(i))
	}

	return result
}
