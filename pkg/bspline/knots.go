package bspline

import "fmt"

// KnotVector is a non-decreasing sequence of parameter values.
type KnotVector []float64

// BuildKnots returns the clamped, uniformly spaced knot vector on [0, 1] for
// nPoints control points of the given degree. It has nPoints+degree+1 entries;
// the first and the last degree+1 of them are 0 and 1 respectively.
func BuildKnots(nPoints, degree int) (KnotVector, error) {
	switch {
	case degree < 1:
		return nil, fmt.Errorf("degree must be at least 1, got %d: %w", degree, ErrInvalidInput)
	case nPoints < degree+1:
		return nil, fmt.Errorf("%d points are not enough for degree %d: %w", nPoints, degree, ErrInvalidInput)
	}

	knots := KnotVector(Linspace(0, 1, nPoints+degree+1))
	last := len(knots) - 1
	for i := 0; i <= degree; i++ {
		knots[i] = 0
		knots[last-i] = 1
	}

	return knots, nil
}

// Domain returns the first and the last knot.
func (k KnotVector) Domain() (lo, hi float64) {
	return k[0], k[len(k)-1]
}

// IsNonDecreasing reports whether no knot is smaller than its predecessor.
func (k KnotVector) IsNonDecreasing() bool {
	for i := 1; i < len(k); i++ {
		if k[i] < k[i-1] {
			return false
		}
	}

	return true
}

// IsClamped reports whether the first and the last degree+1 knots repeat the domain bounds.
func (k KnotVector) IsClamped(degree int) bool {
	if len(k) < 2*(degree+1) {
		return false
	}

	lo, hi := k.Domain()
	for i := 0; i <= degree; i++ {
		if k[i] != lo || k[len(k)-1-i] != hi {
			return false
		}
	}

	return true
}

// Linspace returns n values evenly spaced over [lo, hi].
// The last value is exactly hi.
func Linspace(lo, hi float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{lo}
	}

	result := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range result {
		result[i] = lo + float64(i)*step
	}

	result[n-1] = hi

	return result
}
