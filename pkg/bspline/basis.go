package bspline

import "fmt"

// BasisTable holds N_{i,degree}(t) for a batch of samples t and
// every control point index i, one row per sample.
type BasisTable struct {
	values  []float64
	nPoints int
}

// Samples returns the number of rows.
func (b BasisTable) Samples() int {
	if b.nPoints == 0 {
		return 0
	}

	return len(b.values) / b.nPoints
}

// Points returns the number of basis functions per row.
func (b BasisTable) Points() int {
	return b.nPoints
}

// At returns N_{i,degree} at the given sample.
func (b BasisTable) At(sample, i int) float64 {
	return b.values[sample*b.nPoints+i]
}

// Row returns the basis values of one sample. The slice aliases the table.
func (b BasisTable) Row(sample int) []float64 {
	return b.values[sample*b.nPoints : (sample+1)*b.nPoints]
}

// Sum returns the total basis mass at the given sample.
func (b BasisTable) Sum(sample int) float64 {
	var sum float64
	for _, v := range b.Row(sample) {
		sum += v
	}

	return sum
}

// EvaluateBasis computes N_{i,degree}(t) for every t in samples and every i in [0, nPoints)
// using the Cox-de Boor recursion.
//
// Degree 0 spans are closed intervals, so a sample lying exactly on an interior
// knot activates both adjoining spans. Recalc normalizes by the basis sum, which
// absorbs the extra mass.
//
// EvaluateBasis panics if knots is too short for nPoints or if it ever produces
// a negative basis value: both mean the knot vector was built wrong.
func EvaluateBasis(knots KnotVector, degree int, samples []float64, nPoints int) BasisTable {
	spans := len(knots) - 1
	if nPoints < 1 || spans-degree < nPoints {
		panic(fmt.Sprintf("bspline: %d knots can't carry %d points of degree %d", len(knots), nPoints, degree))
	}

	table := BasisTable{
		values:  make([]float64, len(samples)*nPoints),
		nPoints: nPoints,
	}

	// two rolling rows: the previous recursion level and the one being computed
	prev := make([]float64, spans)
	cur := make([]float64, spans)

	for s, t := range samples {
		for i := 0; i < spans; i++ {
			prev[i] = 0
			if knots[i] <= t && t <= knots[i+1] {
				prev[i] = 1
			}
		}

		for n := 1; n <= degree; n++ {
			for i := 0; i < spans-n; i++ {
				cur[i] = blendLeft(knots, i, n, t)*prev[i] + blendRight(knots, i, n, t)*prev[i+1]
			}

			prev, cur = cur, prev
		}

		row := table.Row(s)
		for i := range row {
			if prev[i] < 0 {
				panic(fmt.Sprintf("bspline: negative basis value N[%d](%g) = %g", i, t, prev[i]))
			}

			row[i] = prev[i]
		}
	}

	return table
}

// blendLeft is (t - k[i]) / (k[i+n] - k[i]), or 0 on a degenerate span.
func blendLeft(knots KnotVector, i, n int, t float64) float64 {
	denom := knots[i+n] - knots[i]
	if denom == 0 {
		return 0
	}

	return (t - knots[i]) / denom
}

// blendRight is (k[i+n+1] - t) / (k[i+n+1] - k[i+1]), or 0 on a degenerate span.
func blendRight(knots KnotVector, i, n int, t float64) float64 {
	denom := knots[i+n+1] - knots[i+1]
	if denom == 0 {
		return 0
	}

	return (knots[i+n+1] - t) / denom
}
