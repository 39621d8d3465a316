package bspline

import "fmt"

const (
	// DegreeMin and DegreeMax bound the degree an editor lets the user pick.
	// Recalc itself accepts any degree >= 1.
	DegreeMin = 2
	DegreeMax = 8
	// DefaultResolution is the number of points a curve is sampled at.
	DefaultResolution = 100
)

// Curve is a sampled B-spline. A nil Curve means there were too few control points.
type Curve []Point

// Config is the immutable configuration of a curve evaluation.
// Change it with WithDegree/WithResolution and pass the result to Recalc.
type Config struct {
	Degree     int `json:"degree" yaml:"degree"`
	Resolution int `json:"resolution" yaml:"resolution"`
}

// DefaultConfig returns the lowest editable degree at the default resolution.
func DefaultConfig() Config {
	return Config{
		Degree:     DegreeMin,
		Resolution: DefaultResolution,
	}
}

// WithDegree returns a copy of c using degree d.
func (c Config) WithDegree(d int) Config {
	c.Degree = d
	return c
}

// WithResolution returns a copy of c sampling n points.
func (c Config) WithResolution(n int) Config {
	c.Resolution = n
	return c
}

func (c Config) resolution() int {
	if c.Resolution <= 0 {
		return DefaultResolution
	}

	return c.Resolution
}

func (c Config) String() string {
	return fmt.Sprintf("degree %d, %d samples", c.Degree, c.resolution())
}

// Samples returns the parameter values Recalc evaluates for the given knot vector.
func (c Config) Samples(knots KnotVector) []float64 {
	lo, hi := knots.Domain()
	return Linspace(lo, hi, c.resolution())
}

// Recalc samples the clamped uniform B-spline of degree c.Degree defined by points.
// It returns nil when there are fewer than c.Degree+1 points.
//
// Every curve point is the basis-weighted sum of the control points divided by
// the basis sum at that sample, so the curve starts at points[0] and ends at
// points[len(points)-1].
func Recalc(c Config, points []Point) Curve {
	if c.Degree < 1 || len(points) < c.Degree+1 {
		return nil
	}

	knots, err := BuildKnots(len(points), c.Degree)
	if err != nil {
		// unreachable: the point count was checked above
		panic(err)
	}

	samples := c.Samples(knots)
	basis := EvaluateBasis(knots, c.Degree, samples, len(points))

	result := make(Curve, len(samples))
	for s := range samples {
		var weighted Point
		var sum float64
		for i, b := range basis.Row(s) {
			weighted = weighted.Add(points[i].Mul(b))
			sum += b
		}

		result[s] = weighted.Div(sum)
	}

	return result
}
