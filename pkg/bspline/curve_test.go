package bspline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalcNoCurve(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		points []Point
	}{
		{"no points", DefaultConfig(), nil},
		{"one point degree 2", DefaultConfig(), []Point{Pt(1, 1)}},
		{"degree+0 points", DefaultConfig().WithDegree(4), zigzag(4)},
		{"degree 0", DefaultConfig().WithDegree(0), zigzag(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, Recalc(tt.cfg, tt.points))
		})
	}
}

func TestRecalcSquare(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100)}
	curve := Recalc(DefaultConfig().WithResolution(5), points)
	require.Len(t, curve, 5)

	diff(t, Pt(0, 0), curve[0], approx())
	diff(t, Pt(0, 100), curve[4], approx())
	// t = 0.5 is an interior knot, the doubled basis mass normalizes away
	diff(t, Pt(100, 50), curve[2], approx())

	for i, p := range curve {
		assert.True(t, p.IsFinite(), "point %d: %v", i, p)
	}

	for _, p := range curve[1:4] {
		assert.Greater(t, p.Distance(curve[0]), 1.0)
		assert.Greater(t, p.Distance(curve[4]), 1.0)
	}
}

func TestRecalcEndpointInterpolation(t *testing.T) {
	for degree := 1; degree <= DegreeMax; degree++ {
		for n := degree + 1; n <= 16; n++ {
			points := zigzag(n)
			curve := Recalc(DefaultConfig().WithDegree(degree), points)
			require.Len(t, curve, DefaultResolution)

			diff(t, points[0], curve[0], approx())
			diff(t, points[n-1], curve[len(curve)-1], approx())
		}
	}
}

func TestRecalcLineSegment(t *testing.T) {
	p0, p1 := Pt(10, 20), Pt(110, -30)
	const resolution = 11

	curve := Recalc(Config{Degree: 1, Resolution: resolution}, []Point{p0, p1})
	require.Len(t, curve, resolution)

	for i, u := range Linspace(0, 1, resolution) {
		diff(t, p0.Add(p1.Sub(p0).Mul(u)), curve[i], approx())
	}
}

func TestRecalcMatchesBezier(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(30, 90), Pt(70, -40), Pt(100, 10)}
	cfg := Config{Degree: 3, Resolution: 21}

	curve := Recalc(cfg, points)
	require.Len(t, curve, 21)

	for i, u := range Linspace(0, 1, 21) {
		diff(t, bezier(u, points), curve[i], approx())
	}
}

func TestRecalcFollowsParameterOrder(t *testing.T) {
	// collinear points with increasing x give a curve whose x increases with t
	points := []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(40, 0), Pt(80, 0)}
	curve := Recalc(DefaultConfig().WithDegree(3), points)
	require.NotNil(t, curve)

	for i := 1; i < len(curve); i++ {
		assert.GreaterOrEqual(t, curve[i].X, curve[i-1].X, "sample %d", i)
	}
}

func TestRecalcIgnoresPointOrderingByX(t *testing.T) {
	points := []Point{Pt(300, 0), Pt(0, 50), Pt(200, 100), Pt(100, 0)}
	curve := Recalc(DefaultConfig(), points)
	require.NotNil(t, curve)

	diff(t, points[0], curve[0], approx())
	diff(t, points[3], curve[len(curve)-1], approx())
}

func TestRecalcIdempotent(t *testing.T) {
	points := zigzag(9)
	cfg := DefaultConfig().WithDegree(5)

	first := Recalc(cfg, points)
	Recalc(cfg.WithDegree(2), zigzag(3))
	second := Recalc(cfg, points)

	assert.Equal(t, first, second)
}

func TestRecalcDoesNotModifyInput(t *testing.T) {
	points := zigzag(6)
	snapshot := append([]Point(nil), points...)

	Recalc(DefaultConfig().WithDegree(3), points)

	assert.Equal(t, snapshot, points)
}

func TestRecalcConcurrent(t *testing.T) {
	cfg := DefaultConfig().WithDegree(4)
	points := zigzag(12)
	want := Recalc(cfg, points)

	var wg sync.WaitGroup
	results := make([]Curve, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Recalc(cfg, points)
		}(i)
	}

	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, DegreeMin, cfg.Degree)
	assert.Equal(t, DefaultResolution, cfg.Resolution)

	changed := cfg.WithDegree(5).WithResolution(7)
	assert.Equal(t, Config{Degree: 5, Resolution: 7}, changed)
	assert.Equal(t, DegreeMin, cfg.Degree, "WithDegree must not modify the receiver")

	knots, err := BuildKnots(3, 2)
	require.NoError(t, err)
	assert.Len(t, Config{Degree: 2}.Samples(knots), DefaultResolution)
	assert.Equal(t, "degree 3, 100 samples", Config{Degree: 3}.String())
}
