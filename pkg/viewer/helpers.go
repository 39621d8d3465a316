package viewer

import (
	"image/color"
	"math"

	"github.com/gucio321/nurbs/pkg/bspline"
)

// GreenToRedHSV maps v ∈ [0, 1] to a hue going from green to red.
func GreenToRedHSV(v float64) color.RGBA {
	v = min(1, max(0, v))

	// Interpolate hue from 120 (green) to 0 (red)
	hue := (1.0 - v) * 120.0
	return HSVtoRGB(hue, 1.0, 0.85)
}

// HSVtoRGB maps h ∈ [0, 360), s, v ∈ [0,1] to an RGBA color
func HSVtoRGB(h, s, v float64) color.RGBA {
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	case h < 360:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: uint8(math.Round((r + m) * 255)),
		G: uint8(math.Round((g + m) * 255)),
		B: uint8(math.Round((b + m) * 255)),
		A: 255,
	}
}

// segmentColor colors segment i of a curve with n points by its position along the curve.
func segmentColor(i, n int) color.RGBA {
	if n < 2 {
		return GreenToRedHSV(0)
	}

	return GreenToRedHSV(float64(i) / float64(n-1))
}

// fit returns the scale and offset mapping the bounding box of points
// into a w×h area with the given margin, y-up, preserving aspect ratio.
func fit(points []bspline.Point, w, h, margin float64) (scale float64, lo bspline.Point) {
	if len(points) == 0 {
		return 1, bspline.Point{}
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = bspline.Pt(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = bspline.Pt(max(hi.X, p.X), max(hi.Y, p.Y))
	}

	size := hi.Sub(lo)
	scale = math.Inf(1)
	if size.X > 0 {
		scale = (w - 2*margin) / size.X
	}

	if size.Y > 0 {
		scale = min(scale, (h-2*margin)/size.Y)
	}

	if math.IsInf(scale, 1) {
		scale = 1
	}

	return scale, lo
}
