package nurbs

import (
	"fmt"
	"math"

	"github.com/gucio321/nurbs/pkg/bspline"
	"github.com/gucio321/nurbs/pkg/gcb"
)

// GCodeOptions control the G-code export of a curve.
type GCodeOptions struct {
	// Area is the printers drawing area. Zero value means gcb.DefaultArea.
	Area gcb.Area
	// Scale maps curve units to millimeters. 0 scales the curve to fit Area.
	Scale float64
	// Depth is how far the head goes down. 0 means gcb.BaseDepth.
	Depth float64
	// NoLineComments drops all comments, CommentsAbove puts them on their own lines.
	NoLineComments bool
	CommentsAbove  bool
}

// GCode renders the document's curve as one continuous line.
// The curve's bounding box is moved to the origin of the drawing area.
func (d *Document) GCode(opts GCodeOptions) (*gcb.GCodeBuilder, error) {
	curve := d.Curve()
	if curve == nil {
		return nil, fmt.Errorf("%d points with degree %d: %w", len(d.Points), d.Config().Degree, ErrNoCurve)
	}

	area := opts.Area
	if area == (gcb.Area{}) {
		area = gcb.DefaultArea()
	}

	builder := gcb.NewGCodeBuilder(area).Comments(!opts.NoLineComments, opts.CommentsAbove)
	if opts.Depth != 0 {
		builder.SetDepth(opts.Depth)
	}

	lo, hi := bounds(curve)
	scale := opts.Scale
	if scale == 0 {
		scale = fitScale(area, hi.Sub(lo))
	}

	path := make([]gcb.BetterPoint[gcb.AbsolutePos], len(curve))
	for i, p := range curve {
		p = p.Sub(lo).Mul(scale)
		path[i] = gcb.BetterPt(gcb.AbsolutePos(p.X), gcb.AbsolutePos(p.Y))
	}

	builder.Commentf("B-spline of degree %d through %d control points", d.Config().Degree, len(d.Points))

	if err := builder.DrawLines(path...); err != nil {
		return nil, fmt.Errorf("drawing curve: %w", err)
	}

	return builder, nil
}

func bounds(points []bspline.Point) (lo, hi bspline.Point) {
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo = bspline.Pt(min(lo.X, p.X), min(lo.Y, p.Y))
		hi = bspline.Pt(max(hi.X, p.X), max(hi.Y, p.Y))
	}

	return lo, hi
}

// fitScale returns the largest scale keeping a box of the given size inside area.
func fitScale(area gcb.Area, size bspline.Point) float64 {
	w, h := area.Size()

	scale := math.Inf(1)
	if size.X > 0 {
		scale = w / size.X
	}

	if size.Y > 0 {
		scale = min(scale, h/size.Y)
	}

	if math.IsInf(scale, 1) {
		return 1
	}

	return scale
}
