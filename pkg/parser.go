package nurbs

import (
	"fmt"
	"strings"

	"github.com/kpango/glg"
	"github.com/rustyoz/svg"

	"github.com/gucio321/nurbs/pkg/bspline"
)

// ParseSVG takes control points from the drawing instructions of an SVG image:
// every move, line and curve end point, in document order.
// SVG is y-down, so the result is mirrored vertically inside its bounding box.
func ParseSVG(data []byte, scale float64) ([]bspline.Point, error) {
	// 1.0: unmarshal xml
	// svg crashes on relative paths placed directly under the root element.
	image, err := svg.ParseSvg(groupRoot(string(data)), "", scale)
	if err != nil {
		return nil, fmt.Errorf("parsing svg: %w", err)
	}

	// 2.0: collect points
	instructions, errs := image.ParseDrawingInstructions()

	var result []bspline.Point
	add := func(x, y float64) {
		p := bspline.Pt(x, y)
		if len(result) > 0 && result[len(result)-1] == p {
			return
		}

		result = append(result, p)
	}

	for instructions != nil {
		select {
		case cmd, ok := <-instructions:
			if !ok || cmd == nil {
				instructions = nil
				continue
			}

			switch cmd.Kind {
			case svg.MoveInstruction, svg.LineInstruction:
				add(cmd.M[0], cmd.M[1])
			case svg.CurveInstruction:
				add(cmd.CurvePoints.T[0], cmd.CurvePoints.T[1])
			case svg.CircleInstruction:
				glg.Warn("svg: circles are not imported")
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			if err != nil {
				return nil, fmt.Errorf("reading svg drawing instructions: %w", err)
			}
		}
	}

	// 3.0: flip
	return flipY(result), nil
}

// groupRoot wraps the children of the root <svg> element in a single <g>.
// A document without a root element or with a self-closing one is returned unchanged.
func groupRoot(doc string) string {
	start := -1
	for i := strings.Index(doc, "<svg"); i >= 0; {
		next := i + len("<svg")
		if next < len(doc) && strings.ContainsRune(" \t\r\n/>", rune(doc[next])) {
			start = i
			break
		}

		j := strings.Index(doc[next:], "<svg")
		if j < 0 {
			break
		}

		i = next + j
	}

	if start < 0 {
		return doc
	}

	// end of the opening tag; quoted attribute values may contain '>'
	var quote byte
	open := -1
	for i := start; i < len(doc); i++ {
		c := doc[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '>':
			open = i
		}

		if open >= 0 {
			break
		}
	}

	if open < 0 || doc[open-1] == '/' {
		return doc
	}

	closing := strings.LastIndex(doc, "</svg")
	if closing <= open {
		return doc
	}

	return doc[:open+1] + "<g>" + doc[open+1:closing] + "</g>" + doc[closing:]
}

func flipY(points []bspline.Point) []bspline.Point {
	if len(points) == 0 {
		return points
	}

	lo, hi := points[0].Y, points[0].Y
	for _, p := range points {
		lo = min(lo, p.Y)
		hi = max(hi, p.Y)
	}

	for i := range points {
		points[i].Y = lo + hi - points[i].Y
	}

	return points
}
