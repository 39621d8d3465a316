package nurbs

import "errors"

var (
	ErrUnknownFormat     = errors.New("unknown document format")
	ErrUnsupportedFormat = errors.New("format can't be written")
	ErrNoCurve           = errors.New("not enough control points for a curve")
)
