package bspline

import "errors"

// ErrInvalidInput is returned when a knot vector can't be built for the given point count and degree.
var ErrInvalidInput = errors.New("invalid input")
