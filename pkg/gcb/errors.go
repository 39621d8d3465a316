package gcb

import "errors"

var (
	ErrCantChangeDrawingState = errors.New("cannot change drawing state")
	ErrOutOfBounds            = errors.New("position outside of the drawing area")
	ErrEmptyPath              = errors.New("path needs at least one point")
)
