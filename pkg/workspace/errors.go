package workspace

import "errors"

var (
	ErrUnknownPreset = errors.New("unknown workspace preset")
	ErrTooManyPoints = errors.New("too many control points")
	ErrInvalidPreset = errors.New("invalid workspace preset")
)
