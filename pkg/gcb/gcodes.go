package gcb

// GCode represents a gcode (e.g. G0, G1, G91)
type GCode string

// list of gcodes. See https://marlinfw.org/docs/gcode/G000-G001.html
// We point out only codes used in this project.
// Positioning modes are set by the preamble.
const (
	// G0 is a move command
	G0 GCode = "G0"

	GCodeMove = G0
)
