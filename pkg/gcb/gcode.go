// Package gcb provides a highly-abstracted way to generate GCode 2D engravings.
package gcb

import (
	"fmt"
	"strings"
)

type (
	// RelativePos is a position relative to the current head position.
	RelativePos float64
	// AbsolutePos describes position absolute on the drawing.
	// starts form 0,0
	AbsolutePos float64
	// HardwareAbsolutePos describes a coordinates on Hardware.
	// is AbsolutePos+Area.MinX/MinY
	HardwareAbsolutePos float64
)

const DefaultPreamble = `;; BEGIN PREAMBLE
M413 S0 ; Disable power loss recovery
M107 ; Fan off
M104 S0 ; Set target temperature
G92 E0 ; Hotend reset
G90 ; Absolute positioning

G28 X Y ; Home X and Y axes

G0 X80 Y80 F5000.0 ; Move to start position

G91 ; Relative positioning

M204 S2000 ; Printing and travel acceleration in mm/s/s
;; END PREAMBLE
`

const DefaultPostamble = `;; BEGIN POSTAMBLE
M84 X Y Z E ; Disable ALL motors
;; END POSTAMBLE
`

const (
	// BaseX, BaseY are the coordinates the preamble moves the head to.
	BaseX, BaseY = 80, 80
	// BaseDepth is how far the head moves down to draw.
	BaseDepth = 20

	boundsEpsilon = 1e-6
)

// Area is the printers drawing area in hardware coordinates.
type Area struct {
	MinX, MinY, MaxX, MaxY HardwareAbsolutePos
}

// DefaultArea returns the drawing area of our printer.
func DefaultArea() Area {
	return Area{
		MinX: 80, MinY: 80,
		MaxX: 160, MaxY: 160,
	}
}

// Size returns width and height of the area.
func (a Area) Size() (w, h float64) {
	return float64(a.MaxX - a.MinX), float64(a.MaxY - a.MinY)
}

// GCodeBuilder allows to build GCode.
// NOTE: all external API for this object uses AbsolutePos -
// position absolute to the drawing (so starting from 0,0)
type GCodeBuilder struct {
	commands            []Command
	area                Area
	depth               float64
	isDrawing           bool
	currentP            BetterPoint[HardwareAbsolutePos]
	preamble, postamble string
	lineComments        bool
	commentsAbove       bool
}

// NewGCodeBuilder creates new GCodeBuilder with default values.
func NewGCodeBuilder(area Area) *GCodeBuilder {
	return &GCodeBuilder{
		area:         area,
		currentP:     BetterPoint[HardwareAbsolutePos]{BaseX, BaseY},
		depth:        BaseDepth,
		preamble:     DefaultPreamble,
		postamble:    DefaultPostamble,
		lineComments: true,
	}
}

// SetDepth sets how deep the head should go.
func (b *GCodeBuilder) SetDepth(depth float64) *GCodeBuilder {
	b.depth = depth
	return b
}

// Comments controls comment output: line comments at all, and whether they go above the command.
func (b *GCodeBuilder) Comments(lineComments, above bool) *GCodeBuilder {
	b.lineComments = lineComments
	b.commentsAbove = above
	return b
}

// PushCommand appends raw commands.
func (b *GCodeBuilder) PushCommand(cmds ...Command) *GCodeBuilder {
	b.commands = append(b.commands, cmds...)
	return b
}

// Commands returns a copy of the commands pushed so far.
func (b *GCodeBuilder) Commands() []Command {
	return append([]Command(nil), b.commands...)
}

// Comment writes comment to GCode.
func (b *GCodeBuilder) Comment(comment string) *GCodeBuilder {
	return b.PushCommand(Command{LineComment: comment})
}

func (b *GCodeBuilder) Commentf(format string, args ...any) *GCodeBuilder {
	return b.Comment(fmt.Sprintf(format, args...))
}

// Up stops active drawing
func (b *GCodeBuilder) Up() error {
	if !b.isDrawing {
		return fmt.Errorf("up called, but not drawing: %w", ErrCantChangeDrawingState)
	}

	b.PushCommand(Command{
		Code:        GCodeMove,
		Args:        []Arg{{"Z", b.depth}},
		LineComment: "stop drawing",
	})

	b.isDrawing = false

	return nil
}

// Down starts drawing
func (b *GCodeBuilder) Down() error {
	if b.isDrawing {
		return fmt.Errorf("down called, but already drawing: %w", ErrCantChangeDrawingState)
	}

	b.PushCommand(Command{
		Code:        GCodeMove,
		Args:        []Arg{{"Z", -b.depth}},
		LineComment: "start drawing",
	})

	b.isDrawing = true

	return nil
}

// Move moves to absolute position given
// NOTE: Move does NOT call Up/Down. It just moves.
func (b *GCodeBuilder) Move(p BetterPoint[AbsolutePos]) error {
	hw, err := b.translate(p)
	if err != nil {
		return err
	}

	rel := b.absToRel(hw)
	b.currentP = hw

	b.PushCommand(Command{
		Code: GCodeMove,
		Args: []Arg{
			{"X", float64(rel.X)},
			{"Y", float64(rel.Y)},
		},
		LineComment: fmt.Sprintf("move to %v", b.currentP),
	})

	return nil
}

// DrawLines draws a continuous polyline through path.
func (b *GCodeBuilder) DrawLines(path ...BetterPoint[AbsolutePos]) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}

	b.Commentf("BEGIN DrawLines(%d points)", len(path))

	if err := b.Move(path[0]); err != nil {
		return fmt.Errorf("cant move to the start of lines: %w", err)
	}

	if err := b.Down(); err != nil {
		return fmt.Errorf("cant start drawing lines: %w", err)
	}

	for i, p := range path[1:] {
		if err := b.Move(p); err != nil {
			return fmt.Errorf("cant draw line %d: %w", i+1, err)
		}
	}

	if err := b.Up(); err != nil {
		return fmt.Errorf("cant stop drawing lines: %w", err)
	}

	b.Commentf("END DrawLines(%d points)", len(path))

	return nil
}

// Current returns current position.
func (b *GCodeBuilder) Current() BetterPoint[AbsolutePos] {
	return Redefine[AbsolutePos](b.currentP.Add(BetterPt(-b.area.MinX, -b.area.MinY)))
}

// String returns built GCode.
func (b *GCodeBuilder) String() string {
	var sb strings.Builder
	sb.WriteString(b.preamble)

	for _, cmd := range b.commands {
		if cmd.LineComment != "" && cmd.Code != "" && b.lineComments && b.commentsAbove {
			sb.WriteString("; " + cmd.LineComment + "\n")
			sb.WriteString(cmd.String(false) + "\n")
			continue
		}

		line := cmd.String(b.lineComments)
		if line == "" {
			continue
		}

		sb.WriteString(line + "\n")
	}

	sb.WriteString(b.postamble)

	return sb.String()
}

func (b *GCodeBuilder) absToRel(p BetterPoint[HardwareAbsolutePos]) BetterPoint[RelativePos] {
	return Redefine[RelativePos](p.Add(b.currentP.Mul(-1)))
}

// translate converts AbsolutePos to HardwareAbsolutePos by adding the area offset.
func (b *GCodeBuilder) translate(p BetterPoint[AbsolutePos]) (BetterPoint[HardwareAbsolutePos], error) {
	hw := Redefine[HardwareAbsolutePos](p).Add(BetterPt(b.area.MinX, b.area.MinY))

	switch {
	case p.X < -boundsEpsilon || p.Y < -boundsEpsilon:
		return hw, fmt.Errorf("absolute position must be positive, got %v: %w", p, ErrOutOfBounds)
	case hw.X > b.area.MaxX+boundsEpsilon || hw.Y > b.area.MaxY+boundsEpsilon:
		return hw, fmt.Errorf("position %v exceeds %v: %w", hw, BetterPt(b.area.MaxX, b.area.MaxY), ErrOutOfBounds)
	}

	return hw, nil
}
