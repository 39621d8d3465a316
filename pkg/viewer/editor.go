package viewer

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/gucio321/nurbs/pkg/bspline"
	"github.com/gucio321/nurbs/pkg/workspace"
)

var _ ebiten.Game = &Editor{}

const (
	// WindowW and WindowH are the editor's logical screen size.
	WindowW, WindowH = 1280, 720

	lineHeight = 16
	textIndent = 4
)

var (
	canvasColor    = colornames.Silver
	workspaceColor = colornames.Gainsboro
	gridColor      = colornames.Darkgray
	idleColor      = colornames.Mediumblue
	hoverColor     = colornames.Limegreen
	dragColor      = colornames.Crimson
)

var help = []string{
	"lbutton click: add point",
	"lbutton hold: drag point",
	"rbutton click: remove point",
	"wheel up/down: inc/dec degree",
	"esc: quit",
}

var mouseButtons = []struct {
	ebiten    ebiten.MouseButton
	workspace workspace.Button
}{
	{ebiten.MouseButtonLeft, workspace.ButtonLeft},
	{ebiten.MouseButtonRight, workspace.ButtonRight},
}

// Editor lets the user edit a workspace's control points with the mouse.
// The workspace is centered in the window; screen y-down coordinates are
// converted to the workspace's y-up ones in Update and back in Draw.
type Editor struct {
	ws     *workspace.Workspace
	offset bspline.Point
	grid   *ebiten.Image
	work   *ebiten.Image
}

func NewEditor(ws *workspace.Workspace) *Editor {
	sizeX, sizeY := ws.Size()
	result := &Editor{
		ws:     ws,
		offset: gridOffset(sizeX, sizeY),
		work:   ebiten.NewImage(sizeX, sizeY),
	}

	result.grid = result.renderGrid()

	return result
}

// Workspace returns the edited workspace.
func (e *Editor) Workspace() *workspace.Workspace {
	return e.ws
}

func gridOffset(sizeX, sizeY int) bspline.Point {
	return bspline.Pt(float64((WindowW-sizeX)/2), float64((WindowH-sizeY)/2))
}

func (e *Editor) renderGrid() *ebiten.Image {
	preset := e.ws.Preset()
	dest := ebiten.NewImage(preset.SizeX, preset.SizeY)
	dest.Fill(workspaceColor)

	lastX, lastY := float32(preset.SizeX-1), float32(preset.SizeY-1)
	for x := 0; x <= preset.SizeX/preset.TickSize; x++ {
		offset := min(float32(x*preset.TickSize), lastX)
		vector.StrokeLine(dest, offset, 0, offset, lastY, 1, gridColor, true)
	}

	for y := 0; y <= preset.SizeY/preset.TickSize; y++ {
		offset := min(float32(y*preset.TickSize), lastY)
		vector.StrokeLine(dest, 0, offset, lastX, offset, 1, gridColor, true)
	}

	return dest
}

func (e *Editor) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	cursorX, cursorY := ebiten.CursorPosition()
	e.ws.OnMouseHover(e.ws.FromScreen(float64(cursorX)-e.offset.X, float64(cursorY)-e.offset.Y))

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			e.ws.OnMouseButtonDown(b.workspace)
		}

		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			e.ws.OnMouseButtonUp(b.workspace)
		}
	}

	if button := wheelButton(ebiten.Wheel()); button != workspace.ButtonNone {
		e.ws.OnMouseButtonUp(button)
	}

	return nil
}

func wheelButton(_, wheelY float64) workspace.Button {
	switch {
	case wheelY > 0:
		return workspace.ButtonWheelUp
	case wheelY < 0:
		return workspace.ButtonWheelDown
	}

	return workspace.ButtonNone
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(canvasColor)
	for i, line := range help {
		ebitenutil.DebugPrintAt(screen, line, textIndent, i*lineHeight)
	}

	e.work.DrawImage(e.grid, nil)

	if curve := e.ws.Curve(); curve != nil {
		e.strokePolyline(curve, segmentColor)
		e.strokePolyline(e.ws.Points(), func(_, _ int) color.RGBA { return colornames.Black })
	}

	e.drawPoints()
	e.drawInfo()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(e.offset.X, e.offset.Y)
	screen.DrawImage(e.work, op)
}

func (e *Editor) strokePolyline(points []bspline.Point, c func(i, n int) color.RGBA) {
	for i := 1; i < len(points); i++ {
		p0, p1 := e.ws.ToScreen(points[i-1]), e.ws.ToScreen(points[i])
		vector.StrokeLine(e.work,
			float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y),
			1.5, c(i, len(points)), true)
	}
}

func (e *Editor) drawPoints() {
	hovered, _ := e.ws.Hovered()
	radius := float32(e.ws.Preset().PointRadius)

	for i, p := range e.ws.Points() {
		c := idleColor
		if i == hovered {
			c = hoverColor
			if e.ws.Dragging() {
				c = dragColor
			}
		}

		s := e.ws.ToScreen(p)
		vector.DrawFilledCircle(e.work, float32(s.X), float32(s.Y), radius, c, true)
	}
}

func (e *Editor) drawInfo() {
	preset := e.ws.Preset()
	lines := []string{
		fmt.Sprintf("points: %2d/%2d", len(e.ws.Points()), preset.MaxPoints),
		fmt.Sprintf("degree: %2d/%2d", e.ws.Degree(), bspline.DegreeMax),
	}

	if mouse, onGrid := e.ws.Mouse(); onGrid {
		lines = append(lines, fmt.Sprintf("x:%4d y:%4d", int(mouse.X), int(mouse.Y)))
	}

	for i, line := range lines {
		ebitenutil.DebugPrintAt(e.work, line, textIndent, i*(lineHeight+textIndent))
	}
}

func (e *Editor) Layout(_, _ int) (screenWidth, screenHeight int) {
	return WindowW, WindowH
}
