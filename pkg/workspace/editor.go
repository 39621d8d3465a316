package workspace

import (
	"fmt"

	"github.com/kpango/glg"

	"github.com/gucio321/nurbs/pkg/bspline"
)

// Workspace is the editable set of control points and the curve through them.
// All coordinates are y-up with the origin in the bottom left corner of the grid;
// ToScreen and FromScreen convert from/to y-down screen space.
//
// Workspace is not safe for concurrent use. It's driven by a single UI loop.
type Workspace struct {
	preset Preset
	cfg    bspline.Config

	points []bspline.Point
	curve  bspline.Curve

	mouse   bspline.Point
	hovered int

	isDragging bool
	isAdding   bool
	isRemoving bool
}

// New creates an empty workspace. cfg.Degree is clamped to [bspline.DegreeMin, bspline.DegreeMax].
func New(preset *Preset, cfg bspline.Config) (*Workspace, error) {
	if preset == nil || preset.SizeX <= 0 || preset.SizeY <= 0 || preset.MaxPoints <= 0 || preset.TickSize <= 0 {
		return nil, fmt.Errorf("%v: %w", preset, ErrInvalidPreset)
	}

	result := &Workspace{
		preset:  *preset,
		cfg:     cfg.WithDegree(clampDegree(cfg.Degree)),
		mouse:   bspline.Pt(-1, -1),
		hovered: -1,
	}

	return result, nil
}

func clampDegree(d int) int {
	return min(bspline.DegreeMax, max(bspline.DegreeMin, d))
}

// Preset returns the preset the workspace was created with.
func (w *Workspace) Preset() Preset {
	return w.preset
}

// Size returns the grid dimensions.
func (w *Workspace) Size() (x, y int) {
	return w.preset.SizeX, w.preset.SizeY
}

// Config returns the current curve configuration.
func (w *Workspace) Config() bspline.Config {
	return w.cfg
}

// Degree returns the current curve degree.
func (w *Workspace) Degree() int {
	return w.cfg.Degree
}

// SetDegree changes the degree (clamped) and recalculates the curve.
func (w *Workspace) SetDegree(d int) {
	d = clampDegree(d)
	if d == w.cfg.Degree {
		return
	}

	w.cfg = w.cfg.WithDegree(d)
	w.recalc()
}

// Points returns a copy of the control points in insertion order.
func (w *Workspace) Points() []bspline.Point {
	return append([]bspline.Point(nil), w.points...)
}

// SetPoints replaces all control points.
func (w *Workspace) SetPoints(points []bspline.Point) error {
	if len(points) > w.preset.MaxPoints {
		return fmt.Errorf("got %d, preset %q allows %d: %w", len(points), w.preset.Name, w.preset.MaxPoints, ErrTooManyPoints)
	}

	w.points = append([]bspline.Point(nil), points...)
	w.hovered = -1
	w.isDragging = false
	w.recalc()

	return nil
}

// Curve returns a copy of the current curve, or nil if there are too few points.
func (w *Workspace) Curve() bspline.Curve {
	if w.curve == nil {
		return nil
	}

	return append(bspline.Curve(nil), w.curve...)
}

// Mouse returns the last cursor position and whether it lies on the grid.
func (w *Workspace) Mouse() (bspline.Point, bool) {
	return w.mouse, w.onGrid(w.mouse)
}

// Hovered returns the index of the point under the cursor.
func (w *Workspace) Hovered() (int, bool) {
	return w.hovered, w.hovered >= 0
}

// Dragging reports whether the hovered point is being dragged.
func (w *Workspace) Dragging() bool {
	return w.isDragging
}

// ToScreen converts a workspace point to y-down grid coordinates.
func (w *Workspace) ToScreen(p bspline.Point) bspline.Point {
	return bspline.Pt(p.X, float64(w.preset.SizeY)-p.Y)
}

// FromScreen converts y-down grid coordinates to a workspace point.
func (w *Workspace) FromScreen(x, y float64) bspline.Point {
	return bspline.Pt(x, float64(w.preset.SizeY)-y)
}

func (w *Workspace) onGrid(p bspline.Point) bool {
	return 0 <= p.X && p.X < float64(w.preset.SizeX) &&
		0 <= p.Y && p.Y < float64(w.preset.SizeY)
}

// isMouseOnGrid also drops pending add/remove clicks once the cursor leaves the grid.
func (w *Workspace) isMouseOnGrid() bool {
	if !w.onGrid(w.mouse) {
		w.isAdding = false
		w.isRemoving = false
		return false
	}

	return true
}

// updateHovered picks the most recently added point under the cursor.
func (w *Workspace) updateHovered() {
	w.hovered = -1
	for i := len(w.points) - 1; i >= 0; i-- {
		if w.points[i].Distance(w.mouse) <= w.preset.PointRadius {
			w.hovered = i
			return
		}
	}

	w.isRemoving = false
}

func (w *Workspace) recalc() {
	w.curve = bspline.Recalc(w.cfg, w.points)
	if w.curve == nil {
		glg.Debugf("workspace: %d points, %s: no curve", len(w.points), w.cfg)
		return
	}

	glg.Debugf("workspace: %d points, %s: curve recalculated", len(w.points), w.cfg)
}

// OnMouseHover handles a cursor move to p (workspace coordinates).
func (w *Workspace) OnMouseHover(p bspline.Point) {
	w.mouse = p
	if !w.isMouseOnGrid() {
		w.isDragging = false
		return
	}

	if w.isDragging {
		w.points[w.hovered] = p
		w.recalc()
		return
	}

	w.updateHovered()
}

// OnMouseButtonDown handles a button press.
func (w *Workspace) OnMouseButtonDown(button Button) {
	if !w.isMouseOnGrid() {
		return
	}

	_, hovered := w.Hovered()

	switch button {
	case ButtonLeft:
		if hovered {
			w.isDragging = true
		} else {
			w.isAdding = true
		}
	case ButtonRight:
		w.isRemoving = hovered
	}
}

// OnMouseButtonUp handles a button release or a wheel notch.
func (w *Workspace) OnMouseButtonUp(button Button) {
	switch button {
	case ButtonWheelUp:
		w.SetDegree(w.cfg.Degree + 1)
		return
	case ButtonWheelDown:
		w.SetDegree(w.cfg.Degree - 1)
		return
	}

	if !w.isMouseOnGrid() {
		w.isDragging = false
		return
	}

	switch button {
	case ButtonLeft:
		if !w.isDragging && w.isAdding {
			w.addPoint(w.mouse)
		}

		w.isAdding = false
		w.isDragging = false
	case ButtonRight:
		if idx, ok := w.Hovered(); ok && w.isRemoving {
			w.removePoint(idx)
		}

		w.isRemoving = false
		w.isDragging = false
	}
}

func (w *Workspace) addPoint(p bspline.Point) {
	if len(w.points) >= w.preset.MaxPoints {
		glg.Warnf("workspace: point limit (%d) reached", w.preset.MaxPoints)
		return
	}

	w.points = append(w.points, p)
	w.updateHovered()
	w.recalc()
}

func (w *Workspace) removePoint(idx int) {
	w.points = append(w.points[:idx], w.points[idx+1:]...)
	w.hovered = -1
	w.updateHovered()
	w.recalc()
}
