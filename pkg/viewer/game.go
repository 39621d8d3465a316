package viewer

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/gucio321/nurbs/pkg/bspline"
)

var _ ebiten.Game = &Viewer{}

const (
	viewerW, viewerH = 800, 600
	viewerMargin     = 40
)

var (
	borderColor  = colornames.White
	polygonColor = colornames.Gray
	pointColor   = colornames.Cornflowerblue
)

// Viewer creates in NewViewer an image of a curve and its control points and displays it in ebiten.
// Mouse wheel zooms, cursor position pans the zoomed image.
type Viewer struct {
	scale   float64
	points  []bspline.Point
	curve   bspline.Curve
	current *ebiten.Image
}

func NewViewer(points []bspline.Point, curve bspline.Curve) *Viewer {
	result := &Viewer{
		scale:  1,
		points: points,
		curve:  curve,
	}

	result.current = result.render()
	return result
}

func (v *Viewer) render() *ebiten.Image {
	dest := ebiten.NewImage(viewerW, viewerH)
	dest.Fill(colornames.Black)

	all := append(append([]bspline.Point(nil), v.points...), v.curve...)
	scale, lo := fit(all, viewerW, viewerH, viewerMargin)
	toScreen := func(p bspline.Point) (float64, float64) {
		p = p.Sub(lo).Mul(scale)
		return viewerMargin + p.X, viewerH - viewerMargin - p.Y // this is because of 0,0 difference
	}

	ebitenutil.DrawLine(dest, viewerMargin, viewerH-viewerMargin, viewerW-viewerMargin, viewerH-viewerMargin, borderColor)
	ebitenutil.DrawLine(dest, viewerMargin, viewerH-viewerMargin, viewerMargin, viewerMargin, borderColor)

	for i := 1; i < len(v.points); i++ {
		x0, y0 := toScreen(v.points[i-1])
		x1, y1 := toScreen(v.points[i])
		ebitenutil.DrawLine(dest, x0, y0, x1, y1, polygonColor)
	}

	for _, p := range v.points {
		x, y := toScreen(p)
		ebitenutil.DrawRect(dest, x-2, y-2, 5, 5, pointColor)
	}

	for i := 1; i < len(v.curve); i++ {
		x0, y0 := toScreen(v.curve[i-1])
		x1, y1 := toScreen(v.curve[i])
		ebitenutil.DrawLine(dest, x0, y0, x1, y1, segmentColor(i, len(v.curve)))
	}

	return dest
}

func (v *Viewer) Update() error {
	_, wheelY := ebiten.Wheel()
	v.scale += wheelY * 0.1
	if v.scale < 1 {
		v.scale = 1
	}

	return nil
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	mouseX, mouseY := ebiten.CursorPosition()
	mouseX = max(0, mouseX)
	mouseY = max(0, mouseY)

	renderable := v.current.SubImage(image.Rect(
		int((v.scale-1)*float64(mouseX)/v.scale), int((v.scale-1)*float64(mouseY)/v.scale),
		viewerW, viewerH)).(*ebiten.Image)

	if renderable.Bounds().Dx() == 0 || renderable.Bounds().Dy() == 0 {
		renderable = v.current
	}

	geom := ebiten.GeoM{}
	geom.Scale(v.scale, v.scale)
	screen.DrawImage(renderable, &ebiten.DrawImageOptions{
		GeoM: geom,
	})
}

func (v *Viewer) Layout(_, _ int) (screenWidth, screenHeight int) {
	return viewerW, viewerH
}
