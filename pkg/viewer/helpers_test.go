package viewer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gucio321/nurbs/pkg/bspline"
	"github.com/gucio321/nurbs/pkg/workspace"
)

func TestHSVtoRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    color.RGBA
	}{
		{"red", 0, 1, 1, color.RGBA{255, 0, 0, 255}},
		{"green", 120, 1, 1, color.RGBA{0, 255, 0, 255}},
		{"blue", 240, 1, 1, color.RGBA{0, 0, 255, 255}},
		{"white", 0, 0, 1, color.RGBA{255, 255, 255, 255}},
		{"black", 200, 1, 0, color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HSVtoRGB(tt.h, tt.s, tt.v))
		})
	}
}

func TestGreenToRedHSV(t *testing.T) {
	assert.Equal(t, HSVtoRGB(120, 1, 0.85), GreenToRedHSV(-1))
	assert.Equal(t, HSVtoRGB(0, 1, 0.85), GreenToRedHSV(2))

	start, end := segmentColor(0, 10), segmentColor(9, 10)
	assert.Zero(t, start.R)
	assert.Zero(t, end.G)
	assert.Equal(t, GreenToRedHSV(0), segmentColor(5, 1))
}

func TestFit(t *testing.T) {
	scale, lo := fit([]bspline.Point{bspline.Pt(10, 10), bspline.Pt(110, 60)}, 300, 300, 50)
	assert.Equal(t, 2.0, scale)
	assert.Equal(t, bspline.Pt(10, 10), lo)

	scale, _ = fit([]bspline.Point{bspline.Pt(5, 5)}, 300, 300, 50)
	assert.Equal(t, 1.0, scale)

	scale, lo = fit(nil, 300, 300, 50)
	assert.Equal(t, 1.0, scale)
	assert.Equal(t, bspline.Point{}, lo)
}

func TestGridOffset(t *testing.T) {
	assert.Equal(t, bspline.Pt(240, 160), gridOffset(800, 400))
}

func TestWheelButton(t *testing.T) {
	assert.Equal(t, workspace.ButtonWheelUp, wheelButton(0, 1))
	assert.Equal(t, workspace.ButtonWheelDown, wheelButton(0, -0.5))
	assert.Equal(t, workspace.ButtonNone, wheelButton(3, 0))
}
