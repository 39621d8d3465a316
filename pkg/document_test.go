package nurbs

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gucio321/nurbs/pkg/bspline"
	"github.com/gucio321/nurbs/pkg/gcb"
)

func testDocument() *Document {
	return NewDocument(bspline.DefaultConfig().WithDegree(3), []bspline.Point{
		bspline.Pt(0, 0),
		bspline.Pt(100, 0),
		bspline.Pt(100, 100),
		bspline.Pt(0, 100),
		bspline.Pt(50, 50),
	})
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.json", FormatJSON},
		{"dir/b.YAML", FormatYAML},
		{"c.yml", FormatYAML},
		{"d.svg", FormatSVG},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := FormatOf("points.txt")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncodeParseRoundTrip(t *testing.T) {
	doc := testDocument()

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := doc.Encode(format)
			require.NoError(t, err)

			got, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, doc, got)
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
degree: 2
points:
  - {x: 1, y: 2}
  - {x: 3, y: 4}
  - {x: 5, y: 2}
`)

	doc, err := Parse(data, FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, 2, doc.Degree)
	assert.Equal(t, bspline.Pt(3, 4), doc.Points[1])
	assert.Len(t, doc.Curve(), bspline.DefaultResolution)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("{"), FormatJSON)
	require.Error(t, err)

	_, err = Parse([]byte("degree: [1"), FormatYAML)
	require.Error(t, err)

	_, err = Parse(nil, Format("toml"))
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestEncodeSVGUnsupported(t *testing.T) {
	_, err := testDocument().Encode(FormatSVG)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	doc := testDocument()

	for _, name := range []string{"doc.json", "doc.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, doc.Save(path))

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, doc, got)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestDocumentConfig(t *testing.T) {
	assert.Equal(t, bspline.DefaultConfig(), (&Document{}).Config())
	assert.Equal(t, bspline.Config{Degree: 5, Resolution: 10}, (&Document{Degree: 5, Resolution: 10}).Config())
}

func TestNewDocumentCopiesPoints(t *testing.T) {
	points := []bspline.Point{bspline.Pt(1, 1)}
	doc := NewDocument(bspline.DefaultConfig(), points)
	points[0] = bspline.Pt(2, 2)

	assert.Equal(t, bspline.Pt(1, 1), doc.Points[0])
}

func TestGCode(t *testing.T) {
	builder, err := testDocument().GCode(GCodeOptions{})
	require.NoError(t, err)

	out := builder.String()
	assert.Contains(t, out, "; B-spline of degree 3 through 5 control points")
	assert.Equal(t, 1, strings.Count(out, "start drawing"))
	assert.Equal(t, bspline.DefaultResolution, strings.Count(out, "; move to"))

	w, h := gcb.DefaultArea().Size()
	end := builder.Current()
	assert.Positive(t, float64(end.X))
	assert.LessOrEqual(t, float64(end.X), w)
	assert.Positive(t, float64(end.Y))
	assert.LessOrEqual(t, float64(end.Y), h)
}

func TestGCodeScaleTooLarge(t *testing.T) {
	_, err := testDocument().GCode(GCodeOptions{Scale: 10})
	require.ErrorIs(t, err, gcb.ErrOutOfBounds)
}

func TestGCodeNoCurve(t *testing.T) {
	doc := NewDocument(bspline.DefaultConfig(), []bspline.Point{bspline.Pt(0, 0)})
	_, err := doc.GCode(GCodeOptions{})
	require.ErrorIs(t, err, ErrNoCurve)
}

func TestFitScale(t *testing.T) {
	area := gcb.DefaultArea()
	assert.Equal(t, 0.8, fitScale(area, bspline.Pt(100, 50)))
	assert.Equal(t, 0.5, fitScale(area, bspline.Pt(10, 160)))
	assert.Equal(t, 1.0, fitScale(area, bspline.Pt(0, 0)))
}
