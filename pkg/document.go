// Package nurbs loads, saves and exports the control points of a B-spline.
package nurbs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kpango/glg"
	"gopkg.in/yaml.v3"

	"github.com/gucio321/nurbs/pkg/bspline"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatSVG  Format = "svg"
)

// FormatOf guesses the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".svg":
		return FormatSVG, nil
	}

	return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
}

// Document is a saved editing session: control points in y-up coordinates
// and the curve settings.
type Document struct {
	Degree     int             `json:"degree" yaml:"degree"`
	Resolution int             `json:"resolution,omitempty" yaml:"resolution,omitempty"`
	Points     []bspline.Point `json:"points" yaml:"points"`
}

// NewDocument creates a document from a curve configuration and its points.
func NewDocument(cfg bspline.Config, points []bspline.Point) *Document {
	return &Document{
		Degree:     cfg.Degree,
		Resolution: cfg.Resolution,
		Points:     append([]bspline.Point(nil), points...),
	}
}

// Config returns the curve configuration stored in the document.
// Missing values fall back to bspline.DefaultConfig.
func (d *Document) Config() bspline.Config {
	cfg := bspline.DefaultConfig()
	if d.Resolution > 0 {
		cfg = cfg.WithResolution(d.Resolution)
	}

	if d.Degree > 0 {
		cfg = cfg.WithDegree(d.Degree)
	}

	return cfg
}

// Curve evaluates the document. It is nil if there are too few points.
func (d *Document) Curve() bspline.Curve {
	return bspline.Recalc(d.Config(), d.Points)
}

// Parse decodes a document.
func Parse(data []byte, format Format) (*Document, error) {
	result := &Document{}

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, result); err != nil {
			return nil, fmt.Errorf("parsing json document: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, result); err != nil {
			return nil, fmt.Errorf("parsing yaml document: %w", err)
		}
	case FormatSVG:
		points, err := ParseSVG(data, 1)
		if err != nil {
			return nil, err
		}

		result.Points = points
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	return result, nil
}

// Encode serializes the document. SVG can only be read.
func (d *Document) Encode(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(d, "", "\t")
	case FormatYAML:
		return yaml.Marshal(d)
	case FormatSVG:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
}

// Load reads a document, picking the format from the extension.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	glg.Infof("loaded %d points from %s", len(result.Points), path)

	return result, nil
}

// Save writes the document, picking the format from the extension.
func (d *Document) Save(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	data, err := d.Encode(format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	glg.Infof("saved %d points to %s", len(d.Points), path)

	return nil
}
