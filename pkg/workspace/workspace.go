package workspace

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed workspaces.json
var workspaces []byte

// DefaultPresetName is the preset used when none is requested.
const DefaultPresetName = "default"

// Preset describes a working area.
type Preset struct {
	// SizeX and SizeY are the grid dimensions in pixels.
	SizeX, SizeY int
	// MaxPoints is how many control points the user may place.
	MaxPoints int
	// PointRadius is the hit-test (and drawing) radius of a control point.
	PointRadius float64
	// TickSize is the grid spacing.
	TickSize int

	Name        string
	Description string
}

func decodeWorkspaces() ([]Preset, error) {
	var result []Preset
	if err := json.Unmarshal(workspaces, &result); err != nil {
		return nil, fmt.Errorf("decoding workspaces: %w", err)
	}

	return result, nil
}

// Presets returns all known presets.
func Presets() ([]Preset, error) {
	return decodeWorkspaces()
}

// Get returns the preset with the given name.
func Get(name string) (*Preset, error) {
	presets, err := decodeWorkspaces()
	if err != nil {
		return nil, err
	}

	for _, preset := range presets {
		if preset.Name == name {
			return &preset, nil
		}
	}

	return nil, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
}
