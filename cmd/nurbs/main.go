package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	nurbs "github.com/gucio321/nurbs/pkg"
	"github.com/gucio321/nurbs/pkg/bspline"
	"github.com/gucio321/nurbs/pkg/viewer"
	"github.com/gucio321/nurbs/pkg/workspace"
)

type Flags struct {
	Workspace      string
	Degree         int
	Resolution     int
	InputFilePath  string
	Inkscape       bool
	OutputFilePath string
	GCodeFilePath  string
	NoLineComments bool
	CommentsAbove  bool
	preset         string
	makePreset     bool
}

func main() {
	var f Flags
	flag.StringVar(&f.Workspace, "w", workspace.DefaultPresetName, "workspace preset name")
	flag.IntVar(&f.Degree, "d", bspline.DegreeMin, fmt.Sprintf("initial degree (%d-%d)", bspline.DegreeMin, bspline.DegreeMax))
	flag.IntVar(&f.Resolution, "r", bspline.DefaultResolution, "curve resolution (number of samples)")
	flag.StringVar(&f.InputFilePath, "i", "", "load control points from file (.json, .yaml, .svg)")
	flag.BoolVar(&f.Inkscape, "inkscape", false, "pre-process SVG input with inkscape")
	flag.StringVar(&f.OutputFilePath, "o", "", "save control points to file on exit (.json, .yaml)")
	flag.StringVar(&f.GCodeFilePath, "g", "", "write curve G-code to file on exit")
	flag.BoolVar(&f.NoLineComments, "nlc", false, "no line comments in G-code")
	flag.BoolVar(&f.CommentsAbove, "ca", false, "G-code comments above")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.Parse()

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		fmt.Println(string(out))
		glg.Infof("Presets generated")
		return
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v (use valid file or empty to not use presets)", f.preset, err)
		}

		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
		}
	}

	preset, err := workspace.Get(f.Workspace)
	if err != nil {
		glg.Fatalf("Cannot load workspace: %v", err)
	}

	cfg := bspline.DefaultConfig().WithDegree(f.Degree).WithResolution(f.Resolution)
	ws, err := workspace.New(preset, cfg)
	if err != nil {
		glg.Fatalf("Cannot create workspace: %v", err)
	}

	if f.InputFilePath != "" {
		doc, err := nurbs.LoadFile(f.InputFilePath, f.Inkscape)
		if err != nil {
			glg.Fatalf("Cannot load %s: %v", f.InputFilePath, err)
		}

		if doc.Degree != 0 {
			ws.SetDegree(doc.Degree)
		}

		if err := ws.SetPoints(doc.Points); err != nil {
			glg.Fatalf("Cannot use points from %s: %v", f.InputFilePath, err)
		}
	}

	ebiten.SetWindowSize(viewer.WindowW, viewer.WindowH)
	ebiten.SetWindowTitle("nurbs")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(viewer.NewEditor(ws)); err != nil {
		glg.Fatalf("Cannot run editor: %v", err)
	}

	doc := nurbs.NewDocument(ws.Config(), ws.Points())

	if f.OutputFilePath != "" {
		if err := doc.Save(f.OutputFilePath); err != nil {
			glg.Fatalf("Cannot save %s: %v", f.OutputFilePath, err)
		}
	}

	if f.GCodeFilePath != "" {
		gcode, err := doc.GCode(nurbs.GCodeOptions{
			NoLineComments: f.NoLineComments,
			CommentsAbove:  f.CommentsAbove,
		})
		if err != nil {
			glg.Fatalf("Cannot generate GCode: %v", err)
		}

		if err := os.WriteFile(f.GCodeFilePath, []byte(gcode.String()), 0o644); err != nil {
			glg.Fatalf("Cannot write file %s: %v", f.GCodeFilePath, err)
		}

		glg.Infof("GCode written to %s", f.GCodeFilePath)
	}
}
