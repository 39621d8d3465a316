package main

import (
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	nurbs "github.com/gucio321/nurbs/pkg"
	"github.com/gucio321/nurbs/pkg/viewer"
)

func main() {
	inputFile := flag.String("i", "", "Input file (.json, .yaml, .svg)")
	preprocess := flag.Bool("inkscape", false, "pre-process SVG input with inkscape (object to path)")
	degree := flag.Int("d", 0, "override degree")
	showGCode := flag.Bool("show-gcode", false, "print G-code of the curve")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		glg.Fatal("Input file is required")
	}

	// load file
	doc, err := nurbs.LoadFile(*inputFile, *preprocess)
	if err != nil {
		glg.Fatal(err)
	}

	if *degree != 0 {
		doc.Degree = *degree
	}

	curve := doc.Curve()
	if curve == nil {
		glg.Warnf("%d points are not enough for degree %d, showing control points only", len(doc.Points), doc.Config().Degree)
	}

	if *showGCode {
		gcode, err := doc.GCode(nurbs.GCodeOptions{})
		if err != nil {
			glg.Fatal(err)
		}

		fmt.Println(gcode)
	}

	ebiten.SetWindowTitle("nurbs: " + *inputFile)
	if err := ebiten.RunGame(viewer.NewViewer(doc.Points, curve)); err != nil {
		glg.Fatal(err)
	}
}
