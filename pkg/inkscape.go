package nurbs

import (
	"fmt"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/kpango/glg"
)

// Preprocess converts every object of an SVG file to a simplified path with inkscape
// and returns the path of the converted file.
// It needs the inkscape binary.
func Preprocess(path string) (string, error) {
	proxy := inkscape.NewProxy(inkscape.Verbose(true))
	if err := proxy.Run(); err != nil {
		return "", fmt.Errorf("cannot run inkscape: %w", err)
	}

	defer proxy.Close()

	glg.Infof("running inkscape pre-processing of %s", path)

	converted := path + ".nurbs.svg"
	proxy.RawCommands(
		fmt.Sprintf("file-open:%s", path),
		fmt.Sprintf("export-filename:%s", converted),
		"export-type:svg",
		"select-all",
		"object-to-path",
		"path-simplify",
		"export-do",
	)

	glg.Info("inkscape done.")

	return converted, nil
}

// LoadFile loads a document like Load. If preprocess is set, SVG files go through
// Preprocess first.
func LoadFile(path string, preprocess bool) (*Document, error) {
	if format, err := FormatOf(path); preprocess && err == nil && format == FormatSVG {
		converted, err := Preprocess(path)
		if err != nil {
			return nil, err
		}

		path = converted
	}

	return Load(path)
}
