package main

import (
	"fmt"
	"io"
	"os"

	"wiremap/canvas"
	"wiremap/render"
	"wiremap/wiring"
)

// Character cell size of the text export, in millimetres.
const (
	txtCellWidth  = 2.0
	txtCellHeight = 4.0
)

var formats = []string{"svg", "png", "txt"}

func isFormat(format string) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}

func defaultFilename(format string) string {
	return "wiring_diagram." + format
}

func newCanvas(format string, w io.Writer, scale float64) (canvas.Canvas, error) {
	switch format {
	case "svg":
		return canvas.NewSVG(w), nil
	case "png":
		return canvas.NewPNG(w, scale), nil
	case "txt":
		return canvas.NewGrid(w, txtCellWidth, txtCellHeight), nil
	default:
		return nil, fmt.Errorf("unknown format %q (want svg, png or txt)", format)
	}
}

func exportDiagram(file *wiring.File, format, filename string, scale float64) (res *render.Result, err error) {
	if !isFormat(format) {
		return nil, fmt.Errorf("unknown format %q (want svg, png or txt)", format)
	}

	out, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	c, err := newCanvas(format, out, scale)
	if err != nil {
		return nil, err
	}
	res, err = render.Render(c, file.Spec(), file.Table)
	if err != nil {
		return res, fmt.Errorf("export %s: %w", filename, err)
	}
	return res, nil
}
