package main

import (
	"wiremap/canvas"
	"wiremap/render"
	"wiremap/wiring"
)

type model struct {
	width          int
	height         int
	panX           int
	panY           int
	zoom           int
	mode           Mode
	help           bool
	file           *wiring.File
	tablePath      string
	result         *render.Result
	drawing        *canvas.Recorder
	grid           *canvas.Grid
	config         *Config
	errorMessage   string
	successMessage string
}
