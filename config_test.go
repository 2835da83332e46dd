package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"wiremap/canvas"
)

func TestParseConfig(t *testing.T) {
	home := t.TempDir()
	content := `
# wiremap settings
output_dir = ~/diagrams
format = PNG
scale = 8
wiring = /etc/wiremap/board.yaml
nonsense line
`
	config := parseConfig(strings.NewReader(content), home)

	assert.Equal(t, filepath.Join(home, "diagrams"), config.OutputDir)
	assert.Equal(t, "png", config.Format)
	assert.Equal(t, 8.0, config.Scale)
	assert.Equal(t, "/etc/wiremap/board.yaml", config.Table)
}

func TestParseConfigRejectsBadValues(t *testing.T) {
	config := parseConfig(strings.NewReader("format = pdf\nscale = -2\n"), "")

	assert.Equal(t, "svg", config.Format)
	assert.Equal(t, canvas.DefaultScale, config.Scale)
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	config := loadConfigFrom(filepath.Join(t.TempDir(), ".wiremaprc"), "")
	assert.Equal(t, defaultConfig(), config)
}

func TestLoadConfigFrom(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, ".wiremaprc")
	assert.NoError(t, os.WriteFile(path, []byte("format=txt\n"), 0644))

	config := loadConfigFrom(path, home)
	assert.Equal(t, "txt", config.Format)
}

func TestGetSavePath(t *testing.T) {
	config := defaultConfig()
	assert.Equal(t, "wiring_diagram.svg", config.GetSavePath("wiring_diagram.svg"))

	config.OutputDir = filepath.Join(t.TempDir(), "out")
	got := config.GetSavePath("wiring_diagram.svg")
	assert.Equal(t, filepath.Join(config.OutputDir, "wiring_diagram.svg"), got)
	assert.DirExists(t, config.OutputDir)

	assert.Equal(t, "/tmp/x.svg", config.GetSavePath("/tmp/x.svg"))
}
