package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"wiremap/canvas"
)

type Config struct {
	OutputDir string
	Format    string
	Scale     float64
	Table     string
}

func defaultConfig() *Config {
	return &Config{
		OutputDir: "",
		Format:    "svg",
		Scale:     canvas.DefaultScale,
		Table:     "",
	}
}

func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	return loadConfigFrom(filepath.Join(homeDir, ".wiremaprc"), homeDir)
}

func loadConfigFrom(configPath, homeDir string) *Config {
	file, err := os.Open(configPath)
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()
	return parseConfig(file, homeDir)
}

func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "outputdir", "output_dir", "outdir":
			config.OutputDir = expandPath(value, homeDir)
		case "format":
			if isFormat(strings.ToLower(value)) {
				config.Format = strings.ToLower(value)
			}
		case "scale":
			if s, err := strconv.ParseFloat(value, 64); err == nil && s > 0 {
				config.Scale = s
			}
		case "table", "wiring":
			config.Table = expandPath(value, homeDir)
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.OutputDir == "" || filepath.IsAbs(filename) {
		return filename
	}
	os.MkdirAll(c.OutputDir, 0755)
	return filepath.Join(c.OutputDir, filename)
}
