package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"wiremap/render"
	"wiremap/wiring"
)

func main() {
	config := loadConfig()

	fs := flag.NewFlagSet("wiremap", flag.ExitOnError)
	tablePath := fs.String("table", config.Table, "wiring file (YAML); the built-in table when empty")
	output := fs.String("o", "", "output file (default wiring_diagram.<format>)")
	format := fs.String("format", config.Format, "output format: "+strings.Join(formats, ", "))
	scale := fs.Float64("scale", config.Scale, "PNG pixels per millimetre")
	view := fs.Bool("view", false, "open the diagram in the terminal viewer")
	quiet := fs.Bool("quiet", false, "suppress warnings")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: wiremap [flags] [wiring.yaml]\n\n")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	if fs.NArg() > 0 {
		*tablePath = fs.Arg(0)
	}
	if *quiet {
		log.SetOutput(io.Discard)
	}
	log.SetFlags(0)
	log.SetPrefix("wiremap: ")

	config.Format = strings.ToLower(*format)
	config.Scale = *scale
	config.Table = *tablePath

	file, err := loadWiring(config.Table)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	if *view {
		m, err := initialModel(file, config.Table, config)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			log.SetOutput(os.Stderr)
			log.Fatal(err)
		}
		return
	}

	filename := *output
	if filename == "" {
		filename = config.GetSavePath(defaultFilename(config.Format))
	}
	res, err := exportDiagram(file, config.Format, filename, config.Scale)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	warn(res)
	fmt.Printf("Wiring diagram saved to %s\n", filename)
}

func loadWiring(path string) (*wiring.File, error) {
	if path == "" {
		return wiring.Default(), nil
	}
	return wiring.LoadFile(path)
}

func warn(res *render.Result) {
	for _, d := range res.Dropped {
		log.Printf("skipped %s", d)
	}
	for _, c := range res.Conflicts.Conflicts {
		log.Printf("pin conflict: %s", c)
	}
}
