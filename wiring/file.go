package wiring

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"wiremap/board"
)

// File is the on-disk wiring description. The board section is optional;
// without it the default board is used.
type File struct {
	Board *board.Spec `yaml:"board,omitempty"`
	Table `yaml:",inline"`
}

// Spec returns the board described by the file, or the default board.
func (f *File) Spec() board.Spec {
	if f.Board == nil {
		return board.DefaultSpec()
	}
	return *f.Board
}

// LoadFile reads a YAML wiring file.
func LoadFile(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a wiring file from r and validates its board section.
func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse wiring file: %w", err)
	}
	for i := range f.Logic {
		if f.Logic[i].Kind == "" {
			f.Logic[i].Kind = KindOther
		}
	}
	if f.Board != nil {
		if err := f.Board.Validate(); err != nil {
			return nil, fmt.Errorf("board: %w", err)
		}
	}
	return &f, nil
}

// Default returns the built-in board and wiring.
func Default() *File {
	return &File{Table: DefaultTable()}
}
