// Package loader handles input file loading operations.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/retroenv/dis68k/internal/detector"
	"github.com/retroenv/dis68k/internal/hunk"
)

// Loader handles loading input files from disk.
type Loader struct{}

// New creates a new loader.
func New() *Loader {
	return &Loader{}
}

// Read reads the complete input file.
func (l *Loader) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

// LoadFromBytes parses the file content in the given format. Raw input
// becomes a single code hunk named after the file.
func (l *Loader) LoadFromBytes(data []byte, name string, format detector.Format) (*hunk.File, error) {
	switch format {
	case detector.Hunk:
		file, err := hunk.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing hunk executable: %w", err)
		}
		return file, nil

	case detector.Raw:
		if len(data) == 0 {
			return nil, fmt.Errorf("raw binary %s is empty", name)
		}
		return hunk.FromRaw(data, filepath.Base(name)), nil

	default:
		return nil, fmt.Errorf("unsupported input format '%s'", format)
	}
}
