// Package detector handles input format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/dis68k/internal/hunk"
	"github.com/retroenv/dis68k/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// Format is the layout of an input file.
type Format int

// Supported input formats.
const (
	Hunk Format = iota // AmigaOS hunk executable
	Raw                // raw binary code without structure
)

func (f Format) String() string {
	switch f {
	case Hunk:
		return "hunk"
	case Raw:
		return "raw"
	default:
		return "unknown"
	}
}

// Detector handles input format detection from file content, extensions
// and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the input format. Raw binary input is selected by
// option, otherwise the hunk header magic decides. Files without magic are
// treated as raw binary only for known raw image extensions, all others
// are passed on as hunk executables to report the header mismatch.
func (d *Detector) Detect(opts options.Program, data []byte) Format {
	if opts.Binary {
		return Raw
	}
	if hunk.IsExecutable(data) {
		return Hunk
	}

	format := d.detectFromFile(opts.Input)
	d.logger.Debug("No hunk header found",
		log.Stringer("format", format),
		log.String("file", opts.Input))
	return format
}

// detectFromFile determines the format based on file extension.
func (d *Detector) detectFromFile(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".bin", ".raw", ".rom":
		return Raw
	default:
		return Hunk
	}
}
