// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/dis68k/internal/detector"
	"github.com/retroenv/dis68k/internal/hunk"
	"github.com/retroenv/dis68k/internal/hunkinfo"
	"github.com/retroenv/dis68k/internal/loader"
	"github.com/retroenv/dis68k/internal/options"
	"github.com/retroenv/dis68k/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete disassembly pipeline: the input file is read,
// its format detected and parsed, then either the hunk report or the
// listing is written.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, listing options.Listing, w io.Writer) error {
	data, err := p.loader.Read(opts.Input)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}

	format := p.detector.Detect(opts, data)
	file, err := p.loader.LoadFromBytes(data, opts.Input, format)
	if err != nil {
		return fmt.Errorf("loading input: %w", err)
	}

	if format == detector.Hunk && listing.Base != 0 {
		p.logger.Warn("Base address is ignored for hunk executables")
		listing.Base = 0
	}

	p.printInfo(opts, file, format)

	if opts.HunkInfo {
		if err := hunkinfo.Write(w, opts.Input, file, opts.Debug); err != nil {
			return fmt.Errorf("writing hunk info: %w", err)
		}
		return nil
	}

	return p.ExecuteWithFile(ctx, file, listing, w)
}

// ExecuteWithFile writes the listing of an already parsed file.
// This is useful for testing and programmatic usage where the file is already in memory.
func (p *Pipeline) ExecuteWithFile(ctx context.Context, file *hunk.File, listing options.Listing, w io.Writer) error {
	p.logger.Debug("Writing listing",
		log.Stringer("cpu", listing.CPU),
		log.String("library", listing.Library))

	wr, err := writer.New(p.logger, file, w, listing)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}

	if err := wr.Write(ctx); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	p.logger.Debug("Listing written", log.Int("lines", wr.Lines()))
	return nil
}

// printInfo prints information about the file being processed.
func (p *Pipeline) printInfo(opts options.Program, file *hunk.File, format detector.Format) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing file",
		log.String("file", opts.Input),
		log.Stringer("format", format),
		log.Int("hunks", len(file.Hunks)),
	)
}
