// Package config handles application configuration and setup such as
// the logger level derived from the command line flags.
package config

import (
	"github.com/retroenv/dis68k/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger for the program options. Debug output
// takes precedence over quiet mode.
func CreateLogger(opts options.Program) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Debug:
		cfg.Level = log.DebugLevel
	case opts.Quiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
