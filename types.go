package tinymd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultFileMode is the permission used when creating output files.
const DefaultFileMode os.FileMode = 0o644 // rw-r--r--: owner read+write, others read

// Result describes a completed file conversion.
type Result struct {
	InputPath  string
	OutputPath string
	Lines      int   // Lines read from the input
	Fragments  int   // Fragments written
	Suppressed int   // Blank lines dropped
	Bytes      int64 // Bytes written
	Duration   time.Duration
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	escapeHTML bool
	fileMode   os.FileMode
	logger     zerolog.Logger
}

// WithEscapeHTML escapes markup characters in line content.
// Tags emitted by the converter are never escaped.
func WithEscapeHTML(escape bool) Option {
	return func(c *Converter) {
		c.cfg.escapeHTML = escape
	}
}

// WithFileMode sets the permission for created output files.
// Panics if mode has no owner write bit (programmer error).
func WithFileMode(mode os.FileMode) Option {
	if mode&0o200 == 0 {
		panic("tinymd: WithFileMode mode must be owner-writable")
	}
	return func(c *Converter) {
		c.cfg.fileMode = mode
	}
}

// WithLogger sets the logger used for debug records during file conversion.
// The default logger discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = logger
	}
}
