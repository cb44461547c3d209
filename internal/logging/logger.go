// Package logging builds the console logger used by the CLI.
//
// Records render as "[ LEVEL ] message key=value". Error and fatal records go
// to the error writer; everything else goes to the output writer.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// New creates a logger writing human-readable lines to out and errOut.
func New(out, errOut io.Writer, level zerolog.Level) zerolog.Logger {
	w := &levelRouter{
		out: newConsoleWriter(out),
		err: newConsoleWriter(errOut),
	}
	return zerolog.New(w).Level(level)
}

// NewNop returns a logger that discards everything.
func NewNop() zerolog.Logger {
	return zerolog.Nop()
}

// levels are the names accepted in config files and TINYMD_LOG_LEVEL.
var levels = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

// ParseLevel maps a config or environment value to a zerolog level.
// An empty value means info. Only debug, info, warn and error are accepted.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, ok := levels[s]
	if !ok {
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q (must be debug, info, warn, or error)", s)
	}
	return level, nil
}

func newConsoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:         w,
		NoColor:     true,
		PartsOrder:  []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: formatLevel,
	}
}

// formatLevel renders the level column as "[ INFO ]".
func formatLevel(i any) string {
	level, ok := i.(string)
	if !ok || level == "" {
		return ""
	}
	if level == zerolog.LevelFatalValue || level == zerolog.LevelPanicValue {
		level = zerolog.LevelErrorValue
	}
	return "[ " + strings.ToUpper(level) + " ]"
}

// levelRouter sends error-and-above records to err and the rest to out.
type levelRouter struct {
	out io.Writer
	err io.Writer
}

var _ zerolog.LevelWriter = (*levelRouter)(nil)

func (r *levelRouter) Write(p []byte) (int, error) {
	return r.out.Write(p)
}

func (r *levelRouter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= zerolog.ErrorLevel && level < zerolog.NoLevel {
		return r.err.Write(p)
	}
	return r.out.Write(p)
}
