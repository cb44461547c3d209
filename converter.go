package tinymd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-tinymd/internal/fileutil"
	"github.com/alnah/go-tinymd/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.LineTagger   = (*pipeline.Tagger)(nil)
	_ pipeline.LineSource   = pipeline.TextLines{}
	_ pipeline.FragmentSink = pipeline.TextLines{}
)

// Converter tags Markdown lines and writes the resulting HTML.
// A Converter holds no per-document state and is safe for concurrent use.
type Converter struct {
	cfg    converterConfig
	tagger *pipeline.Tagger
	source pipeline.LineSource
	sink   pipeline.FragmentSink
	now    func() time.Time
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithEscapeHTML, WithLogger).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			fileMode: DefaultFileMode,
			logger:   zerolog.Nop(),
		},
		source: pipeline.TextLines{},
		sink:   pipeline.TextLines{},
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.tagger = &pipeline.Tagger{EscapeHTML: c.cfg.escapeHTML}
	return c
}

// Tag converts lines to HTML fragments, one per non-blank line, in order.
func (c *Converter) Tag(lines []string) []string {
	return c.tagger.Tag(lines)
}

// ConvertString converts a whole Markdown document held in memory.
// LF and CRLF line endings are both accepted.
func (c *Converter) ConvertString(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var b strings.Builder
	if _, err := c.sink.WriteFragments(&b, c.tagger.Tag(pipeline.SplitLines(markdown))); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ConvertFile converts the Markdown file at inputPath and writes the HTML to
// OutputPath(inputPath), replacing any existing file. The input is read in
// full before the output is created. Cancellation is checked before reading
// and before writing; a partially written output is left in place.
func (c *Converter) ConvertFile(ctx context.Context, inputPath string) (*Result, error) {
	start := c.now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines, err := c.readLines(inputPath)
	if err != nil {
		return nil, err
	}

	fragments, stats := c.tagger.TagWithStats(lines)
	c.cfg.logger.Debug().
		Int("lines", stats.Lines).
		Int("fragments", stats.Fragments).
		Int("suppressed", stats.Suppressed).
		Msg("lines tagged")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outputPath := OutputPath(inputPath)
	n, err := fileutil.WriteFile(outputPath, c.cfg.fileMode, func(w io.Writer) (int64, error) {
		return c.sink.WriteFragments(w, fragments)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutputWriteFailed, err)
	}

	result := &Result{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Lines:      stats.Lines,
		Fragments:  stats.Fragments,
		Suppressed: stats.Suppressed,
		Bytes:      n,
		Duration:   c.now().Sub(start),
	}
	c.cfg.logger.Debug().
		Str("output", outputPath).
		Int64("bytes", n).
		Dur("duration", result.Duration).
		Msg("output written")

	return result, nil
}

// readLines opens and splits the input file.
func (c *Converter) readLines(inputPath string) ([]string, error) {
	f, err := os.Open(inputPath) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
	}
	defer func() { _ = f.Close() }()

	lines, err := c.source.ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, inputPath, err)
	}
	return lines, nil
}
