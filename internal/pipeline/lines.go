package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineSource defines the contract for reading a document as ordered lines.
type LineSource interface {
	ReadLines(r io.Reader) ([]string, error)
}

// FragmentSink defines the contract for writing tagged fragments.
type FragmentSink interface {
	WriteFragments(w io.Writer, fragments []string) (int64, error)
}

// TextLines reads and writes newline-delimited text.
type TextLines struct{}

// ReadLines splits r on '\n'. A trailing '\r' is stripped from each line and a
// final newline does not yield an extra empty line. Lines have no length limit.
func (TextLines) ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, trimLineEnding(line))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading lines: %w", err)
		}
	}
}

// WriteFragments writes fragments to w in order and reports the byte count.
func (TextLines) WriteFragments(w io.Writer, fragments []string) (int64, error) {
	var n int64
	for _, f := range fragments {
		written, err := io.WriteString(w, f)
		n += int64(written)
		if err != nil {
			return n, fmt.Errorf("writing fragment: %w", err)
		}
	}
	return n, nil
}

// SplitLines is the in-memory form of ReadLines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
