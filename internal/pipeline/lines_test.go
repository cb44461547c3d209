package pipeline

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestReadLines - Line splitting from a reader
// ---------------------------------------------------------------------------

func TestReadLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", nil},
		{"single newline", "\n", []string{""}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"crlf endings", "# T\r\nbody\r\n", []string{"# T", "body"}},
		{"lone carriage return kept mid-line", "a\rb\n", []string{"a\rb"}},
		{"two trailing newlines", "a\n\n", []string{"a", ""}},
	}

	for _, tt := range tests {

		tt := tt // per-iteration copy for Go < 1.22
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := TextLines{}.ReadLines(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ReadLines(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadLines(%q) = %q, want %q", tt.input, got, tt.want)
			}

			split := SplitLines(tt.input)
			if !reflect.DeepEqual(split, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.input, split, tt.want)
			}
		})
	}
}

func TestReadLines_LongLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 1<<20)
	got, err := TextLines{}.ReadLines(strings.NewReader(long + "\n"))
	if err != nil {
		t.Fatalf("ReadLines() error = %v", err)
	}
	if len(got) != 1 || len(got[0]) != len(long) {
		t.Errorf("ReadLines() returned %d lines, want 1 line of %d bytes", len(got), len(long))
	}
}

type failingReader struct{}

var errBrokenRead = errors.New("broken read")

func (failingReader) Read([]byte) (int, error) { return 0, errBrokenRead }

func TestReadLines_ReaderError(t *testing.T) {
	t.Parallel()

	_, err := TextLines{}.ReadLines(failingReader{})
	if !errors.Is(err, errBrokenRead) {
		t.Errorf("ReadLines() error = %v, want %v", err, errBrokenRead)
	}
}

// ---------------------------------------------------------------------------
// TestWriteFragments - Ordered concatenation
// ---------------------------------------------------------------------------

func TestWriteFragments(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	fragments := []string{"\n\n<h1>Title</h1>\n", "<p>Hello world</p>\n"}

	n, err := TextLines{}.WriteFragments(&buf, fragments)
	if err != nil {
		t.Fatalf("WriteFragments() error = %v", err)
	}
	want := "\n\n<h1>Title</h1>\n<p>Hello world</p>\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if n != int64(len(want)) {
		t.Errorf("n = %d, want %d", n, len(want))
	}
}

type limitedWriter struct {
	remaining int
}

var errDiskFull = errors.New("disk full")

func (w *limitedWriter) Write(p []byte) (int, error) {
	if len(p) > w.remaining {
		n := w.remaining
		w.remaining = 0
		return n, errDiskFull
	}
	w.remaining -= len(p)
	return len(p), nil
}

func TestWriteFragments_WriterError(t *testing.T) {
	t.Parallel()

	w := &limitedWriter{remaining: 5}
	n, err := TextLines{}.WriteFragments(w, []string{"<p>a</p>\n", "<p>b</p>\n"})
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("WriteFragments() error = %v, want %v", err, errDiskFull)
	}
	if n != 5 {
		t.Errorf("n = %d, want 5", n)
	}
}

// ---------------------------------------------------------------------------
// TestPipeline_CRLFMatchesLF - Line endings do not change output
// ---------------------------------------------------------------------------

func TestPipeline_CRLFMatchesLF(t *testing.T) {
	t.Parallel()

	lf := "# Title\nHello world\n\n# Next\n"
	crlf := strings.ReplaceAll(lf, "\n", "\r\n")
	tagger := &Tagger{}

	got := tagger.Tag(SplitLines(crlf))
	want := tagger.Tag(SplitLines(lf))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CRLF fragments = %q, want %q", got, want)
	}
}
