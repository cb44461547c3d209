// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// HTML output naming.
const (
	HTMLExtension = ".html"

	// replacedSuffixLen is the number of trailing characters swapped for
	// HTMLExtension, sized for ".md".
	replacedSuffixLen = 3
)

// HTMLOutputPath derives the output path for inputPath by replacing its last
// three characters with ".html". The rule is positional, not extension-aware:
// "notes.txt" becomes "notes..html" and "a.markdown" becomes "a.markd.html".
// Paths shorter than three characters are replaced entirely.
func HTMLOutputPath(inputPath string) string {
	end := len(inputPath)
	for i := 0; i < replacedSuffixLen && end > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(inputPath[:end])
		end -= size
	}
	return inputPath[:end] + HTMLExtension
}

// WriteFile creates or truncates path and fills it through write.
// The returned count is whatever write reports; a failed close is an error
// even when write succeeded.
func WriteFile(path string, perm os.FileMode, write func(io.Writer) (int64, error)) (int64, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm) // #nosec G304 -- path derived from user input
	if err != nil {
		return 0, err
	}

	n, writeErr := write(f)
	if closeErr := f.Close(); closeErr != nil && writeErr == nil {
		return n, fmt.Errorf("closing %s: %w", path, closeErr)
	}
	return n, writeErr
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "tinymd" -> false (name)
//   - "./tinymd.yaml" -> true (relative path)
//   - "/etc/tinymd.yaml" -> true (absolute)
//   - "C:\cfg\tinymd.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
