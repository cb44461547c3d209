package tinymd

import "github.com/alnah/go-tinymd/internal/fileutil"

// defaultConverter backs the package-level helpers.
var defaultConverter = NewConverter()

// Tag converts lines to HTML fragments using default options.
func Tag(lines []string) []string {
	return defaultConverter.Tag(lines)
}

// OutputPath returns the HTML path ConvertFile writes for inputPath: the
// input with its last three characters replaced by ".html".
func OutputPath(inputPath string) string {
	return fileutil.HTMLOutputPath(inputPath)
}
