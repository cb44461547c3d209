// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"path/filepath"
	"strings"
)

// ForInputNotFound returns hints for an unreadable input file.
func ForInputNotFound(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return format("input must be a file, not a directory")
	}

	var hints []string
	if !strings.HasSuffix(path, ".md") {
		hints = append(hints, "tinymd expects a .md file")
	}
	hints = append(hints, "check the path exists and is readable")
	return formatHints(hints)
}

// ForOutputWrite returns hints for an output file that cannot be created.
func ForOutputWrite(path string) string {
	dir := filepath.Dir(path)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return format(path + " is a directory; rename it or move the input")
	}
	return format("check " + dir + " exists and is writable")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/tinymd/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUsage points at the help text.
func ForUsage() string {
	return format("run 'tinymd --help' for usage")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
