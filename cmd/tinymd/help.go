package main

import (
	"fmt"
	"io"
)

// Program identity shown in banners.
const (
	appName     = "tinymd"
	description = "a tiny Markdown to HTML converter"
	authors     = "the tinymd authors"
	homepage    = "https://github.com/alnah/go-tinymd"
)

// printShortBanner prints "tinymd (vX), description".
func printShortBanner(w io.Writer) {
	fmt.Fprintf(w, "%s (v%s), %s\n", appName, Version, description)
}

// printLongBanner prints the short banner, credits and the usage line.
func printLongBanner(w io.Writer) {
	printShortBanner(w)
	fmt.Fprintf(w, "Written by: %s\nHomepage: %s\n", authors, homepage)
	fmt.Fprintf(w, "Usage: %s <somefile>.md\n", appName)
	fmt.Fprintln(w)
}

// printHelp prints the long banner followed by flags and environment variables.
func printHelp(w io.Writer) {
	printLongBanner(w)
	fmt.Fprintln(w, "Converts <somefile>.md to <somefile>.html in the same directory.")
	fmt.Fprintln(w, "The last three characters of the path are replaced by .html.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, flagUsages())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TINYMD_CONFIG        config file name or path")
	fmt.Fprintln(w, "  TINYMD_ESCAPE_HTML   escape line content (true/false)")
	fmt.Fprintln(w, "  TINYMD_LOG_LEVEL     debug, info, warn, error")
}
