package tinymd_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-tinymd"
)

// Example demonstrates tagging lines directly.
func Example() {
	fragments := tinymd.Tag([]string{"# Title", "Hello world", "", "# Next"})
	for _, f := range fragments {
		fmt.Printf("%q\n", f)
	}
	// Output:
	// "\n\n<h1>Title</h1>\n"
	// "<p>Hello world</p>\n"
	// "\n\n<h1>Next</h1>\n"
}

// ExampleConverter_ConvertString demonstrates converting an in-memory document.
func ExampleConverter_ConvertString() {
	conv := tinymd.NewConverter(tinymd.WithEscapeHTML(true))

	html, err := conv.ConvertString(context.Background(), "# Fish & Chips\nserved <hot>\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(html)
	// Output:
	//
	//
	// <h1>Fish &amp; Chips</h1>
	// <p>served &lt;hot&gt;</p>
}

// ExampleConverter_ConvertFile demonstrates converting a file next to its source.
func ExampleConverter_ConvertFile() {
	dir, err := os.MkdirTemp("", "tinymd-example")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer func() { _ = os.RemoveAll(dir) }()

	input := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(input, []byte("# Notes\nfirst line\n\nsecond line\n"), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := tinymd.NewConverter().ConvertFile(context.Background(), input)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(filepath.Base(result.OutputPath), result.Fragments, result.Suppressed)
	// Output: notes.html 3 1
}

// ExampleOutputPath shows that the output path rule is positional.
func ExampleOutputPath() {
	fmt.Println(tinymd.OutputPath("notes.txt"))
	// Output: notes..html
}
