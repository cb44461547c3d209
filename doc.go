// Package tinymd converts Markdown documents to HTML, one line at a time.
//
// # Quick Start
//
// Tag lines directly:
//
//	fragments := tinymd.Tag([]string{"# Title", "Hello world"})
//	// ["\n\n<h1>Title</h1>\n", "<p>Hello world</p>\n"]
//
// Or convert a file next to its source:
//
//	conv := tinymd.NewConverter()
//	result, err := conv.ConvertFile(ctx, "notes.md")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath) // notes.html
//
// # Tagging Rules
//
// Every source line becomes exactly one fragment:
//
//   - A line starting with '#' becomes "\n\n<h1>" + content + "</h1>\n",
//     where content drops the first two characters (the marker and its separator).
//   - Any other line becomes "<p>" + line + "</p>\n".
//   - An empty line would become "<p></p>\n" and is dropped instead.
//
// Consecutive lines are never merged: a multi-line paragraph produces one
// <p> element per line. Lists, emphasis, links, code blocks and other nested
// constructs are not recognized and pass through as paragraph text.
//
// # Output Path
//
// ConvertFile writes to the input path with its last three characters replaced
// by ".html" ("doc.md" -> "doc.html", "notes.txt" -> "notes..html"), overwriting
// any existing file.
//
// # Escaping
//
// Line content is emitted raw by default, so inline HTML in the source reaches
// the output. Use WithEscapeHTML(true) to escape <, >, & and " in content.
//
// # Errors
//
// File conversion reports ErrInputNotFound when the source cannot be read and
// ErrOutputWriteFailed when the destination cannot be created or written.
// Both wrap the underlying *os.PathError:
//
//	if errors.Is(err, tinymd.ErrInputNotFound) {
//	    // input path missing or unreadable
//	}
//
// Tagging itself never fails.
package tinymd
