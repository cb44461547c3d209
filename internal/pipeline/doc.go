// Package pipeline implements the line-to-HTML conversion stages:
//   - splitting a document into lines (LF or CRLF)
//   - tagging each line as a <p> paragraph or an <h1> heading
//   - writing the tagged fragments, in order, to an output
//
// Tagging is strictly line-oriented. Each source line produces its own
// element; nested Markdown constructs are not recognized.
package pipeline
