package pipeline

import (
	"strings"

	"github.com/yuin/goldmark/util"
)

// Tag vocabulary emitted by the tagger.
const (
	headingMarker = '#'
	headingOpen   = "\n\n<h1>"
	headingClose  = "</h1>\n"
	paraOpen      = "<p>"
	paraClose     = "</p>\n"

	// emptyParagraph is the fragment produced by a blank line; it is never emitted.
	emptyParagraph = paraOpen + paraClose

	// headingContentOffset is the number of characters dropped from a heading
	// line: the marker and the separator that follows it.
	headingContentOffset = 2
)

// tagState records which tag is open while a single line is being tagged.
// Every line starts and ends in stateNone.
type tagState int

const (
	stateNone tagState = iota
	stateParagraph
	stateHeading
)

func (s tagState) String() string {
	switch s {
	case stateParagraph:
		return "paragraph"
	case stateHeading:
		return "heading"
	default:
		return "none"
	}
}

// LineTagger defines the contract for turning source lines into HTML fragments.
type LineTagger interface {
	Tag(lines []string) []string
}

// Tagger wraps each source line in a <p> or <h1> element.
// The zero value emits line content unmodified.
type Tagger struct {
	// EscapeHTML escapes markup characters in line content before tagging.
	EscapeHTML bool
}

// TagStats summarizes a tagging pass.
type TagStats struct {
	Lines      int
	Fragments  int
	Suppressed int
}

// Tag converts lines to fragments, dropping blank paragraphs.
func (t *Tagger) Tag(lines []string) []string {
	fragments, _ := t.TagWithStats(lines)
	return fragments
}

// TagWithStats is Tag plus counts of what was kept and dropped.
func (t *Tagger) TagWithStats(lines []string) ([]string, TagStats) {
	stats := TagStats{Lines: len(lines)}
	fragments := make([]string, 0, len(lines))

	state := stateNone
	for _, line := range lines {
		var fragment string
		fragment, state = t.tagLine(state, line)
		if fragment == emptyParagraph {
			stats.Suppressed++
			continue
		}
		fragments = append(fragments, fragment)
	}

	stats.Fragments = len(fragments)
	return fragments, stats
}

// tagLine applies the per-line transition and returns the fragment and the
// state carried into the next line, which is always stateNone.
func (t *Tagger) tagLine(state tagState, line string) (string, tagState) {
	var b strings.Builder

	if isHeading(line) {
		state = closeTag(&b, state)
		state = stateHeading
		b.WriteString(headingOpen)
		b.WriteString(t.content(headingContent(line)))
	} else {
		if state != stateParagraph {
			state = stateParagraph
			b.WriteString(paraOpen)
		}
		b.WriteString(t.content(line))
	}

	state = closeTag(&b, state)
	return b.String(), state
}

// closeTag writes the closing tag for state, if any, and returns stateNone.
func closeTag(b *strings.Builder, state tagState) tagState {
	switch state {
	case stateParagraph:
		b.WriteString(paraClose)
	case stateHeading:
		b.WriteString(headingClose)
	}
	return stateNone
}

func (t *Tagger) content(s string) string {
	if !t.EscapeHTML || s == "" {
		return s
	}
	return string(util.EscapeHTML([]byte(s)))
}

func isHeading(line string) bool {
	return line != "" && line[0] == headingMarker
}

// headingContent drops the marker and the following character.
// Offsets count runes so a multi-byte separator is never split; lines
// shorter than the offset yield empty content.
func headingContent(line string) string {
	skipped := 0
	for i := range line {
		if skipped == headingContentOffset {
			return line[i:]
		}
		skipped++
	}
	return ""
}
