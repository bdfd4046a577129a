package splitter

import (
	"regexp"
	"strings"
)

// blankRun matches two or more consecutive line breaks. CRLF files use the
// same rule so blank lines separate blocks regardless of platform.
var blankRun = regexp.MustCompile(`(?:\r?\n){2,}`)

// Segment is one non-blank block of text between blank-line runs.
type Segment struct {
	// Index is the position among kept segments.
	Index int
	Text  string
}

// Split breaks text into segments, dropping blocks that are empty or
// whitespace only. Order is preserved.
func Split(text string) []Segment {
	pieces := blankRun.Split(text, -1)
	segments := make([]Segment, 0, len(pieces))
	for _, piece := range pieces {
		if isBlank(piece) {
			continue
		}
		segments = append(segments, Segment{Index: len(segments), Text: piece})
	}
	return segments
}

func isBlank(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}
