package splitter

import (
	"fmt"
	"strings"
)

// Game is one output unit: a tag section followed by its movetext, or a lone
// trailing block when the input had an odd number of segments.
type Game struct {
	Index    int
	Segments []Segment
}

// Text joins the member segments with a single newline.
func (g Game) Text() string {
	switch len(g.Segments) {
	case 0:
		return ""
	case 1:
		return g.Segments[0].Text
	}
	parts := make([]string, len(g.Segments))
	for i, seg := range g.Segments {
		parts[i] = seg.Text
	}
	return strings.Join(parts, "\n")
}

// Partial reports whether the game is missing its second block.
func (g Game) Partial() bool {
	return len(g.Segments) < 2
}

// FirstLine returns the first non-blank line of the game's first block.
func (g Game) FirstLine() string {
	if len(g.Segments) == 0 {
		return ""
	}
	return firstLine(g.Segments[0].Text)
}

// FileName returns the fixture file name for the game within dataset.
func (g Game) FileName(dataset string) string {
	return fmt.Sprintf("%s-%d.pgn", dataset, g.Index)
}

// Pair groups segments at positions (0,1), (2,3), and so on. A trailing odd
// segment becomes a single-segment game unless strict is set, in which case
// ErrUnpaired is returned and no games are produced.
func Pair(segments []Segment, strict bool) ([]Game, error) {
	if strict && len(segments)%2 != 0 {
		return nil, fmt.Errorf("%w: %d blocks, last starts %q", ErrUnpaired, len(segments), firstLine(segments[len(segments)-1].Text))
	}
	games := make([]Game, 0, (len(segments)+1)/2)
	for i := 0; i < len(segments); i += 2 {
		end := min(i+2, len(segments))
		games = append(games, Game{Index: i / 2, Segments: segments[i:end]})
	}
	return games, nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexAny(s, "\r\n"); idx >= 0 {
		return s[:idx]
	}
	return s
}
