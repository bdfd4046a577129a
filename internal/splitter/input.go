package splitter

import (
	"os"

	"pgnsplit/internal/textcodec"
)

// ReadInput reads and decodes the whole input file. Every failure, including
// undecodable content, is returned as a *ReadError.
func ReadInput(path, encoding string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	text, err := textcodec.Decode(data, encoding)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return text, nil
}

// Plan is the eager result of reading, segmenting, and pairing one input.
type Plan struct {
	InputPath string
	Segments  []Segment
	Games     []Game
}

// BuildPlan reads path and computes every game before anything is written.
func BuildPlan(path, encoding string, strict bool) (*Plan, error) {
	text, err := ReadInput(path, encoding)
	if err != nil {
		return nil, err
	}
	segments := Split(text)
	games, err := Pair(segments, strict)
	if err != nil {
		return nil, err
	}
	return &Plan{InputPath: path, Segments: segments, Games: games}, nil
}
