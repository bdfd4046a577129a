package splitter

import (
	"errors"
	"fmt"
)

var (
	// ErrUnpaired is returned by strict pairing when a trailing block has no partner.
	ErrUnpaired = errors.New("unpaired trailing block")
	// ErrLocked indicates another run currently holds the dataset lock.
	ErrLocked = errors.New("dataset is locked by another run")
)

// ReadError reports that the input file could not be read or decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports that one game could not be written.
type WriteError struct {
	Index int
	Path  string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write game %d to %s: %v", e.Index, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
