package document

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput matches any *MalformedInputError via errors.Is.
	ErrMalformedInput = errors.New("malformed input")
	// ErrWrite matches any *WriteError via errors.Is.
	ErrWrite = errors.New("write failed")
)

// MalformedInputError reports a source document that cannot be read, is not
// JSON, or does not have the {"Items": [...]} shape.
type MalformedInputError struct {
	Path   string
	Index  int // offending item, -1 when the whole document is at fault
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	msg := "malformed input"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Index >= 0 {
		msg += fmt.Sprintf(": item %d", e.Index)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// Is reports ErrMalformedInput as a match.
func (e *MalformedInputError) Is(target error) bool { return target == ErrMalformedInput }

// WriteError reports a destination that could not be written. The previous
// content at Path, if any, is left untouched.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is reports ErrWrite as a match.
func (e *WriteError) Is(target error) bool { return target == ErrWrite }
