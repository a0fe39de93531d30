package mapping

import (
	"errors"
	"fmt"
)

var (
	// ErrMapping matches any *MappingError via errors.Is.
	ErrMapping = errors.New("mapping failed")
	// ErrInvalidTable is returned by Table.Validate and NewMapper.
	ErrInvalidTable = errors.New("invalid mapping table")
)

// MappingError reports a record that cannot be mapped: a required field is
// absent, or the park identifier is not an integer.
type MappingError struct {
	Index  int
	Field  string
	Reason string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("item %d: field %q: %s", e.Index, e.Field, e.Reason)
}

// Is reports ErrMapping as a match.
func (e *MappingError) Is(target error) bool { return target == ErrMapping }

const reasonMissing = "required field missing"
