package metadata

import (
	"errors"
	"fmt"
)

// Sentinel errors for metadata package.
var (
	// ErrMalformedRecord is returned when a metadata row cannot be decoded.
	ErrMalformedRecord = errors.New("metadata: malformed record")

	// ErrMissingColumn is returned when a CSV header lacks a required column.
	ErrMissingColumn = errors.New("metadata: missing column")

	// ErrEmptyCodepoints is returned when a codepoint sequence has no values.
	ErrEmptyCodepoints = errors.New("metadata: empty codepoint sequence")
)

// RecordError locates a malformed record in its source.
type RecordError struct {
	Source string
	Line   int
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("metadata: %s:%d: %v", e.Source, e.Line, e.Err)
}

// Unwrap makes errors.Is(err, ErrMalformedRecord) hold for every RecordError.
func (e *RecordError) Unwrap() []error {
	return []error{ErrMalformedRecord, e.Err}
}
