package cdata

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownField is returned when a field has no rule in the table's schema.
	ErrUnknownField = errors.New("unknown field")
	// ErrMalformedRecord is returned for lines that do not split into the
	// expected key, field or value shape.
	ErrMalformedRecord = errors.New("malformed record")
)

// ParseError reports the source line a table conversion stopped at.
type ParseError struct {
	Table string
	Line  int
	Text  string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: %v: %q", e.Table, e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedRecord, fmt.Sprintf(format, args...))
}
