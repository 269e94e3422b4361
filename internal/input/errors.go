package input

import (
	"errors"
	"fmt"
)

// ErrInvalidMass indicates an input line that does not parse as a base-10
// signed integer.
var ErrInvalidMass = errors.New("input line is not a valid mass")

// ParseError identifies the exact line that failed to parse. It unwraps to
// ErrInvalidMass so callers can match the failure class with errors.Is.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending content, whitespace already trimmed
	Err  error  // underlying strconv failure
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid mass %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidMass
}
