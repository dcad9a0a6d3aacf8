package textview

import (
	"errors"
	"fmt"
)

// Errors returned by view operations.
var (
	// ErrIndexOutOfRange indicates an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ParseError reports a failed textual-to-value conversion. It carries the
// offending input so callers can surface it without retaining the view.
type ParseError struct {
	Input  string // the text that failed to parse
	Target string // the requested target type, e.g. "int" or "bool"
	Err    error  // underlying parser error, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s from %q: %v", e.Target, e.Input, e.Err)
	}
	return fmt.Sprintf("parse %s from %q", e.Target, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

// PatternError reports a separator set that could not be compiled by the
// pattern-matching collaborator. The escaping applied by SplitOn and
// SplitOnAny makes this unreachable in practice, but custom Splitter
// implementations may produce it.
type PatternError struct {
	Pattern string // the pattern source handed to the collaborator
	Err     error  // underlying compile error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("compile pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// indexError wraps ErrIndexOutOfRange with position context.
func indexError(i, length int) error {
	return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, length)
}
