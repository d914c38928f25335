// core/deck/errors.go
package deck

import "fmt"

// MalformedError is fatal for the deck being parsed: the file structure
// violates an invariant (ragged rows, duplicate columns, missing required
// variables). Line is 1-based; 0 means the problem is file-level.
type MalformedError struct {
	Name   string
	Line   int
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Name, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Reason)
}

func malformed(name string, line int, format string, a ...any) *MalformedError {
	return &MalformedError{Name: name, Line: line, Reason: fmt.Sprintf(format, a...)}
}

// Warning is non-fatal; parsing continues and warnings are collected on the
// resulting Table so callers can surface them once at the end.
type Warning struct {
	Line    int
	Column  string
	Message string
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s", w.Line, w.Message)
	}
	return w.Message
}
