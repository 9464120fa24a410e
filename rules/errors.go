package rules

import "fmt"

// Error describes a single refinement rule failure.
type Error struct {
	Rule    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Message)
}

func fail(rule, format string, args ...any) *Error {
	return &Error{Rule: rule, Message: fmt.Sprintf(format, args...)}
}
