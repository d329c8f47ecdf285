package errorhandler

import "strings"

// CommandError is a command failure with the captured stderr text attached.
// The original error stays reachable through Unwrap so errors.Is and
// errors.As keep working across the executor boundary.
type CommandError struct {
	message string
	cause   error
}

// Error prefers the captured message and falls back to the cause. When both
// are present and the message does not already contain the cause, the two
// are joined so no detail is lost.
func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.cause == nil:
		return e.message
	case e.message != "":
		if strings.Contains(e.message, e.cause.Error()) {
			return e.message
		}

		return e.message + ": " + e.cause.Error()
	default:
		return e.cause.Error()
	}
}

// Unwrap returns the underlying cause.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}
