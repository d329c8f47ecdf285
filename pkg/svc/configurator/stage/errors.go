package stage

import "errors"

// ErrUnsupportedOption is returned when an options key has no registered setter.
var ErrUnsupportedOption = errors.New("unsupported option")

// ErrUnsupportedMethod is returned when a methods key has no registered method.
var ErrUnsupportedMethod = errors.New("unsupported method")
