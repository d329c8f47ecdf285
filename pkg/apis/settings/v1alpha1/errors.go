package v1alpha1

import "errors"

// ErrInvalidAPIVersion is returned when testrig.yaml declares an unknown apiVersion.
var ErrInvalidAPIVersion = errors.New("invalid apiVersion")

// ErrInvalidKind is returned when testrig.yaml declares an unknown kind.
var ErrInvalidKind = errors.New("invalid kind")

// ErrInvalidBackend is returned when an unknown configurator backend is specified.
var ErrInvalidBackend = errors.New("invalid backend")

// ErrEmptyOutputPath is returned when a file-producing backend has no output path.
var ErrEmptyOutputPath = errors.New("output path must not be empty")
