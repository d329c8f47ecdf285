// Package cli provides reusable helpers for command wiring and execution.
//
// This package is organized into subpackages for different functionality:
//
//   - cli/cmd: the root command and its subcommands
//   - cli/ui: user interface components (asciiart, errorhandler)
//
// The utilities in this package follow dependency injection patterns and
// integrate with the testrig runtime container for testability.
package cli
