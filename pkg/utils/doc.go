// Package utils provides utility packages for common operations.
//
// This package contains subpackages with utility functions used across
// the testrig codebase:
//
//   - envvar: environment variable placeholder expansion
//   - merge: recursive defaults merging for YAML mappings
//
// These utilities are designed to be simple, focused, and reusable across
// different parts of the application.
package utils
