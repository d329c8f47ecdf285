// Package io provides utilities for input and output operations related to
// configuration management.
//
// Subpackages:
//   - config-manager: configuration loading and management
//   - generator: template and configuration generation
//   - marshaller: serialization and deserialization
//
// For low-level file I/O operations (writing, path manipulation), see the
// fsutil package.
package io
