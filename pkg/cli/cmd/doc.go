// Package cmd provides the command-line interface for testrig.
//
// This package contains the root command and its subcommands:
//   - apply: run the full pipeline against the configured backend
//   - render: record the pipeline as a plan document
//   - validate: load and normalize a test case without dispatching it
//   - init: scaffold a new testrig project
package cmd
