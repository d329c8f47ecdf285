// Package errorhandler runs the root command and turns cobra failures into
// a single presentable error. Cobra writes its own messages to stderr while
// also returning an error; the executor captures that stream so main can
// print one cleaned-up message instead of two overlapping ones.
package errorhandler

import (
	"bytes"
	"strings"

	"github.com/spf13/cobra"
)

// Executor runs a cobra command with its error stream captured.
type Executor struct{}

// NewExecutor creates an executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs cmd and returns nil on success or a *CommandError carrying
// the cleaned-up stderr text and the original error as its cause.
func (e *Executor) Execute(cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var stderr bytes.Buffer

	previous := cmd.ErrOrStderr()

	cmd.SetErr(&stderr)
	defer cmd.SetErr(previous)

	err := cmd.Execute()
	if err == nil {
		return nil
	}

	return &CommandError{
		message: cleanStderr(stderr.String()),
		cause:   err,
	}
}

// cleanStderr trims the captured stream and drops cobra's "Error: " prefix
// from the first line. Follow-up lines such as usage hints stay intact.
func cleanStderr(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	lines := strings.Split(trimmed, "\n")
	lines[0] = strings.TrimPrefix(strings.TrimSpace(lines[0]), "Error: ")

	return strings.Join(lines, "\n")
}
