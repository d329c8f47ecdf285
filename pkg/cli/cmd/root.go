package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/testrig-dev/testrig/pkg/cli/ui/asciiart"
	"github.com/testrig-dev/testrig/pkg/cli/ui/errorhandler"
	sharedcmd "github.com/testrig-dev/testrig/pkg/cmd"
	runtime "github.com/testrig-dev/testrig/pkg/di"
)

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	runtimeContainer := runtime.NewRuntime()

	cmd := &cobra.Command{
		Use:              "testrig",
		Short:            "testrig translates declarative test cases into machine configuration",
		Long:             "testrig translates declarative test cases into machine configuration",
		RunE:             handleRootRunE,
		PersistentPreRun: configureLogging,
		SilenceUsage:     true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().Bool(
		sharedcmd.TimingFlagName,
		false,
		"Show per-activity timing output",
	)
	cmd.PersistentFlags().Bool(
		sharedcmd.VerboseFlagName,
		false,
		"Enable debug logging",
	)

	cmd.AddCommand(NewApplyCmd(runtimeContainer))
	cmd.AddCommand(NewRenderCmd(runtimeContainer))
	cmd.AddCommand(NewValidateCmd(runtimeContainer))
	cmd.AddCommand(NewInitCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// --- internals ---

// handleRootRunE handles the root command.
func handleRootRunE(
	cmd *cobra.Command,
	_ []string,
) error {
	asciiart.PrintTestrigLogo(cmd.OutOrStdout())

	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}

// configureLogging sets the log level from the verbose flag. Normal runs stay
// at warn level so debug traces from the dispatcher are opt-in.
func configureLogging(cmd *cobra.Command, _ []string) {
	logrus.SetLevel(logrus.WarnLevel)

	verbose, err := cmd.Flags().GetBool(sharedcmd.VerboseFlagName)
	if err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
