package cmd

import (
	"github.com/spf13/cobra"

	sharedcmd "github.com/testrig-dev/testrig/pkg/cmd"
	runtime "github.com/testrig-dev/testrig/pkg/di"
	settingsconfigmanager "github.com/testrig-dev/testrig/pkg/io/config-manager/settings"
)

// newApplyPipelineConfig creates the pipeline configuration for apply.
func newApplyPipelineConfig() sharedcmd.PipelineConfig {
	return sharedcmd.PipelineConfig{
		TitleEmoji:      "🚀",
		TitleContent:    "Apply test case...",
		ActivityContent: "applying test case",
		SuccessContent:  "test case applied",
	}
}

// NewApplyCmd wires the apply command using the shared runtime container.
func NewApplyCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the test case to the configured backend",
		Long: `Load the test case, merge machine defaults, and drive the configured ` +
			`backend with the normalized machines.`,
		SilenceUsage: true,
	}

	cfgManager := settingsconfigmanager.NewCommandConfigManager(
		cmd,
		settingsconfigmanager.DefaultFieldSelectors(),
	)

	cmd.RunE = sharedcmd.NewStandardPipelineRunE(
		runtimeContainer,
		cfgManager,
		newApplyPipelineConfig(),
	)

	return cmd
}
