package cmd

import (
	"github.com/spf13/cobra"

	settingsv1alpha1 "github.com/testrig-dev/testrig/pkg/apis/settings/v1alpha1"
	sharedcmd "github.com/testrig-dev/testrig/pkg/cmd"
	runtime "github.com/testrig-dev/testrig/pkg/di"
	settingsconfigmanager "github.com/testrig-dev/testrig/pkg/io/config-manager/settings"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/factory"
)

// NewRenderCmd wires the render command using the shared runtime container.
// Render always drives the plan backend so the dispatched configuration can
// be inspected without producing a Vagrantfile.
func NewRenderCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "render",
		Short:        "Render the dispatched configuration as a plan document",
		Long:         `Run the pipeline against the plan backend and print the recorded plan as YAML.`,
		SilenceUsage: true,
	}

	cfgManager := settingsconfigmanager.NewCommandConfigManager(
		cmd,
		[]settingsconfigmanager.FieldSelector[settingsv1alpha1.Settings]{
			settingsconfigmanager.DefaultTestCasePathFieldSelector(),
			settingsconfigmanager.DefaultMachineDefaultsPathFieldSelector(),
		},
	)

	var (
		output string
		force  bool
	)

	cmd.Flags().StringVarP(&output, "output", "o", "",
		"Write the plan to a file instead of stdout")
	cmd.Flags().BoolVar(&force, "force", false,
		"Overwrite an existing plan file")

	config := sharedcmd.PipelineConfig{
		TitleEmoji:      "📄",
		TitleContent:    "Render plan...",
		ActivityContent: "rendering plan",
		SuccessContent:  "plan rendered",
		SelectBackend: func(
			cmd *cobra.Command,
			_ *settingsv1alpha1.Settings,
		) sharedcmd.BackendSelection {
			return sharedcmd.BackendSelection{
				Backend: settingsv1alpha1.BackendPlan,
				Options: factory.Options{
					Output: output,
					Force:  force,
					Writer: cmd.OutOrStdout(),
				},
			}
		},
	}

	cmd.RunE = sharedcmd.NewStandardPipelineRunE(runtimeContainer, cfgManager, config)

	return cmd
}
