package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	settingsv1alpha1 "github.com/testrig-dev/testrig/pkg/apis/settings/v1alpha1"
	sharedcmd "github.com/testrig-dev/testrig/pkg/cmd"
	runtime "github.com/testrig-dev/testrig/pkg/di"
	configmanager "github.com/testrig-dev/testrig/pkg/io/config-manager"
	settingsconfigmanager "github.com/testrig-dev/testrig/pkg/io/config-manager/settings"
	"github.com/testrig-dev/testrig/pkg/notify"
)

// NewValidateCmd wires the validate command using the shared runtime container.
// Validate loads and normalizes the test case without dispatching it, so a
// broken machine definition surfaces before any backend output is produced.
func NewValidateCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "validate",
		Short:        "Validate the test case without applying it",
		Long:         `Load the test case, merge machine defaults, and report the normalized machines.`,
		SilenceUsage: true,
	}

	cfgManager := settingsconfigmanager.NewCommandConfigManager(
		cmd,
		[]settingsconfigmanager.FieldSelector[settingsv1alpha1.Settings]{
			settingsconfigmanager.DefaultTestCasePathFieldSelector(),
			settingsconfigmanager.DefaultMachineDefaultsPathFieldSelector(),
		},
	)

	cmd.RunE = sharedcmd.WrapPipelineHandler(
		runtimeContainer,
		func(cmd *cobra.Command, deps sharedcmd.PipelineDeps) error {
			return handleValidateRunE(cmd, cfgManager, deps)
		},
	)

	return cmd
}

func handleValidateRunE(
	cmd *cobra.Command,
	cfgManager *settingsconfigmanager.ConfigManager,
	deps sharedcmd.PipelineDeps,
) error {
	if deps.Timer != nil {
		deps.Timer.Start()
	}

	outputTimer := sharedcmd.MaybeTimer(cmd, deps.Timer)

	cfg, err := cfgManager.Load(configmanager.LoadOptions{Timer: outputTimer})
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if deps.Timer != nil {
		deps.Timer.NewStage()
	}

	testCase, err := sharedcmd.LoadTestCase(cmd, cfg, outputTimer)
	if err != nil {
		return err
	}

	for _, machine := range testCase.Machines {
		notify.Infof(cmd.OutOrStdout(), "machine '%s' (host '%s', ip %s)",
			machine.Name, machine.HostName, machine.PrivateIP)
	}

	notify.SuccessWithTimerf(cmd.OutOrStdout(), outputTimer,
		"test case is valid (%d machine(s))", len(testCase.Machines))

	return nil
}
