package cmd

import (
	"fmt"

	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"

	sharedcmd "github.com/testrig-dev/testrig/pkg/cmd"
	runtime "github.com/testrig-dev/testrig/pkg/di"
	configmanager "github.com/testrig-dev/testrig/pkg/io/config-manager"
	settingsconfigmanager "github.com/testrig-dev/testrig/pkg/io/config-manager/settings"
	"github.com/testrig-dev/testrig/pkg/notify"
	"github.com/testrig-dev/testrig/pkg/svc/scaffolder"
	"github.com/testrig-dev/testrig/pkg/ui/timer"
)

// nextStepsWidth is the column the init next-steps paragraph wraps at.
const nextStepsWidth = 80

const nextSteps = `Point TEST_CASE_CONFIG at the scaffolded test case (or set ` +
	`spec.testCasePath in testrig.yaml), adjust the machines and defaults to ` +
	`match your test bed, and run 'testrig apply' to produce the machine ` +
	`configuration. Use 'testrig render' to inspect the dispatched ` +
	`configuration without writing a Vagrantfile.`

// NewInitCmd wires the init command using the shared runtime container.
func NewInitCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Scaffold a new testrig project",
		Long:         `Generate testrig.yaml, an example test case, and a machine defaults file.`,
		SilenceUsage: true,
	}

	cfgManager := settingsconfigmanager.NewCommandConfigManager(
		cmd,
		settingsconfigmanager.DefaultFieldSelectors(),
	)

	var output string

	cmd.Flags().StringVar(&output, "output", ".",
		"Directory to scaffold project files into")

	cmd.RunE = runtime.RunEWithRuntime(
		runtimeContainer,
		runtime.WithTimer(
			func(cmd *cobra.Command, _ runtime.Injector, tmr timer.Timer) error {
				return handleInitRunE(cmd, cfgManager, tmr, output)
			},
		),
	)

	return cmd
}

func handleInitRunE(
	cmd *cobra.Command,
	cfgManager *settingsconfigmanager.ConfigManager,
	tmr timer.Timer,
	output string,
) error {
	if tmr != nil {
		tmr.Start()
	}

	outputTimer := sharedcmd.MaybeTimer(cmd, tmr)

	cfg, err := cfgManager.Load(configmanager.LoadOptions{Silent: true})
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	notify.Titlef(cmd.OutOrStdout(), "✨", "Initialize project...")

	projectScaffolder := scaffolder.NewScaffolder(*cfg, cmd.OutOrStdout())

	err = projectScaffolder.Scaffold(output, cfg.Spec.Force)
	if err != nil {
		return err
	}

	notify.SuccessWithTimerf(cmd.OutOrStdout(), outputTimer, "project initialized")

	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), wordwrap.WrapString(nextSteps, nextStepsWidth))

	return nil
}
