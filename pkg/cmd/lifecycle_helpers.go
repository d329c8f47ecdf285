// Package cmd provides shared helpers for commands that load settings and
// run the test case pipeline.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	settingsv1alpha1 "github.com/testrig-dev/testrig/pkg/apis/settings/v1alpha1"
	testcasev1alpha1 "github.com/testrig-dev/testrig/pkg/apis/testcase/v1alpha1"
	runtime "github.com/testrig-dev/testrig/pkg/di"
	configmanager "github.com/testrig-dev/testrig/pkg/io/config-manager"
	settingsconfigmanager "github.com/testrig-dev/testrig/pkg/io/config-manager/settings"
	testcaseconfigmanager "github.com/testrig-dev/testrig/pkg/io/config-manager/testcase"
	"github.com/testrig-dev/testrig/pkg/notify"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/factory"
	"github.com/testrig-dev/testrig/pkg/svc/dispatcher"
	"github.com/testrig-dev/testrig/pkg/ui/timer"
)

// BackendSelection describes which configurator backend a pipeline run drives
// and where its output goes.
type BackendSelection struct {
	Backend settingsv1alpha1.Backend
	Options factory.Options
}

// PipelineConfig describes the messaging and backend behavior for a command
// that dispatches a test case against a configurator backend.
type PipelineConfig struct {
	TitleEmoji      string
	TitleContent    string
	ActivityContent string
	SuccessContent  string
	// SelectBackend picks the backend and output destination from the
	// loaded settings. Nil selects the settings backend writing to the
	// configured output path.
	SelectBackend func(cmd *cobra.Command, cfg *settingsv1alpha1.Settings) BackendSelection
}

// PipelineDeps groups the injectable collaborators required by pipeline commands.
type PipelineDeps struct {
	Timer   timer.Timer
	Factory factory.Factory
}

// NewStandardPipelineRunE creates a standard RunE handler for commands that
// run the full pipeline: load settings, load the test case, and dispatch it
// to a configurator backend. The returned function can be assigned directly
// to a cobra.Command's RunE field.
func NewStandardPipelineRunE(
	runtimeContainer *runtime.Runtime,
	cfgManager *settingsconfigmanager.ConfigManager,
	config PipelineConfig,
) func(*cobra.Command, []string) error {
	return WrapPipelineHandler(
		runtimeContainer,
		func(cmd *cobra.Command, deps PipelineDeps) error {
			return HandlePipelineRunE(cmd, cfgManager, deps, config)
		},
	)
}

// WrapPipelineHandler resolves pipeline dependencies from the runtime
// container and invokes the provided handler function with those dependencies.
func WrapPipelineHandler(
	runtimeContainer *runtime.Runtime,
	handler func(*cobra.Command, PipelineDeps) error,
) func(*cobra.Command, []string) error {
	return runtime.RunEWithRuntime(
		runtimeContainer,
		runtime.WithTimer(
			func(cmd *cobra.Command, injector runtime.Injector, tmr timer.Timer) error {
				configuratorFactory, err := runtime.ResolveConfiguratorFactory(injector)
				if err != nil {
					return err
				}

				return handler(cmd, PipelineDeps{Timer: tmr, Factory: configuratorFactory})
			},
		),
	)
}

// HandlePipelineRunE orchestrates the standard pipeline workflow:
//  1. Start the timer and load the settings
//  2. Load and normalize the test case
//  3. Dispatch the machines to the selected configurator backend
//
// Dispatch errors are returned unchanged so backend messages reach the user
// unwrapped.
func HandlePipelineRunE(
	cmd *cobra.Command,
	cfgManager *settingsconfigmanager.ConfigManager,
	deps PipelineDeps,
	config PipelineConfig,
) error {
	if deps.Timer != nil {
		deps.Timer.Start()
	}

	outputTimer := MaybeTimer(cmd, deps.Timer)

	cfg, err := cfgManager.Load(configmanager.LoadOptions{Timer: outputTimer})
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if deps.Timer != nil {
		deps.Timer.NewStage()
	}

	return RunPipelineWithSettings(cmd, deps, config, cfg)
}

// RunPipelineWithSettings executes the pipeline using pre-loaded settings.
func RunPipelineWithSettings(
	cmd *cobra.Command,
	deps PipelineDeps,
	config PipelineConfig,
	cfg *settingsv1alpha1.Settings,
) error {
	showPipelineTitle(cmd, config.TitleEmoji, config.TitleContent)
	notify.Activityf(cmd.OutOrStdout(), "%s", config.ActivityContent)

	outputTimer := MaybeTimer(cmd, deps.Timer)

	testCase, err := LoadTestCase(cmd, cfg, outputTimer)
	if err != nil {
		return err
	}

	if deps.Timer != nil {
		deps.Timer.NewStage()
	}

	selection := selectBackend(cmd, config, cfg)

	target, err := deps.Factory.Create(selection.Backend, selection.Options)
	if err != nil {
		return err
	}

	err = dispatcher.New(target).Run(cmd.Context(), testCase)
	if err != nil {
		return err
	}

	notify.SuccessWithTimerf(cmd.OutOrStdout(), outputTimer, "%s", config.SuccessContent)

	return nil
}

// LoadTestCase loads and normalizes the test case named by the settings.
func LoadTestCase(
	cmd *cobra.Command,
	cfg *settingsv1alpha1.Settings,
	outputTimer timer.Timer,
) (*testcasev1alpha1.TestCase, error) {
	loader := testcaseconfigmanager.NewConfigManager(
		cfg.Spec.TestCasePath,
		cfg.Spec.MachineDefaultsPath,
		cmd.OutOrStdout(),
	)

	testCase, err := loader.Load(configmanager.LoadOptions{Timer: outputTimer})
	if err != nil {
		return nil, err
	}

	return testCase, nil
}

func selectBackend(
	cmd *cobra.Command,
	config PipelineConfig,
	cfg *settingsv1alpha1.Settings,
) BackendSelection {
	if config.SelectBackend != nil {
		return config.SelectBackend(cmd, cfg)
	}

	return BackendSelection{
		Backend: cfg.Spec.Backend,
		Options: factory.Options{
			Output: cfg.Spec.OutputPath,
			Force:  cfg.Spec.Force,
			Writer: cmd.OutOrStdout(),
		},
	}
}

// showPipelineTitle displays the title message for a pipeline operation.
func showPipelineTitle(cmd *cobra.Command, emoji, content string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout())
	notify.Titlef(cmd.OutOrStdout(), emoji, "%s", content)
}
