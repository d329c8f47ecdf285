package settings

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	settingsv1alpha1 "github.com/testrig-dev/testrig/pkg/apis/settings/v1alpha1"
	"github.com/testrig-dev/testrig/pkg/fsutil"
	configmanager "github.com/testrig-dev/testrig/pkg/io/config-manager"
	"github.com/testrig-dev/testrig/pkg/notify"
	"github.com/testrig-dev/testrig/pkg/ui/timer"
	"github.com/testrig-dev/testrig/pkg/utils/envvar"
)

// Compile-time interface compliance check.
var _ configmanager.ConfigManager[settingsv1alpha1.Settings] = (*ConfigManager)(nil)

// ConfigManager implements configuration management for testrig settings.
type ConfigManager struct {
	Viper           *viper.Viper
	fieldSelectors  []FieldSelector[settingsv1alpha1.Settings]
	Config          *settingsv1alpha1.Settings
	configLoaded    bool
	configFileFound bool
	Writer          io.Writer
	command         *cobra.Command
}

// NewConfigManager creates a new configuration manager with the specified field selectors.
// Initializes Viper with all configuration including paths and environment handling.
func NewConfigManager(
	writer io.Writer,
	fieldSelectors ...FieldSelector[settingsv1alpha1.Settings],
) *ConfigManager {
	return &ConfigManager{
		Viper:          InitializeViper(),
		fieldSelectors: fieldSelectors,
		Config:         settingsv1alpha1.NewSettings(),
		configLoaded:   false,
		Writer:         writer,
	}
}

// NewCommandConfigManager constructs a ConfigManager bound to the provided Cobra command.
// It registers the supplied field selectors, binds flags from struct fields, and writes
// output to the command's standard output writer.
func NewCommandConfigManager(
	cmd *cobra.Command,
	selectors []FieldSelector[settingsv1alpha1.Settings],
) *ConfigManager {
	manager := NewConfigManager(cmd.OutOrStdout(), selectors...)
	manager.command = cmd
	manager.AddFlagsFromFields(cmd)

	return manager
}

// Load loads the settings with the specified options.
// Returns the loaded settings, either freshly loaded or previously cached.
// Configuration priority: defaults < testrig.yaml < environment variables < flags.
func (m *ConfigManager) Load(
	opts configmanager.LoadOptions,
) (*settingsv1alpha1.Settings, error) {
	if m.configLoaded {
		if !opts.Silent {
			m.notifyConfigReused()
		}

		return m.Config, nil
	}

	if !opts.Silent {
		m.notifyLoadingConfig()
	}

	err := m.readConfig(opts.Silent)
	if err != nil {
		return nil, err
	}

	flagOverrides := m.captureChangedFlagValues()

	err = m.unmarshalAndApplyDefaults()
	if err != nil {
		return nil, err
	}

	err = m.applyFlagOverrides(flagOverrides)
	if err != nil {
		return nil, err
	}

	err = m.expandPaths()
	if err != nil {
		return nil, err
	}

	err = settingsv1alpha1.ValidateSettings(m.Config, m.configFileFound)
	if err != nil {
		return nil, err
	}

	if !opts.Silent {
		m.notifyLoadingComplete(opts.Timer)
	}

	m.configLoaded = true

	return m.Config, nil
}

func (m *ConfigManager) readConfig(silent bool) error {
	err := m.Viper.ReadInConfig()
	if err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		m.configFileFound = false
		if !silent {
			m.notifyUsingDefaults()
		}
	} else {
		m.configFileFound = true
		if !silent {
			m.notifyConfigFound()
		}
	}

	return nil
}

func (m *ConfigManager) unmarshalAndApplyDefaults() error {
	// Reset TypeMeta fields only if a config file was found.
	// This allows validation to catch incorrect values from config files
	// while preserving defaults when loading from environment variables only.
	if m.configFileFound {
		m.Config.APIVersion = ""
		m.Config.Kind = ""
	}

	err := m.Viper.Unmarshal(m.Config)
	if err != nil {
		return fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	// Apply field selector defaults for empty fields
	for _, fieldSelector := range m.fieldSelectors {
		fieldPtr := fieldSelector.Selector(m.Config)
		if fieldPtr != nil && isFieldEmpty(fieldPtr) {
			setFieldValue(fieldPtr, fieldSelector.DefaultValue)
		}
	}

	return nil
}

func (m *ConfigManager) captureChangedFlagValues() map[string]string {
	if m.command == nil {
		return nil
	}

	overrides := make(map[string]string)

	m.command.Flags().Visit(func(flag *pflag.Flag) {
		overrides[flag.Name] = flag.Value.String()
	})

	return overrides
}

func (m *ConfigManager) applyFlagOverrides(overrides map[string]string) error {
	if overrides == nil {
		return nil
	}

	for _, selector := range m.fieldSelectors {
		fieldPtr := selector.Selector(m.Config)
		if fieldPtr == nil {
			continue
		}

		flagName := m.GenerateFlagName(fieldPtr)

		value, ok := overrides[flagName]
		if !ok {
			continue
		}

		err := setFieldValueFromFlag(fieldPtr, value)
		if err != nil {
			return fmt.Errorf("failed to apply flag override for %s: %w", flagName, err)
		}
	}

	return nil
}

// expandPaths expands environment variable placeholders in every path field
// and resolves a leading ~ to the user's home directory.
func (m *ConfigManager) expandPaths() error {
	spec := &m.Config.Spec

	for _, path := range []*string{
		&spec.TestCasePath,
		&spec.MachineDefaultsPath,
		&spec.OutputPath,
	} {
		expanded := envvar.Expand(*path)

		if strings.HasPrefix(expanded, "~") {
			homeExpanded, err := fsutil.ExpandHomePath(expanded)
			if err != nil {
				return fmt.Errorf("expand path %q: %w", expanded, err)
			}

			expanded = homeExpanded
		}

		*path = expanded
	}

	return nil
}

func (m *ConfigManager) notifyConfigReused() {
	notify.Successf(m.Writer, "settings already loaded, reusing existing settings")
}

func (m *ConfigManager) notifyLoadingConfig() {
	notify.Activityf(m.Writer, "loading testrig settings")
}

func (m *ConfigManager) notifyUsingDefaults() {
	notify.Activityf(m.Writer, "using default settings")
}

func (m *ConfigManager) notifyConfigFound() {
	notify.Activityf(m.Writer, "'%s' found", m.Viper.ConfigFileUsed())
}

func (m *ConfigManager) notifyLoadingComplete(tmr timer.Timer) {
	notify.SuccessWithTimerf(m.Writer, tmr, "settings loaded")
}
