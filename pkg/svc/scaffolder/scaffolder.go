// Package scaffolder generates the files a new testrig project starts from:
// testrig.yaml, an example test case, and a machine defaults file.
package scaffolder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	settingsv1alpha1 "github.com/testrig-dev/testrig/pkg/apis/settings/v1alpha1"
	testcasev1alpha1 "github.com/testrig-dev/testrig/pkg/apis/testcase/v1alpha1"
	"github.com/testrig-dev/testrig/pkg/io/generator"
	yamlgenerator "github.com/testrig-dev/testrig/pkg/io/generator/yaml"
	"github.com/testrig-dev/testrig/pkg/notify"
)

const (
	// Scaffolded file names.

	// SettingsConfigFile is the filename for the testrig configuration.
	SettingsConfigFile = "testrig.yaml"

	// DefaultTestCaseFile is the filename for the example test case when the
	// settings do not name one.
	DefaultTestCaseFile = "testcase.yaml"
)

var (
	// Scaffolding errors.

	// ErrSettingsGeneration wraps failures when creating testrig.yaml.
	ErrSettingsGeneration = errors.New("failed to generate testrig configuration")

	// ErrTestCaseGeneration wraps failures when creating the example test case.
	ErrTestCaseGeneration = errors.New("failed to generate example test case")

	// ErrMachineDefaultsGeneration wraps failures when creating the machine defaults file.
	ErrMachineDefaultsGeneration = errors.New("failed to generate machine defaults")
)

// document is a YAML mapping scaffolded as-is.
type document = map[string]any

// Scaffolder is responsible for generating testrig project files.
type Scaffolder struct {
	Settings          settingsv1alpha1.Settings
	SettingsGenerator generator.Generator[settingsv1alpha1.Settings, yamlgenerator.Options]
	DocumentGenerator generator.Generator[document, yamlgenerator.Options]
	Writer            io.Writer
}

// NewScaffolder creates a new Scaffolder instance for the provided settings.
func NewScaffolder(cfg settingsv1alpha1.Settings, writer io.Writer) *Scaffolder {
	return &Scaffolder{
		Settings:          cfg,
		SettingsGenerator: yamlgenerator.NewGenerator[settingsv1alpha1.Settings](),
		DocumentGenerator: yamlgenerator.NewGenerator[document](),
		Writer:            writer,
	}
}

// Main scaffolding operations.

// Scaffold generates project files into the output directory:
//   - testrig.yaml configuration
//   - an example test case at the configured test case path
//   - a machine defaults file at the configured machine defaults path
//
// Existing files are skipped unless force is set.
func (s *Scaffolder) Scaffold(output string, force bool) error {
	config := s.applySettingsDefaults()

	err := s.generateSettingsConfig(config, output, force)
	if err != nil {
		return err
	}

	err = s.generateTestCaseExample(config, output, force)
	if err != nil {
		return err
	}

	return s.generateMachineDefaults(config, output, force)
}

// Configuration defaults and helpers.

// applySettingsDefaults fills the path fields the example files are written
// to, so the generated testrig.yaml points at the files scaffolded next to it.
func (s *Scaffolder) applySettingsDefaults() settingsv1alpha1.Settings {
	config := s.Settings

	if config.Spec.TestCasePath == "" {
		config.Spec.TestCasePath = DefaultTestCaseFile
	}

	if config.Spec.MachineDefaultsPath == "" {
		config.Spec.MachineDefaultsPath = testcasev1alpha1.DefaultMachineDefaultsFile
	}

	return config
}

// scaffoldPath resolves a configured file path against the output directory.
func scaffoldPath(output, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(output, path)
}

// File handling helpers.

// checkFileExistsAndSkip checks if a file exists and should be skipped based
// on the force flag, warning when it skips. It reports whether to skip,
// whether the file existed, and the previous modification time.
func (s *Scaffolder) checkFileExistsAndSkip(
	filePath string,
	fileName string,
	force bool,
) (bool, bool, time.Time) {
	info, statErr := os.Stat(filePath)
	if statErr == nil {
		if !force {
			notify.Warningf(s.Writer, "skipped '%s', file exists use --force to overwrite", fileName)

			return true, true, info.ModTime()
		}

		return false, true, info.ModTime()
	}

	return false, false, time.Time{}
}

func ensureOverwriteModTime(path string, previous time.Time) error {
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	current := info.ModTime()
	if previous.IsZero() || current.After(previous) {
		return nil
	}

	// Ensure the new mod time is strictly greater than the previous timestamp.
	newModTime := previous.Add(time.Millisecond)

	now := time.Now()
	if now.After(newModTime) {
		newModTime = now
	}

	err = os.Chtimes(path, newModTime, newModTime)
	if err != nil {
		return fmt.Errorf("failed to update mod time for %s: %w", path, err)
	}

	return nil
}

func (s *Scaffolder) notifyFileAction(displayName string, overwritten bool) {
	action := "created"
	if overwritten {
		action = "overwrote"
	}

	notify.Generatef(s.Writer, "%s '%s'", action, displayName)
}

// Template generation helpers.

// generationParams groups parameters for generateWithFileHandling.
type generationParams[T any] struct {
	Gen         generator.Generator[T, yamlgenerator.Options]
	Model       T
	Opts        yamlgenerator.Options
	DisplayName string
	Force       bool
	WrapErr     func(error) error
}

// generateWithFileHandling wraps generation with the common file existence
// checks and notifications.
func generateWithFileHandling[T any](
	scaffolder *Scaffolder,
	params generationParams[T],
) error {
	skip, existed, previousModTime := scaffolder.checkFileExistsAndSkip(
		params.Opts.Output,
		params.DisplayName,
		params.Force,
	)

	if skip {
		return nil
	}

	_, err := params.Gen.Generate(params.Model, params.Opts)
	if err != nil {
		return params.WrapErr(err)
	}

	if params.Force && existed {
		err := ensureOverwriteModTime(params.Opts.Output, previousModTime)
		if err != nil {
			return fmt.Errorf("failed to update mod time for %s: %w", params.DisplayName, err)
		}
	}

	scaffolder.notifyFileAction(params.DisplayName, existed)

	return nil
}

// Configuration file generators.

// generateSettingsConfig generates the testrig.yaml configuration file.
func (s *Scaffolder) generateSettingsConfig(
	config settingsv1alpha1.Settings,
	output string,
	force bool,
) error {
	opts := yamlgenerator.Options{
		Output: filepath.Join(output, SettingsConfigFile),
		Force:  force,
	}

	return generateWithFileHandling(
		s,
		generationParams[settingsv1alpha1.Settings]{
			Gen:         s.SettingsGenerator,
			Model:       config,
			Opts:        opts,
			DisplayName: SettingsConfigFile,
			Force:       force,
			WrapErr: func(err error) error {
				return fmt.Errorf("%w: %w", ErrSettingsGeneration, err)
			},
		},
	)
}

// generateTestCaseExample generates an example test case with one machine and
// a shell provisioner.
func (s *Scaffolder) generateTestCaseExample(
	config settingsv1alpha1.Settings,
	output string,
	force bool,
) error {
	testCase := document{
		testcasev1alpha1.MachinesKey: []any{
			document{
				"name":       "web",
				"box":        "bento/ubuntu-24.04",
				"private_ip": "10.0.0.10",
				"provisioning": document{
					"shell": document{
						"options": document{
							"inline": "echo hello from web",
						},
					},
				},
			},
		},
	}

	opts := yamlgenerator.Options{
		Output: scaffoldPath(output, config.Spec.TestCasePath),
		Force:  force,
	}

	return generateWithFileHandling(
		s,
		generationParams[document]{
			Gen:         s.DocumentGenerator,
			Model:       testCase,
			Opts:        opts,
			DisplayName: config.Spec.TestCasePath,
			Force:       force,
			WrapErr: func(err error) error {
				return fmt.Errorf("%w: %w", ErrTestCaseGeneration, err)
			},
		},
	)
}

// generateMachineDefaults generates the machine defaults file.
func (s *Scaffolder) generateMachineDefaults(
	config settingsv1alpha1.Settings,
	output string,
	force bool,
) error {
	defaults := document{
		"boot_timeout": 300,
	}

	opts := yamlgenerator.Options{
		Output: scaffoldPath(output, config.Spec.MachineDefaultsPath),
		Force:  force,
	}

	return generateWithFileHandling(
		s,
		generationParams[document]{
			Gen:         s.DocumentGenerator,
			Model:       defaults,
			Opts:        opts,
			DisplayName: config.Spec.MachineDefaultsPath,
			Force:       force,
			WrapErr: func(err error) error {
				return fmt.Errorf("%w: %w", ErrMachineDefaultsGeneration, err)
			},
		},
	)
}
