package testcase

import (
	"fmt"
	"io"

	testcasev1alpha1 "github.com/testrig-dev/testrig/pkg/apis/testcase/v1alpha1"
	configmanager "github.com/testrig-dev/testrig/pkg/io/config-manager"
	"github.com/testrig-dev/testrig/pkg/notify"
	"github.com/testrig-dev/testrig/pkg/ui/timer"
	"github.com/testrig-dev/testrig/pkg/utils/merge"
)

// Compile-time interface compliance check.
var _ configmanager.ConfigManager[testcasev1alpha1.TestCase] = (*ConfigManager)(nil)

// ConfigManager loads a test case file and normalizes its machines.
type ConfigManager struct {
	testCasePath        string
	machineDefaultsPath string
	Config              *testcasev1alpha1.TestCase
	configLoaded        bool
	Writer              io.Writer
}

// NewConfigManager creates a configuration manager for a test case file.
// Both paths must already be resolved; reading environment variables is the
// process entry point's concern, not this package's.
func NewConfigManager(testCasePath, machineDefaultsPath string, writer io.Writer) *ConfigManager {
	return &ConfigManager{
		testCasePath:        testCasePath,
		machineDefaultsPath: machineDefaultsPath,
		Config:              nil,
		configLoaded:        false,
		Writer:              writer,
	}
}

// Load loads the test case with the specified options.
// Returns the loaded test case, either freshly loaded or previously cached.
// Loading is fail-fast: the first broken machine aborts the whole run.
// Structural mismatches found while merging defaults are warnings only.
func (m *ConfigManager) Load(opts configmanager.LoadOptions) (*testcasev1alpha1.TestCase, error) {
	if m.configLoaded {
		if !opts.Silent {
			m.notifyReused()
		}

		return m.Config, nil
	}

	if !opts.Silent {
		m.notifyLoading()
	}

	defaults, err := readMachineDefaults(m.machineDefaultsPath)
	if err != nil {
		return nil, err
	}

	document, err := readTestCaseDocument(m.testCasePath)
	if err != nil {
		return nil, err
	}

	machineDocuments, err := extractMachineDocuments(document)
	if err != nil {
		return nil, err
	}

	machines, err := m.normalizeMachines(machineDocuments, defaults)
	if err != nil {
		return nil, err
	}

	m.Config = &testcasev1alpha1.TestCase{Machines: machines}
	m.configLoaded = true

	if !opts.Silent {
		m.notifyLoaded(opts.Timer)
	}

	return m.Config, nil
}

// normalizeMachines merges defaults into every machine document, then
// decodes, validates, and names the machines in document order.
func (m *ConfigManager) normalizeMachines(
	documents []map[string]any,
	defaults map[string]any,
) ([]testcasev1alpha1.Machine, error) {
	machines := make([]testcasev1alpha1.Machine, 0, len(documents))

	for index, document := range documents {
		merged, mismatches := merge.Merge(document, defaults)
		for _, mismatch := range mismatches {
			notify.Warningf(m.Writer, "machines[%d]: %s", index, mismatch.Message())
		}

		var machine testcasev1alpha1.Machine

		err := decodeMachine(merged, &machine)
		if err != nil {
			return nil, fmt.Errorf("machines[%d]: %w", index, err)
		}

		err = testcasev1alpha1.ValidateMachine(&machine, index)
		if err != nil {
			return nil, err
		}

		machine.ApplyNameDefaults(index)

		machines = append(machines, machine)
	}

	return machines, nil
}

func (m *ConfigManager) notifyLoading() {
	notify.Activityf(m.Writer, "loading test case from '%s'", m.testCasePath)
}

func (m *ConfigManager) notifyReused() {
	notify.Successf(m.Writer, "test case already loaded, reusing existing config")
}

func (m *ConfigManager) notifyLoaded(tmr timer.Timer) {
	notify.SuccessWithTimerf(m.Writer, tmr, "test case loaded")
}
