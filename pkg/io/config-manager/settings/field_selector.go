package settings

import (
	settingsv1alpha1 "github.com/testrig-dev/testrig/pkg/apis/settings/v1alpha1"
	testcasev1alpha1 "github.com/testrig-dev/testrig/pkg/apis/testcase/v1alpha1"
)

// FieldSelector defines a field and its metadata for configuration management.
type FieldSelector[T any] struct {
	Selector     func(*T) any // Function that returns a pointer to the field
	Description  string       // Human-readable description for CLI flags
	DefaultValue any          // Default value for the field
}

// DefaultTestCasePathFieldSelector creates a standard field selector for the test case path.
// No default value is set; the path usually arrives through the TEST_CASE_CONFIG
// environment variable.
func DefaultTestCasePathFieldSelector() FieldSelector[settingsv1alpha1.Settings] {
	return FieldSelector[settingsv1alpha1.Settings]{
		Selector: func(s *settingsv1alpha1.Settings) any { return &s.Spec.TestCasePath },
		Description: "Path to the test case YAML file " +
			"(falls back to the " + testcasev1alpha1.EnvTestCaseConfig + " environment variable)",
	}
}

// DefaultMachineDefaultsPathFieldSelector creates a standard field selector for
// the machine-defaults path.
func DefaultMachineDefaultsPathFieldSelector() FieldSelector[settingsv1alpha1.Settings] {
	return FieldSelector[settingsv1alpha1.Settings]{
		Selector:     func(s *settingsv1alpha1.Settings) any { return &s.Spec.MachineDefaultsPath },
		Description:  "Path to the machine defaults YAML file (missing file is ignored)",
		DefaultValue: testcasev1alpha1.DefaultMachineDefaultsFile,
	}
}

// DefaultBackendFieldSelector creates a standard field selector for the configurator backend.
func DefaultBackendFieldSelector() FieldSelector[settingsv1alpha1.Settings] {
	return FieldSelector[settingsv1alpha1.Settings]{
		Selector: func(s *settingsv1alpha1.Settings) any { return &s.Spec.Backend },
		Description: "Configurator backend " +
			"(Vagrantfile renders a Vagrantfile, Plan records a YAML plan)",
		DefaultValue: settingsv1alpha1.BackendVagrantfile,
	}
}

// DefaultOutputPathFieldSelector creates a standard field selector for the output path.
func DefaultOutputPathFieldSelector() FieldSelector[settingsv1alpha1.Settings] {
	return FieldSelector[settingsv1alpha1.Settings]{
		Selector:     func(s *settingsv1alpha1.Settings) any { return &s.Spec.OutputPath },
		Description:  "Path the generated output is written to",
		DefaultValue: settingsv1alpha1.DefaultOutputPath,
	}
}

// DefaultForceFieldSelector creates a standard field selector for overwriting output files.
func DefaultForceFieldSelector() FieldSelector[settingsv1alpha1.Settings] {
	return FieldSelector[settingsv1alpha1.Settings]{
		Selector:     func(s *settingsv1alpha1.Settings) any { return &s.Spec.Force },
		Description:  "Overwrite existing output files",
		DefaultValue: false,
	}
}

// DefaultFieldSelectors returns the field selectors shared by commands that
// run or render test cases.
func DefaultFieldSelectors() []FieldSelector[settingsv1alpha1.Settings] {
	return []FieldSelector[settingsv1alpha1.Settings]{
		DefaultTestCasePathFieldSelector(),
		DefaultMachineDefaultsPathFieldSelector(),
		DefaultBackendFieldSelector(),
		DefaultOutputPathFieldSelector(),
		DefaultForceFieldSelector(),
	}
}
