package v1alpha1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

const (
	// EnvTestCaseConfig is the environment variable pointing at the test case YAML file.
	EnvTestCaseConfig = "TEST_CASE_CONFIG"
	// DefaultMachineDefaultsFile is the well-known machine-defaults file in the working directory.
	DefaultMachineDefaultsFile = ".test_machine_defaults.yml"
	// MachinesKey is the top-level test case key holding the machine sequence.
	MachinesKey = "machines"
	// FieldPrivateIP is the machine field that must be present after the defaults merge.
	FieldPrivateIP = "private_ip"
	// MachineNamePrefix is the prefix used when synthesizing machine names.
	MachineNamePrefix = "test-machine"
)

// --- Core Types ---

// TestCase is the normalized form of a test case document: an ordered list of
// machines in document order.
type TestCase struct {
	Machines []Machine `json:"machines"`
}

// Machine is one virtual-machine configuration entry in the test case.
// Name, HostName, Box, and BootTimeout are optional in the source document;
// PrivateIP is required once defaults have been merged in.
type Machine struct {
	Name         string                 `json:"name,omitempty"`
	HostName     string                 `json:"host_name,omitempty"    mapstructure:"host_name"`
	Box          string                 `json:"box,omitempty"`
	PrivateIP    string                 `json:"private_ip"             mapstructure:"private_ip"`
	BootTimeout  metav1.Duration        `json:"boot_timeout,omitzero"  mapstructure:"boot_timeout"`
	Provisioning map[string]StageConfig `json:"provisioning,omitempty"`
	Providers    map[string]StageConfig `json:"providers,omitempty"`
}

// StageConfig configures one provisioner or provider stage of a machine.
// Options map setter names to values; Methods map method names to their
// single argument.
type StageConfig struct {
	Options map[string]any `json:"options,omitempty"`
	Methods map[string]any `json:"methods,omitempty"`
}
