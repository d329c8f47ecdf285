package v1alpha1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

const (
	// Group is the API group for testrig.
	Group = "testrig.dev"
	// Version is the API version for testrig.
	Version = "v1alpha1"
	// Kind is the kind for testrig settings.
	Kind = "Settings"
	// APIVersion is the full API version for testrig.
	APIVersion = Group + "/" + Version
)

// --- Core Types ---

// Settings represents the testrig tool configuration including API metadata
// and the desired runtime behavior.
type Settings struct {
	metav1.TypeMeta `json:",inline" mapstructure:",squash"`

	Spec Spec `json:"spec,omitzero" mapstructure:"spec,omitempty"`
}

// Spec defines how a testrig run resolves its inputs and where output goes.
type Spec struct {
	// TestCasePath is the test case YAML file. Usually supplied through the
	// TEST_CASE_CONFIG environment variable rather than testrig.yaml.
	TestCasePath string `json:"testCasePath,omitzero"`
	// MachineDefaultsPath is the optional machine-defaults YAML file.
	MachineDefaultsPath string `json:"machineDefaultsPath,omitzero"`
	// Backend selects the configurator that consumes the dispatched machines.
	Backend Backend `json:"backend,omitzero"`
	// OutputPath is where file-producing backends write their result.
	OutputPath string `json:"outputPath,omitzero"`
	// Force overwrites existing output files.
	Force bool `json:"force,omitzero"`
}
