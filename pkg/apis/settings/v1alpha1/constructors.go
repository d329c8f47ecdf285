package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	testcasev1alpha1 "github.com/testrig-dev/testrig/pkg/apis/testcase/v1alpha1"
)

// DefaultOutputPath is the default output file for the Vagrantfile backend.
const DefaultOutputPath = "Vagrantfile"

// NewSettings creates a Settings instance with API metadata and defaults.
func NewSettings() *Settings {
	return &Settings{
		TypeMeta: metav1.TypeMeta{
			Kind:       Kind,
			APIVersion: APIVersion,
		},
		Spec: NewSpec(),
	}
}

// NewSpec creates a Spec with default values.
func NewSpec() Spec {
	return Spec{
		TestCasePath:        "",
		MachineDefaultsPath: testcasev1alpha1.DefaultMachineDefaultsFile,
		Backend:             BackendVagrantfile,
		OutputPath:          DefaultOutputPath,
		Force:               false,
	}
}
