package v1alpha1

// NewTestCase creates an empty test case.
func NewTestCase() *TestCase {
	return &TestCase{
		Machines: nil,
	}
}

// NewMachine creates a machine with no configuration. Callers fill fields
// from the merged document and then apply name defaults.
func NewMachine() *Machine {
	return &Machine{
		Name:         "",
		HostName:     "",
		Box:          "",
		PrivateIP:    "",
		Provisioning: nil,
		Providers:    nil,
	}
}
