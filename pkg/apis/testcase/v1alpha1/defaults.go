package v1alpha1

import "strconv"

// DefaultMachineName synthesizes a machine name from the machine's zero-based
// position in the test case sequence.
func DefaultMachineName(index int) string {
	return MachineNamePrefix + strconv.Itoa(index)
}

// ApplyNameDefaults fills the machine's Name and HostName. The name falls
// back to the synthesized positional name, the host name falls back to the
// assigned name. Must run after the defaults merge so provided values win.
func (m *Machine) ApplyNameDefaults(index int) {
	if m.Name == "" {
		m.Name = DefaultMachineName(index)
	}

	if m.HostName == "" {
		m.HostName = m.Name
	}
}
