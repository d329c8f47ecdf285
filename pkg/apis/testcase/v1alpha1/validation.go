package v1alpha1

import "fmt"

// ValidateMachine checks the post-merge invariants of a machine. The index is
// the machine's zero-based position in the document, used to identify the
// machine in errors raised before names are assigned.
func ValidateMachine(machine *Machine, index int) error {
	if machine.PrivateIP == "" {
		return fmt.Errorf("machines[%d]: %w", index, ErrMissingPrivateIP)
	}

	return nil
}
