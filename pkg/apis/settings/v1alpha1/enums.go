package v1alpha1

import (
	"fmt"
	"strings"
)

// Backend selects the configurator implementation machines are dispatched to.
type Backend string

const (
	// BackendVagrantfile emits a Vagrantfile for the machines.
	BackendVagrantfile Backend = "Vagrantfile"
	// BackendPlan records the dispatched configuration as a plan document.
	BackendPlan Backend = "Plan"
)

// ValidBackends returns all supported configurator backends.
func ValidBackends() []Backend {
	return []Backend{BackendVagrantfile, BackendPlan}
}

// IsValid reports whether the backend is one of the supported values.
func (b Backend) IsValid() bool {
	for _, backend := range ValidBackends() {
		if b == backend {
			return true
		}
	}

	return false
}

// Set for Backend (pflag.Value interface).
func (b *Backend) Set(value string) error {
	for _, backend := range ValidBackends() {
		if strings.EqualFold(value, string(backend)) {
			*b = backend

			return nil
		}
	}

	return fmt.Errorf(
		"%w: %s (valid options: %s, %s)",
		ErrInvalidBackend,
		value,
		BackendVagrantfile,
		BackendPlan,
	)
}

// String returns the string representation of the Backend.
func (b *Backend) String() string {
	return string(*b)
}

// Type returns the type of the Backend.
func (b *Backend) Type() string {
	return "Backend"
}
