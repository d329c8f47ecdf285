// Package configurator defines the interfaces through which a normalized
// test case is applied to a backend. Backend implementations live in the
// plan and vagrantfile subpackages, and the factory subpackage selects one.
package configurator

import (
	"time"

	"github.com/testrig-dev/testrig/pkg/svc/configurator/provider"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/provisioner"
)

// MachineConfigurator receives the configuration of a single machine.
type MachineConfigurator interface {
	// SetBox sets the base box the machine boots from.
	SetBox(box string) error

	// SetHostName sets the host name assigned inside the machine.
	SetHostName(hostName string) error

	// DeclarePrivateNetwork attaches the machine to a private network with
	// the given static address.
	DeclarePrivateNetwork(address string) error

	// SetBootTimeout sets how long to wait for the machine to boot.
	SetBootTimeout(timeout time.Duration) error

	// ApplyProvisioner registers a fully built provisioner configuration.
	ApplyProvisioner(cfg provisioner.Config) error

	// ApplyProvider registers a fully built provider configuration.
	ApplyProvider(cfg provider.Config) error
}

// Configurator builds the backend output for a whole run.
type Configurator interface {
	// Machine starts the configuration of the named machine. Machines are
	// configured one at a time in document order.
	Machine(name string) (MachineConfigurator, error)

	// Finalize completes the run and writes the backend output.
	Finalize() error
}
