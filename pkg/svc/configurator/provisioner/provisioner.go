// Package provisioner implements the supported provisioner configurations.
//
// Each kind carries a registry of typed setters for its options and, where
// the kind supports them, a registry of methods. Unknown option or method
// names are rejected.
package provisioner

import (
	"errors"
	"fmt"

	"github.com/testrig-dev/testrig/pkg/svc/configurator/stage"
)

// Supported provisioner kinds.
const (
	// KindAnsible runs ansible playbooks on the machine.
	KindAnsible = "ansible"
	// KindShell runs shell scripts or inline commands on the machine.
	KindShell = "shell"
	// KindChefSolo runs chef-solo with recipes and roles on the machine.
	KindChefSolo = "chef_solo"
)

// ErrUnsupportedProvisioner is returned when a provisioner kind is not supported.
var ErrUnsupportedProvisioner = errors.New("unsupported provisioner")

// Config is a provisioner configuration under construction for one machine.
type Config interface {
	// Kind returns the provisioner kind name.
	Kind() string

	// ApplyOption invokes the typed setter registered for the option name.
	ApplyOption(name string, value any) error

	// CallMethod invokes the method registered for the method name.
	CallMethod(name string, arg any) error

	// Settings returns the settings applied so far.
	Settings() []stage.Setting

	// Calls returns the method invocations recorded so far.
	Calls() []stage.Call
}

// New creates a provisioner configuration of the given kind for the named
// machine.
func New(kind string, machineName string) (Config, error) {
	switch kind {
	case KindAnsible:
		return NewAnsible(machineName), nil
	case KindShell:
		return NewShell(), nil
	case KindChefSolo:
		return NewChefSolo(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvisioner, kind)
	}
}

// Kinds returns the supported provisioner kind names.
func Kinds() []string {
	return []string{KindAnsible, KindChefSolo, KindShell}
}
