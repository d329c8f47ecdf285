// Package provider implements the supported provider configurations.
//
// Providers are handled symmetrically to provisioners: each kind carries a
// registry of typed setters for its options and, where the kind supports
// them, a registry of methods. Unknown option or method names are rejected.
package provider

import (
	"errors"
	"fmt"

	"github.com/testrig-dev/testrig/pkg/svc/configurator/stage"
)

// Supported provider kinds.
const (
	// KindVirtualbox runs the machine as a VirtualBox VM.
	KindVirtualbox = "virtualbox"
	// KindDocker runs the machine as a Docker container.
	KindDocker = "docker"
)

// ErrUnsupportedProvider is returned when a provider kind is not supported.
var ErrUnsupportedProvider = errors.New("unsupported provider")

// Config is a provider configuration under construction for one machine.
type Config interface {
	// Kind returns the provider kind name.
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

// New creates a provider configuration of the given kind.
func New(kind string) (Config, error) {
	switch kind {
	case KindVirtualbox:
		return NewVirtualbox(), nil
	case KindDocker:
		return NewDocker(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, kind)
	}
}

// Kinds returns the supported provider kind names.
func Kinds() []string {
	return []string{KindDocker, KindVirtualbox}
}
