// Package factory selects the configurator implementation for a backend.
package factory

import (
	"fmt"
	"io"

	settingsv1alpha1 "github.com/testrig-dev/testrig/pkg/apis/settings/v1alpha1"
	"github.com/testrig-dev/testrig/pkg/svc/configurator"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/plan"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/vagrantfile"
)

// Options carry the output destination for created configurators.
type Options struct {
	// Output is the file path the configurator writes on Finalize. Empty
	// streams the output to Writer instead.
	Output string
	// Force overwrites an existing file at Output.
	Force bool
	// Writer receives streamed output and notifications.
	Writer io.Writer
}

// Factory creates backend-specific configurators.
type Factory interface {
	Create(backend settingsv1alpha1.Backend, opts Options) (configurator.Configurator, error)
}

// DefaultFactory implements Factory with the built-in backends.
type DefaultFactory struct{}

// NewDefault creates the default configurator factory.
func NewDefault() *DefaultFactory {
	return &DefaultFactory{}
}

// Create selects the configurator for the backend.
func (DefaultFactory) Create(
	backend settingsv1alpha1.Backend,
	opts Options,
) (configurator.Configurator, error) {
	switch backend {
	case settingsv1alpha1.BackendVagrantfile:
		return vagrantfile.NewWriter(opts.Output, opts.Force, opts.Writer), nil
	case settingsv1alpha1.BackendPlan:
		return plan.NewRecorder(opts.Output, opts.Force, opts.Writer), nil
	default:
		return nil, fmt.Errorf("%w: %q", settingsv1alpha1.ErrInvalidBackend, string(backend))
	}
}
