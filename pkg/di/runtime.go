// Package di wires shared dependencies into command handlers through a
// samber/do container.
package di

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency container handed to modules and handlers.
type Injector = do.Injector

// Module registers dependencies on an injector.
type Module func(Injector) error

// Runtime holds the base modules and creates a fresh injector per invocation.
type Runtime struct {
	modules []Module
}

// New constructs a Runtime with the given base modules.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke creates an injector, applies the base modules followed by the extra
// modules in order, and runs the handler. The injector is shut down when the
// handler returns. Module and handler errors are returned unchanged.
func (r *Runtime) Invoke(handler func(Injector) error, extraModules ...Module) error {
	injector := do.New()

	defer func() { _ = injector.Shutdown() }()

	err := applyModules(injector, r.modules)
	if err != nil {
		return err
	}

	err = applyModules(injector, extraModules)
	if err != nil {
		return err
	}

	return handler(injector)
}

// applyModules runs the modules in order, skipping nil entries.
func applyModules(injector Injector, modules []Module) error {
	for _, module := range modules {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	return nil
}

// RunEWithRuntime adapts an injector-aware handler into a cobra RunE function.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(cmd *cobra.Command, injector Injector) error,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, injector)
		})
	}
}
