package di

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/testrig-dev/testrig/pkg/svc/configurator/factory"
	"github.com/testrig-dev/testrig/pkg/ui/timer"
)

// Dependency resolvers.

// ResolveTimer retrieves the timer dependency from the injector with consistent error handling.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveConfiguratorFactory retrieves the configurator factory dependency
// from the injector with consistent error handling.
func ResolveConfiguratorFactory(injector Injector) (factory.Factory, error) {
	configuratorFactory, err := do.Invoke[factory.Factory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve configurator factory dependency: %w", err)
	}

	return configuratorFactory, nil
}

// Handler decorators.

// WithTimer decorates a handler to automatically resolve the timer dependency.
// This higher-order function simplifies command handlers that need timer access.
func WithTimer(
	handler func(cmd *cobra.Command, injector Injector, tmr timer.Timer) error,
) func(cmd *cobra.Command, injector Injector) error {
	return func(cmd *cobra.Command, injector Injector) error {
		tmr, err := ResolveTimer(injector)
		if err != nil {
			return err
		}

		return handler(cmd, injector, tmr)
	}
}
