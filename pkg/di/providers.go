package di

import (
	"github.com/samber/do/v2"

	"github.com/testrig-dev/testrig/pkg/svc/configurator/factory"
	"github.com/testrig-dev/testrig/pkg/ui/timer"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by the root command and tests.
// It registers default implementations for timer and configurator factory.
func NewRuntime() *Runtime {
	return New(
		provideTimer,
		provideConfiguratorFactory,
	)
}

// provideTimer registers the timer dependency with the injector.
func provideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

// provideConfiguratorFactory registers the configurator factory dependency.
func provideConfiguratorFactory(i Injector) error {
	do.Provide(i, func(Injector) (factory.Factory, error) {
		return factory.NewDefault(), nil
	})

	return nil
}
