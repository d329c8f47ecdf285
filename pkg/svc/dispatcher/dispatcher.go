// Package dispatcher translates normalized test case machines into calls on
// a configurator backend.
package dispatcher

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	testcasev1alpha1 "github.com/testrig-dev/testrig/pkg/apis/testcase/v1alpha1"
	"github.com/testrig-dev/testrig/pkg/svc/configurator"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/provider"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/provisioner"
)

// stage is the option and method surface shared by provisioner and provider
// configurations.
type stage interface {
	ApplyOption(name string, value any) error
	CallMethod(name string, arg any) error
}

// Dispatcher applies test case machines to a configurator backend.
type Dispatcher struct {
	configurator configurator.Configurator
}

// New creates a Dispatcher driving the given configurator.
func New(target configurator.Configurator) *Dispatcher {
	return &Dispatcher{configurator: target}
}

// Run configures every machine in document order and finalizes the backend.
// The run is fail-fast: the first error aborts it and is returned unchanged,
// so backend errors keep their original message. Cancellation is honored
// between machines.
func (d *Dispatcher) Run(ctx context.Context, testCase *testcasev1alpha1.TestCase) error {
	for index := range testCase.Machines {
		err := ctx.Err()
		if err != nil {
			return err
		}

		err = d.dispatchMachine(&testCase.Machines[index])
		if err != nil {
			return err
		}
	}

	return d.configurator.Finalize()
}

func (d *Dispatcher) dispatchMachine(machine *testcasev1alpha1.Machine) error {
	logrus.WithField("machine", machine.Name).Debug("configuring machine")

	target, err := d.configurator.Machine(machine.Name)
	if err != nil {
		return err
	}

	err = applyMachineSettings(target, machine)
	if err != nil {
		return err
	}

	err = applyProvisioning(target, machine)
	if err != nil {
		return err
	}

	return applyProviders(target, machine)
}

func applyMachineSettings(
	target configurator.MachineConfigurator,
	machine *testcasev1alpha1.Machine,
) error {
	if machine.Box != "" {
		err := target.SetBox(machine.Box)
		if err != nil {
			return err
		}
	}

	err := target.SetHostName(machine.HostName)
	if err != nil {
		return err
	}

	err = target.DeclarePrivateNetwork(machine.PrivateIP)
	if err != nil {
		return err
	}

	if machine.BootTimeout.Duration > 0 {
		err = target.SetBootTimeout(machine.BootTimeout.Duration)
		if err != nil {
			return err
		}
	}

	return nil
}

func applyProvisioning(
	target configurator.MachineConfigurator,
	machine *testcasev1alpha1.Machine,
) error {
	for _, kind := range sortedKeys(machine.Provisioning) {
		logrus.WithFields(logrus.Fields{
			"machine":     machine.Name,
			"provisioner": kind,
		}).Debug("applying provisioner")

		cfg, err := provisioner.New(kind, machine.Name)
		if err != nil {
			return err
		}

		err = applyStageConfig(cfg, machine.Provisioning[kind])
		if err != nil {
			return err
		}

		err = target.ApplyProvisioner(cfg)
		if err != nil {
			return err
		}
	}

	return nil
}

func applyProviders(
	target configurator.MachineConfigurator,
	machine *testcasev1alpha1.Machine,
) error {
	for _, kind := range sortedKeys(machine.Providers) {
		logrus.WithFields(logrus.Fields{
			"machine":  machine.Name,
			"provider": kind,
		}).Debug("applying provider")

		cfg, err := provider.New(kind)
		if err != nil {
			return err
		}

		err = applyStageConfig(cfg, machine.Providers[kind])
		if err != nil {
			return err
		}

		err = target.ApplyProvider(cfg)
		if err != nil {
			return err
		}
	}

	return nil
}

// applyStageConfig applies options before methods. Both are applied in
// sorted key order so a run is deterministic regardless of YAML map order.
func applyStageConfig(target stage, config testcasev1alpha1.StageConfig) error {
	for _, name := range sortedKeys(config.Options) {
		err := target.ApplyOption(name, config.Options[name])
		if err != nil {
			return err
		}
	}

	for _, name := range sortedKeys(config.Methods) {
		err := target.CallMethod(name, config.Methods[name])
		if err != nil {
			return err
		}
	}

	return nil
}

func sortedKeys[V any](values map[string]V) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
