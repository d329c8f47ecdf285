package provider

import (
	"fmt"

	"github.com/testrig-dev/testrig/pkg/svc/configurator/stage"
)

// Virtualbox configures the virtualbox provider for one machine.
type Virtualbox struct {
	stage.Recorder
}

// NewVirtualbox creates a virtualbox provider configuration.
func NewVirtualbox() *Virtualbox {
	return &Virtualbox{}
}

// Kind returns the provider kind name.
func (v *Virtualbox) Kind() string {
	return KindVirtualbox
}

// ApplyOption invokes the typed setter registered for the option name.
func (v *Virtualbox) ApplyOption(name string, value any) error {
	setter, ok := virtualboxSetters[name]
	if !ok {
		return fmt.Errorf(
			"%w: %q is not a valid option for the %s provider",
			stage.ErrUnsupportedOption, name, KindVirtualbox,
		)
	}

	return setter(v, name, value)
}

// CallMethod invokes the method registered for the method name.
func (v *Virtualbox) CallMethod(name string, arg any) error {
	method, ok := virtualboxMethods[name]
	if !ok {
		return fmt.Errorf(
			"%w: %q is not a valid method for the %s provider",
			stage.ErrUnsupportedMethod, name, KindVirtualbox,
		)
	}

	return method(v, name, arg)
}

// virtualboxSetters maps option names to their typed setters.
var virtualboxSetters = map[string]func(v *Virtualbox, name string, value any) error{
	"name":             setVirtualboxString,
	"default_nic_type": setVirtualboxString,
	"gui":              setVirtualboxBool,
	"linked_clone":     setVirtualboxBool,
	"memory":           setVirtualboxInt,
	"cpus":             setVirtualboxInt,
}

// virtualboxMethods maps method names to their implementations. Customize
// invocations accumulate in call order.
var virtualboxMethods = map[string]func(v *Virtualbox, name string, arg any) error{
	"customize": callVirtualboxCustomize,
}

func setVirtualboxString(v *Virtualbox, name string, value any) error {
	str, err := stage.String(name, value)
	if err != nil {
		return err
	}

	v.Record(name, str)

	return nil
}

func setVirtualboxBool(v *Virtualbox, name string, value any) error {
	b, err := stage.Bool(name, value)
	if err != nil {
		return err
	}

	v.Record(name, b)

	return nil
}

func setVirtualboxInt(v *Virtualbox, name string, value any) error {
	number, err := stage.Int(name, value)
	if err != nil {
		return err
	}

	v.Record(name, number)

	return nil
}

func callVirtualboxCustomize(v *Virtualbox, name string, arg any) error {
	args, err := stage.StringSlice(name, arg)
	if err != nil {
		return err
	}

	v.RecordCall(name, args)

	return nil
}
