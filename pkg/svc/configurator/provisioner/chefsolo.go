package provisioner

import (
	"fmt"

	"github.com/testrig-dev/testrig/pkg/svc/configurator/stage"
)

// ChefSolo configures the chef_solo provisioner for one machine.
type ChefSolo struct {
	stage.Recorder
}

// NewChefSolo creates a chef_solo provisioner configuration.
func NewChefSolo() *ChefSolo {
	return &ChefSolo{}
}

// Kind returns the provisioner kind name.
func (c *ChefSolo) Kind() string {
	return KindChefSolo
}

// ApplyOption invokes the typed setter registered for the option name.
func (c *ChefSolo) ApplyOption(name string, value any) error {
	setter, ok := chefSoloSetters[name]
	if !ok {
		return fmt.Errorf(
			"%w: %q is not a valid option for the %s provisioner",
			stage.ErrUnsupportedOption, name, KindChefSolo,
		)
	}

	return setter(c, name, value)
}

// CallMethod invokes the method registered for the method name.
func (c *ChefSolo) CallMethod(name string, arg any) error {
	method, ok := chefSoloMethods[name]
	if !ok {
		return fmt.Errorf(
			"%w: %q is not a valid method for the %s provisioner",
			stage.ErrUnsupportedMethod, name, KindChefSolo,
		)
	}

	return method(c, name, arg)
}

// chefSoloSetters maps option names to their typed setters.
var chefSoloSetters = map[string]func(c *ChefSolo, name string, value any) error{
	"cookbooks_path": setChefSoloStringSlice,
	"roles_path":     setChefSoloStringSlice,
	"data_bags_path": setChefSoloStringSlice,
	"environment":    setChefSoloString,
	"arguments":      setChefSoloString,
	"log_level":      setChefSoloString,
	"json":           setChefSoloAnyMap,
}

// chefSoloMethods maps method names to their implementations. Recipes and
// roles accumulate in call order.
var chefSoloMethods = map[string]func(c *ChefSolo, name string, arg any) error{
	"add_recipe": callChefSoloAppend,
	"add_role":   callChefSoloAppend,
}

func setChefSoloString(c *ChefSolo, name string, value any) error {
	str, err := stage.String(name, value)
	if err != nil {
		return err
	}

	c.Record(name, str)

	return nil
}

func setChefSoloStringSlice(c *ChefSolo, name string, value any) error {
	slice, err := stage.StringSlice(name, value)
	if err != nil {
		return err
	}

	c.Record(name, slice)

	return nil
}

func setChefSoloAnyMap(c *ChefSolo, name string, value any) error {
	mapping, err := stage.AnyMap(name, value)
	if err != nil {
		return err
	}

	c.Record(name, mapping)

	return nil
}

// callChefSoloAppend accepts a single name or a sequence of names and
// records one call per element.
func callChefSoloAppend(c *ChefSolo, name string, arg any) error {
	names, err := stage.StringSlice(name, arg)
	if err != nil {
		return err
	}

	for _, element := range names {
		c.RecordCall(name, element)
	}

	return nil
}
