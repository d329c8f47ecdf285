package provisioner

import (
	"fmt"

	"github.com/testrig-dev/testrig/pkg/svc/configurator/stage"
)

// Ansible configures the ansible provisioner for one machine.
type Ansible struct {
	stage.Recorder

	machineName string
}

// NewAnsible creates an ansible provisioner configuration. The machine name
// is used to expand simple_groups into inventory groups.
func NewAnsible(machineName string) *Ansible {
	return &Ansible{machineName: machineName}
}

// Kind returns the provisioner kind name.
func (a *Ansible) Kind() string {
	return KindAnsible
}

// ApplyOption invokes the typed setter registered for the option name.
func (a *Ansible) ApplyOption(name string, value any) error {
	setter, ok := ansibleSetters[name]
	if !ok {
		return fmt.Errorf(
			"%w: %q is not a valid option for the %s provisioner",
			stage.ErrUnsupportedOption, name, KindAnsible,
		)
	}

	return setter(a, name, value)
}

// CallMethod rejects all methods. The ansible provisioner is configured
// through options only.
func (a *Ansible) CallMethod(name string, _ any) error {
	return fmt.Errorf(
		"%w: %q is not a valid method for the %s provisioner",
		stage.ErrUnsupportedMethod, name, KindAnsible,
	)
}

// ansibleSetters maps option names to their typed setters.
var ansibleSetters = map[string]func(a *Ansible, name string, value any) error{
	"playbook":           setAnsibleString,
	"compatibility_mode": setAnsibleString,
	"limit":              setAnsibleString,
	"verbose":            setAnsibleString,
	"become":             setAnsibleBool,
	"raw_arguments":      setAnsibleStringSlice,
	"extra_vars":         setAnsibleExtraVars,
	"groups":             setAnsibleGroups,
	"simple_groups":      setAnsibleSimpleGroups,
}

func setAnsibleString(a *Ansible, name string, value any) error {
	str, err := stage.String(name, value)
	if err != nil {
		return err
	}

	a.Record(name, str)

	return nil
}

func setAnsibleBool(a *Ansible, name string, value any) error {
	b, err := stage.Bool(name, value)
	if err != nil {
		return err
	}

	a.Record(name, b)

	return nil
}

func setAnsibleStringSlice(a *Ansible, name string, value any) error {
	slice, err := stage.StringSlice(name, value)
	if err != nil {
		return err
	}

	a.Record(name, slice)

	return nil
}

func setAnsibleExtraVars(a *Ansible, name string, value any) error {
	vars, err := stage.AnyMap(name, value)
	if err != nil {
		return err
	}

	a.Record(name, vars)

	return nil
}

func setAnsibleGroups(a *Ansible, name string, value any) error {
	groups, err := stage.GroupsMap(name, value)
	if err != nil {
		return err
	}

	a.Record(name, groups)

	return nil
}

// setAnsibleSimpleGroups expands a plain list of group names into inventory
// groups that each contain the machine as their only member. The expansion
// is stored under "groups", replacing any groups set earlier.
func setAnsibleSimpleGroups(a *Ansible, name string, value any) error {
	groupNames, err := stage.StringSlice(name, value)
	if err != nil {
		return err
	}

	groups := make(map[string][]string, len(groupNames))
	for _, group := range groupNames {
		groups[group] = []string{a.machineName}
	}

	a.Record("groups", groups)

	return nil
}
