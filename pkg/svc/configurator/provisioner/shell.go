package provisioner

import (
	"fmt"

	"github.com/testrig-dev/testrig/pkg/svc/configurator/stage"
)

// Shell configures the shell provisioner for one machine.
type Shell struct {
	stage.Recorder
}

// NewShell creates a shell provisioner configuration.
func NewShell() *Shell {
	return &Shell{}
}

// Kind returns the provisioner kind name.
func (s *Shell) Kind() string {
	return KindShell
}

// ApplyOption invokes the typed setter registered for the option name.
func (s *Shell) ApplyOption(name string, value any) error {
	setter, ok := shellSetters[name]
	if !ok {
		return fmt.Errorf(
			"%w: %q is not a valid option for the %s provisioner",
			stage.ErrUnsupportedOption, name, KindShell,
		)
	}

	return setter(s, name, value)
}

// CallMethod rejects all methods. The shell provisioner is configured
// through options only.
func (s *Shell) CallMethod(name string, _ any) error {
	return fmt.Errorf(
		"%w: %q is not a valid method for the %s provisioner",
		stage.ErrUnsupportedMethod, name, KindShell,
	)
}

// shellSetters maps option names to their typed setters.
var shellSetters = map[string]func(s *Shell, name string, value any) error{
	"inline":     setShellString,
	"path":       setShellString,
	"privileged": setShellBool,
	"reboot":     setShellBool,
	"args":       setShellStringSlice,
	"env":        setShellStringMap,
}

func setShellString(s *Shell, name string, value any) error {
	str, err := stage.String(name, value)
	if err != nil {
		return err
	}

	s.Record(name, str)

	return nil
}

func setShellBool(s *Shell, name string, value any) error {
	b, err := stage.Bool(name, value)
	if err != nil {
		return err
	}

	s.Record(name, b)

	return nil
}

func setShellStringSlice(s *Shell, name string, value any) error {
	slice, err := stage.StringSlice(name, value)
	if err != nil {
		return err
	}

	s.Record(name, slice)

	return nil
}

func setShellStringMap(s *Shell, name string, value any) error {
	env, err := stage.StringMap(name, value)
	if err != nil {
		return err
	}

	s.Record(name, env)

	return nil
}
