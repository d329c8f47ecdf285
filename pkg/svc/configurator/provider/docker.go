package provider

import (
	"fmt"
	"slices"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/strslice"
	"github.com/docker/go-connections/nat"

	"github.com/testrig-dev/testrig/pkg/svc/configurator/stage"
)

// Docker configures the docker provider for one machine. Alongside the
// recorded settings it assembles the container and host configuration the
// machine would run with, validating values such as port specs on the way.
type Docker struct {
	stage.Recorder

	containerConfig container.Config
	hostConfig      container.HostConfig
}

// NewDocker creates a docker provider configuration.
func NewDocker() *Docker {
	return &Docker{}
}

// Kind returns the provider kind name.
func (d *Docker) Kind() string {
	return KindDocker
}

// ContainerSpec returns the container and host configuration assembled from
// the applied options.
func (d *Docker) ContainerSpec() (*container.Config, *container.HostConfig) {
	return &d.containerConfig, &d.hostConfig
}

// ApplyOption invokes the typed setter registered for the option name.
func (d *Docker) ApplyOption(name string, value any) error {
	setter, ok := dockerSetters[name]
	if !ok {
		return fmt.Errorf(
			"%w: %q is not a valid option for the %s provider",
			stage.ErrUnsupportedOption, name, KindDocker,
		)
	}

	return setter(d, name, value)
}

// CallMethod rejects all methods. The docker provider is configured through
// options only.
func (d *Docker) CallMethod(name string, _ any) error {
	return fmt.Errorf(
		"%w: %q is not a valid method for the %s provider",
		stage.ErrUnsupportedMethod, name, KindDocker,
	)
}

// dockerSetters maps option names to their typed setters.
var dockerSetters = map[string]func(d *Docker, name string, value any) error{
	"image":           setDockerImage,
	"name":            setDockerName,
	"cmd":             setDockerCmd,
	"env":             setDockerEnv,
	"ports":           setDockerPorts,
	"volumes":         setDockerVolumes,
	"privileged":      setDockerPrivileged,
	"remains_running": setDockerRemainsRunning,
	"stop_timeout":    setDockerStopTimeout,
}

func setDockerImage(d *Docker, name string, value any) error {
	image, err := stage.String(name, value)
	if err != nil {
		return err
	}

	d.containerConfig.Image = image
	d.Record(name, image)

	return nil
}

func setDockerName(d *Docker, name string, value any) error {
	containerName, err := stage.String(name, value)
	if err != nil {
		return err
	}

	d.Record(name, containerName)

	return nil
}

func setDockerCmd(d *Docker, name string, value any) error {
	cmd, err := stage.StringSlice(name, value)
	if err != nil {
		return err
	}

	d.containerConfig.Cmd = strslice.StrSlice(cmd)
	d.Record(name, cmd)

	return nil
}

func setDockerEnv(d *Docker, name string, value any) error {
	env, err := stage.StringMap(name, value)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	vars := make([]string, 0, len(env))
	for _, key := range keys {
		vars = append(vars, key+"="+env[key])
	}

	d.containerConfig.Env = vars
	d.Record(name, env)

	return nil
}

// setDockerPorts parses the port specs and stores the resulting exposures
// and bindings. Malformed specs are rejected.
func setDockerPorts(d *Docker, name string, value any) error {
	ports, err := stage.StringSlice(name, value)
	if err != nil {
		return err
	}

	exposed, bindings, err := nat.ParsePortSpecs(ports)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", stage.ErrInvalidOptionValue, name, err)
	}

	d.containerConfig.ExposedPorts = exposed
	d.hostConfig.PortBindings = bindings
	d.Record(name, ports)

	return nil
}

func setDockerVolumes(d *Docker, name string, value any) error {
	volumes, err := stage.StringSlice(name, value)
	if err != nil {
		return err
	}

	d.hostConfig.Binds = volumes
	d.Record(name, volumes)

	return nil
}

func setDockerPrivileged(d *Docker, name string, value any) error {
	privileged, err := stage.Bool(name, value)
	if err != nil {
		return err
	}

	d.hostConfig.Privileged = privileged
	d.Record(name, privileged)

	return nil
}

func setDockerRemainsRunning(d *Docker, name string, value any) error {
	remains, err := stage.Bool(name, value)
	if err != nil {
		return err
	}

	d.Record(name, remains)

	return nil
}

func setDockerStopTimeout(d *Docker, name string, value any) error {
	timeout, err := stage.Duration(name, value)
	if err != nil {
		return err
	}

	seconds := int(timeout.Seconds())
	d.containerConfig.StopTimeout = &seconds
	d.Record(name, seconds)

	return nil
}
