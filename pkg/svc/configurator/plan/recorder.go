package plan

import (
	"fmt"
	"io"
	"time"

	"github.com/jinzhu/copier"

	"github.com/testrig-dev/testrig/pkg/fsutil"
	"github.com/testrig-dev/testrig/pkg/io/marshaller"
	yamlmarshaller "github.com/testrig-dev/testrig/pkg/io/marshaller/yaml"
	"github.com/testrig-dev/testrig/pkg/notify"
	"github.com/testrig-dev/testrig/pkg/svc/configurator"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/provider"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/provisioner"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/stage"
)

// Recorder accumulates machine configurations into a Plan. Finalize marshals
// the plan to YAML and either writes it to the configured output path or
// streams it to the writer.
type Recorder struct {
	machines   []*MachinePlan
	output     string
	force      bool
	writer     io.Writer
	marshaller marshaller.Marshaller[Plan]
}

// NewRecorder creates a plan recorder. An empty output path streams the plan
// to the writer on Finalize instead of writing a file.
func NewRecorder(output string, force bool, writer io.Writer) *Recorder {
	return &Recorder{
		machines:   nil,
		output:     output,
		force:      force,
		writer:     writer,
		marshaller: yamlmarshaller.NewMarshaller[Plan](),
	}
}

// Machine starts recording the named machine.
func (r *Recorder) Machine(name string) (configurator.MachineConfigurator, error) {
	machine := &MachinePlan{Name: name}
	r.machines = append(r.machines, machine)

	return &machineRecorder{machine: machine}, nil
}

// Finalize marshals the recorded plan and writes it to its destination.
func (r *Recorder) Finalize() error {
	recorded, err := r.Plan()
	if err != nil {
		return err
	}

	out, err := r.marshaller.Marshal(recorded)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	if r.output == "" {
		_, err = io.WriteString(r.writer, out)
		if err != nil {
			return fmt.Errorf("write plan: %w", err)
		}

		return nil
	}

	_, err = fsutil.TryWriteFile(out, r.output, r.force)
	if err != nil {
		return fmt.Errorf("write plan: %w", err)
	}

	notify.Generatef(r.writer, "generated %s", r.output)

	return nil
}

// Plan returns a deep copy of the recorded plan, so callers cannot reach the
// recorder's internal state through it.
func (r *Recorder) Plan() (Plan, error) {
	assembled := Plan{Machines: make([]MachinePlan, 0, len(r.machines))}
	for _, machine := range r.machines {
		assembled.Machines = append(assembled.Machines, *machine)
	}

	var snapshot Plan

	err := copier.CopyWithOption(&snapshot, &assembled, copier.Option{DeepCopy: true})
	if err != nil {
		return Plan{}, fmt.Errorf("copy plan: %w", err)
	}

	if snapshot.Machines == nil {
		snapshot.Machines = []MachinePlan{}
	}

	return snapshot, nil
}

// machineRecorder records the configuration of a single machine.
type machineRecorder struct {
	machine *MachinePlan
}

func (m *machineRecorder) SetBox(box string) error {
	m.machine.Box = box

	return nil
}

func (m *machineRecorder) SetHostName(hostName string) error {
	m.machine.HostName = hostName

	return nil
}

func (m *machineRecorder) DeclarePrivateNetwork(address string) error {
	m.machine.PrivateNetworks = append(m.machine.PrivateNetworks, address)

	return nil
}

func (m *machineRecorder) SetBootTimeout(timeout time.Duration) error {
	m.machine.BootTimeout = timeout.String()

	return nil
}

func (m *machineRecorder) ApplyProvisioner(cfg provisioner.Config) error {
	m.machine.Provisioners = append(
		m.machine.Provisioners, newStagePlan(cfg.Kind(), cfg.Settings(), cfg.Calls()),
	)

	return nil
}

func (m *machineRecorder) ApplyProvider(cfg provider.Config) error {
	m.machine.Providers = append(
		m.machine.Providers, newStagePlan(cfg.Kind(), cfg.Settings(), cfg.Calls()),
	)

	return nil
}

func newStagePlan(kind string, settings []stage.Setting, calls []stage.Call) StagePlan {
	stagePlan := StagePlan{Kind: kind}

	if len(settings) > 0 {
		stagePlan.Settings = make(map[string]any, len(settings))
		for _, setting := range settings {
			stagePlan.Settings[setting.Name] = setting.Value
		}
	}

	for _, call := range calls {
		stagePlan.Calls = append(stagePlan.Calls, CallPlan{Name: call.Name, Arg: call.Arg})
	}

	return stagePlan
}
