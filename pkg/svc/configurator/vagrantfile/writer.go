// Package vagrantfile implements the configuration backend that renders a
// run as a Vagrantfile.
package vagrantfile

import (
	"bytes"
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/testrig-dev/testrig/pkg/fsutil"
	"github.com/testrig-dev/testrig/pkg/notify"
	"github.com/testrig-dev/testrig/pkg/svc/configurator"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/plan"
)

const vagrantfileSource = `# -*- mode: ruby -*-
# vi: set ft=ruby :

Vagrant.configure("2") do |config|
{{- range .Machines }}
  config.vm.define {{ ruby .Name }} do |machine|
{{- if .Box }}
    machine.vm.box = {{ ruby .Box }}
{{- end }}
{{- if .HostName }}
    machine.vm.hostname = {{ ruby .HostName }}
{{- end }}
{{- range .PrivateNetworks }}
    machine.vm.network "private_network", ip: {{ ruby . }}
{{- end }}
{{- if .BootTimeout }}
    machine.vm.boot_timeout = {{ seconds .BootTimeout }}
{{- end }}
{{- range .Providers }}
{{- $var := stagevar .Kind }}
    machine.vm.provider {{ ruby .Kind }} do |{{ $var }}|
{{- range settings .Settings }}
      {{ $var }}.{{ .Name }} = {{ ruby .Value }}
{{- end }}
{{- range .Calls }}
      {{ $var }}.{{ .Name }} {{ ruby .Arg }}
{{- end }}
    end
{{- end }}
{{- range .Provisioners }}
{{- $var := stagevar .Kind }}
    machine.vm.provision {{ ruby .Kind }} do |{{ $var }}|
{{- range settings .Settings }}
      {{ $var }}.{{ .Name }} = {{ ruby .Value }}
{{- end }}
{{- range .Calls }}
      {{ $var }}.{{ .Name }} {{ ruby .Arg }}
{{- end }}
    end
{{- end }}
  end
{{- end }}
end
`

// setting is a name/value pair in render order.
type setting struct {
	Name  string
	Value any
}

var vagrantfileTemplate = template.Must(
	template.New("Vagrantfile").Funcs(template.FuncMap{
		"ruby":     rubyValue,
		"stagevar": stageVariable,
		"settings": sortedSettings,
		"seconds":  bootTimeoutSeconds,
	}).Parse(vagrantfileSource),
)

// sortedSettings flattens a settings mapping into sorted name/value pairs.
func sortedSettings(settings map[string]any) []setting {
	result := make([]setting, 0, len(settings))
	for _, name := range sortedMapKeys(settings) {
		result = append(result, setting{Name: name, Value: settings[name]})
	}

	return result
}

// bootTimeoutSeconds converts a recorded boot timeout into the whole seconds
// Vagrant expects.
func bootTimeoutSeconds(bootTimeout string) (int, error) {
	duration, err := time.ParseDuration(bootTimeout)
	if err != nil {
		return 0, fmt.Errorf("parse boot timeout: %w", err)
	}

	return int(duration.Seconds()), nil
}

// Writer accumulates machine configurations and renders them as a
// Vagrantfile on Finalize.
type Writer struct {
	recorder *plan.Recorder
	output   string
	force    bool
	writer   io.Writer
}

// NewWriter creates a Vagrantfile writer. An empty output path streams the
// Vagrantfile to the writer on Finalize instead of writing a file.
func NewWriter(output string, force bool, writer io.Writer) *Writer {
	return &Writer{
		recorder: plan.NewRecorder("", false, io.Discard),
		output:   output,
		force:    force,
		writer:   writer,
	}
}

// Machine starts the configuration of the named machine.
func (w *Writer) Machine(name string) (configurator.MachineConfigurator, error) {
	return w.recorder.Machine(name)
}

// Finalize renders the Vagrantfile and writes it to its destination.
func (w *Writer) Finalize() error {
	recorded, err := w.recorder.Plan()
	if err != nil {
		return err
	}

	content, err := Render(recorded)
	if err != nil {
		return err
	}

	if w.output == "" {
		_, err = io.WriteString(w.writer, content)
		if err != nil {
			return fmt.Errorf("write Vagrantfile: %w", err)
		}

		return nil
	}

	_, err = fsutil.TryWriteFile(content, w.output, w.force)
	if err != nil {
		return fmt.Errorf("write Vagrantfile: %w", err)
	}

	notify.Generatef(w.writer, "generated %s", w.output)

	return nil
}

// Render renders a recorded plan as Vagrantfile content.
func Render(recorded plan.Plan) (string, error) {
	var buffer bytes.Buffer

	err := vagrantfileTemplate.Execute(&buffer, recorded)
	if err != nil {
		return "", fmt.Errorf("render Vagrantfile: %w", err)
	}

	return buffer.String(), nil
}
