// Package stage holds the building blocks shared by provisioner and provider
// configurations: recorded settings, recorded method calls, and coercion of
// raw YAML values into typed ones.
package stage

// Setting is a configuration attribute applied through a setter.
type Setting struct {
	// Name is the attribute name.
	Name string
	// Value is the typed value the setter stored.
	Value any
}

// Call is a recorded method invocation on a configuration.
type Call struct {
	// Name is the method name.
	Name string
	// Arg is the typed argument the method received.
	Arg any
}

// Recorder collects the settings and calls applied to a configuration.
// Recording a setting under an existing name replaces its value in place,
// matching setter assignment semantics.
type Recorder struct {
	settings []Setting
	calls    []Call
}

// Record stores a setting, replacing the value of an already recorded name.
func (r *Recorder) Record(name string, value any) {
	for i := range r.settings {
		if r.settings[i].Name == name {
			r.settings[i].Value = value

			return
		}
	}

	r.settings = append(r.settings, Setting{Name: name, Value: value})
}

// RecordCall stores a method invocation. Calls accumulate in order.
func (r *Recorder) RecordCall(name string, arg any) {
	r.calls = append(r.calls, Call{Name: name, Arg: arg})
}

// Settings returns the recorded settings in application order.
func (r *Recorder) Settings() []Setting {
	return r.settings
}

// Calls returns the recorded method invocations in call order.
func (r *Recorder) Calls() []Call {
	return r.calls
}
