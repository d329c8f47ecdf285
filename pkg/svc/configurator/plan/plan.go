// Package plan implements the configuration backend that records a run as a
// backend-neutral plan document instead of driving a machine tool.
package plan

// Plan describes every machine configuration a run would apply.
type Plan struct {
	Machines []MachinePlan `json:"machines"`
}

// MachinePlan describes the configuration applied to one machine.
type MachinePlan struct {
	Name            string      `json:"name"`
	Box             string      `json:"box,omitempty"`
	HostName        string      `json:"host_name,omitempty"`
	PrivateNetworks []string    `json:"private_networks,omitempty"`
	BootTimeout     string      `json:"boot_timeout,omitempty"`
	Provisioners    []StagePlan `json:"provisioners,omitempty"`
	Providers       []StagePlan `json:"providers,omitempty"`
}

// StagePlan describes one applied provisioner or provider configuration.
type StagePlan struct {
	Kind     string         `json:"kind"`
	Settings map[string]any `json:"settings,omitempty"`
	Calls    []CallPlan     `json:"calls,omitempty"`
}

// CallPlan describes one recorded method invocation.
type CallPlan struct {
	Name string `json:"name"`
	Arg  any    `json:"arg,omitempty"`
}
