package plan_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testrig-dev/testrig/pkg/svc/configurator/plan"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/provider"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/provisioner"
)

func TestMain(m *testing.M) {
	exitCode := m.Run()

	snaps.Clean(m, snaps.CleanOpts{Sort: true})

	os.Exit(exitCode)
}

func TestFinalizeStreamsEmptyPlan(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	recorder := plan.NewRecorder("", false, &out)

	require.NoError(t, recorder.Finalize())
	assert.Equal(t, "machines: []\n", out.String())
}

func TestFinalizeStreamsMachines(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	recorder := plan.NewRecorder("", false, &out)

	machine, err := recorder.Machine("test-machine0")
	require.NoError(t, err)
	require.NoError(t, machine.SetBox("ubuntu/jammy64"))
	require.NoError(t, machine.SetHostName("web"))
	require.NoError(t, machine.DeclarePrivateNetwork("10.0.0.10"))

	require.NoError(t, recorder.Finalize())

	want := "machines:\n" +
		"- box: ubuntu/jammy64\n" +
		"  host_name: web\n" +
		"  name: test-machine0\n" +
		"  private_networks:\n" +
		"  - 10.0.0.10\n"
	assert.Equal(t, want, out.String())
}

func TestRecorderCollectsStages(t *testing.T) {
	t.Parallel()

	recorder := plan.NewRecorder("", false, &bytes.Buffer{})

	machine, err := recorder.Machine("test-machine0")
	require.NoError(t, err)
	require.NoError(t, machine.SetBootTimeout(5*time.Minute))

	ansible := provisioner.NewAnsible("test-machine0")
	require.NoError(t, ansible.ApplyOption("playbook", "site.yml"))
	require.NoError(t, ansible.ApplyOption("simple_groups", []any{"web"}))
	require.NoError(t, machine.ApplyProvisioner(ansible))

	chef := provisioner.NewChefSolo()
	require.NoError(t, chef.CallMethod("add_recipe", "nginx"))
	require.NoError(t, machine.ApplyProvisioner(chef))

	virtualbox := provider.NewVirtualbox()
	require.NoError(t, virtualbox.ApplyOption("memory", 2048))
	require.NoError(t, machine.ApplyProvider(virtualbox))

	recorded, err := recorder.Plan()
	require.NoError(t, err)

	require.Len(t, recorded.Machines, 1)

	machinePlan := recorded.Machines[0]
	assert.Equal(t, "test-machine0", machinePlan.Name)
	assert.Equal(t, "5m0s", machinePlan.BootTimeout)
	assert.Equal(t, []plan.StagePlan{
		{
			Kind: "ansible",
			Settings: map[string]any{
				"playbook": "site.yml",
				"groups":   map[string][]string{"web": {"test-machine0"}},
			},
		},
		{
			Kind:  "chef_solo",
			Calls: []plan.CallPlan{{Name: "add_recipe", Arg: "nginx"}},
		},
	}, machinePlan.Provisioners)
	assert.Equal(t, []plan.StagePlan{
		{
			Kind:     "virtualbox",
			Settings: map[string]any{"memory": 2048},
		},
	}, machinePlan.Providers)
}

func TestFinalizeStreamsFullyConfiguredMachine(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	recorder := plan.NewRecorder("", false, &out)

	machine, err := recorder.Machine("test-machine0")
	require.NoError(t, err)
	require.NoError(t, machine.SetBox("ubuntu/jammy64"))
	require.NoError(t, machine.SetHostName("web"))
	require.NoError(t, machine.DeclarePrivateNetwork("10.0.0.10"))
	require.NoError(t, machine.SetBootTimeout(5*time.Minute))

	virtualbox := provider.NewVirtualbox()
	require.NoError(t, virtualbox.ApplyOption("memory", 2048))
	require.NoError(t, virtualbox.ApplyOption("gui", false))
	require.NoError(t, machine.ApplyProvider(virtualbox))

	ansible := provisioner.NewAnsible("test-machine0")
	require.NoError(t, ansible.ApplyOption("playbook", "site.yml"))
	require.NoError(t, ansible.ApplyOption("simple_groups", []any{"web"}))
	require.NoError(t, machine.ApplyProvisioner(ansible))

	require.NoError(t, recorder.Finalize())

	snaps.MatchSnapshot(t, out.String())
}

func TestPlanReturnsDeepCopy(t *testing.T) {
	t.Parallel()

	recorder := plan.NewRecorder("", false, &bytes.Buffer{})

	machine, err := recorder.Machine("test-machine0")
	require.NoError(t, err)
	require.NoError(t, machine.DeclarePrivateNetwork("10.0.0.10"))

	first, err := recorder.Plan()
	require.NoError(t, err)

	first.Machines[0].Name = "mutated"
	first.Machines[0].PrivateNetworks[0] = "mutated"

	second, err := recorder.Plan()
	require.NoError(t, err)

	assert.Equal(t, "test-machine0", second.Machines[0].Name)
	assert.Equal(t, []string{"10.0.0.10"}, second.Machines[0].PrivateNetworks)
}

func TestFinalizeWritesFile(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	output := filepath.Join(t.TempDir(), "plan.yaml")
	recorder := plan.NewRecorder(output, false, &out)

	machine, err := recorder.Machine("test-machine0")
	require.NoError(t, err)
	require.NoError(t, machine.SetBox("ubuntu/jammy64"))

	require.NoError(t, recorder.Finalize())

	onDisk, err := os.ReadFile(output) //nolint:gosec // path comes from t.TempDir
	require.NoError(t, err)
	assert.Equal(t, "machines:\n- box: ubuntu/jammy64\n  name: test-machine0\n", string(onDisk))
	assert.Equal(t, "✚ generated "+output+"\n", out.String())
}
