package provisioner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testrig-dev/testrig/pkg/svc/configurator/provisioner"
	"github.com/testrig-dev/testrig/pkg/svc/configurator/stage"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     string
		wantKind string
	}{
		{kind: "ansible", wantKind: "ansible"},
		{kind: "shell", wantKind: "shell"},
		{kind: "chef_solo", wantKind: "chef_solo"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.kind, func(t *testing.T) {
			t.Parallel()

			cfg, err := provisioner.New(testCase.kind, "test-machine0")

			require.NoError(t, err)
			assert.Equal(t, testCase.wantKind, cfg.Kind())
			assert.Empty(t, cfg.Settings())
			assert.Empty(t, cfg.Calls())
		})
	}
}

func TestNewUnsupportedKind(t *testing.T) {
	t.Parallel()

	cfg, err := provisioner.New("puppet", "test-machine0")

	require.ErrorIs(t, err, provisioner.ErrUnsupportedProvisioner)
	assert.Nil(t, cfg)
	assert.EqualError(t, err, `unsupported provisioner: "puppet"`)
}

func TestAnsibleApplyOption(t *testing.T) {
	t.Parallel()

	cfg := provisioner.NewAnsible("test-machine0")

	require.NoError(t, cfg.ApplyOption("playbook", "site.yml"))
	require.NoError(t, cfg.ApplyOption("become", true))
	require.NoError(t, cfg.ApplyOption("raw_arguments", []any{"--diff"}))
	require.NoError(t, cfg.ApplyOption("extra_vars", map[string]any{"env": "staging"}))

	assert.Equal(t, []stage.Setting{
		{Name: "playbook", Value: "site.yml"},
		{Name: "become", Value: true},
		{Name: "raw_arguments", Value: []string{"--diff"}},
		{Name: "extra_vars", Value: map[string]any{"env": "staging"}},
	}, cfg.Settings())
}

func TestAnsibleSimpleGroupsExpansion(t *testing.T) {
	t.Parallel()

	cfg := provisioner.NewAnsible("test-machine0")

	require.NoError(t, cfg.ApplyOption("simple_groups", []any{"web", "db"}))

	assert.Equal(t, []stage.Setting{
		{Name: "groups", Value: map[string][]string{
			"web": {"test-machine0"},
			"db":  {"test-machine0"},
		}},
	}, cfg.Settings())
}

func TestAnsibleSimpleGroupsReplacesGroups(t *testing.T) {
	t.Parallel()

	cfg := provisioner.NewAnsible("test-machine1")

	require.NoError(t, cfg.ApplyOption("groups", map[string]any{"lb": []any{"other"}}))
	require.NoError(t, cfg.ApplyOption("simple_groups", []any{"web"}))

	assert.Equal(t, []stage.Setting{
		{Name: "groups", Value: map[string][]string{"web": {"test-machine1"}}},
	}, cfg.Settings())
}

func TestAnsibleUnsupportedOption(t *testing.T) {
	t.Parallel()

	cfg := provisioner.NewAnsible("test-machine0")

	err := cfg.ApplyOption("inventory_script", "hosts.sh")

	require.ErrorIs(t, err, stage.ErrUnsupportedOption)
	assert.EqualError(
		t, err,
		`unsupported option: "inventory_script" is not a valid option for the ansible provisioner`,
	)
	assert.Empty(t, cfg.Settings())
}

func TestAnsibleInvalidOptionValue(t *testing.T) {
	t.Parallel()

	cfg := provisioner.NewAnsible("test-machine0")

	err := cfg.ApplyOption("become", "yes")

	require.ErrorIs(t, err, stage.ErrInvalidOptionValue)
	assert.Empty(t, cfg.Settings())
}

func TestAnsibleRejectsMethods(t *testing.T) {
	t.Parallel()

	cfg := provisioner.NewAnsible("test-machine0")

	err := cfg.CallMethod("add_recipe", "nginx")

	require.ErrorIs(t, err, stage.ErrUnsupportedMethod)
}

func TestShellApplyOption(t *testing.T) {
	t.Parallel()

	cfg := provisioner.NewShell()

	require.NoError(t, cfg.ApplyOption("inline", "echo ready"))
	require.NoError(t, cfg.ApplyOption("privileged", false))
	require.NoError(t, cfg.ApplyOption("env", map[string]any{"RAILS_ENV": "test"}))
	require.NoError(t, cfg.ApplyOption("args", "--fast"))

	assert.Equal(t, []stage.Setting{
		{Name: "inline", Value: "echo ready"},
		{Name: "privileged", Value: false},
		{Name: "env", Value: map[string]string{"RAILS_ENV": "test"}},
		{Name: "args", Value: []string{"--fast"}},
	}, cfg.Settings())
}

func TestShellUnsupportedOption(t *testing.T) {
	t.Parallel()

	cfg := provisioner.NewShell()

	err := cfg.ApplyOption("playbook", "site.yml")

	require.ErrorIs(t, err, stage.ErrUnsupportedOption)
}

func TestChefSoloOptionsAndMethods(t *testing.T) {
	t.Parallel()

	cfg := provisioner.NewChefSolo()

	require.NoError(t, cfg.ApplyOption("cookbooks_path", []any{"cookbooks", "site-cookbooks"}))
	require.NoError(t, cfg.ApplyOption("json", map[string]any{"port": 8080}))
	require.NoError(t, cfg.CallMethod("add_recipe", "nginx"))
	require.NoError(t, cfg.CallMethod("add_role", "web"))
	require.NoError(t, cfg.CallMethod("add_recipe", "postgresql"))

	assert.Equal(t, []stage.Setting{
		{Name: "cookbooks_path", Value: []string{"cookbooks", "site-cookbooks"}},
		{Name: "json", Value: map[string]any{"port": 8080}},
	}, cfg.Settings())
	assert.Equal(t, []stage.Call{
		{Name: "add_recipe", Arg: "nginx"},
		{Name: "add_role", Arg: "web"},
		{Name: "add_recipe", Arg: "postgresql"},
	}, cfg.Calls())
}

func TestChefSoloAppendsMethodSequences(t *testing.T) {
	t.Parallel()

	cfg := provisioner.NewChefSolo()

	require.NoError(t, cfg.CallMethod("add_recipe", []any{"apache", "mysql"}))
	require.NoError(t, cfg.CallMethod("add_role", "web"))
	require.NoError(t, cfg.CallMethod("add_recipe", "php"))

	assert.Equal(t, []stage.Call{
		{Name: "add_recipe", Arg: "apache"},
		{Name: "add_recipe", Arg: "mysql"},
		{Name: "add_role", Arg: "web"},
		{Name: "add_recipe", Arg: "php"},
	}, cfg.Calls())
}

func TestChefSoloUnsupportedMethod(t *testing.T) {
	t.Parallel()

	cfg := provisioner.NewChefSolo()

	err := cfg.CallMethod("add_data_bag", "users")

	require.ErrorIs(t, err, stage.ErrUnsupportedMethod)
	assert.EqualError(
		t, err,
		`unsupported method: "add_data_bag" is not a valid method for the chef_solo provisioner`,
	)
}

func TestChefSoloInvalidMethodArg(t *testing.T) {
	t.Parallel()

	cfg := provisioner.NewChefSolo()

	err := cfg.CallMethod("add_recipe", 42)

	require.ErrorIs(t, err, stage.ErrInvalidOptionValue)
	assert.Empty(t, cfg.Calls())
}

func TestKinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"ansible", "chef_solo", "shell"}, provisioner.Kinds())
}
