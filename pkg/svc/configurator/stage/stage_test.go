package stage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testrig-dev/testrig/pkg/svc/configurator/stage"
)

func TestRecordAppendsInOrder(t *testing.T) {
	t.Parallel()

	var recorder stage.Recorder

	recorder.Record("playbook", "site.yml")
	recorder.Record("become", true)

	assert.Equal(t, []stage.Setting{
		{Name: "playbook", Value: "site.yml"},
		{Name: "become", Value: true},
	}, recorder.Settings())
}

func TestRecordReplacesExistingName(t *testing.T) {
	t.Parallel()

	var recorder stage.Recorder

	recorder.Record("groups", map[string][]string{"web": {"a"}})
	recorder.Record("become", true)
	recorder.Record("groups", map[string][]string{"db": {"b"}})

	assert.Equal(t, []stage.Setting{
		{Name: "groups", Value: map[string][]string{"db": {"b"}}},
		{Name: "become", Value: true},
	}, recorder.Settings())
}

func TestRecordCallAccumulates(t *testing.T) {
	t.Parallel()

	var recorder stage.Recorder

	recorder.RecordCall("add_recipe", "nginx")
	recorder.RecordCall("add_recipe", "postgresql")

	assert.Equal(t, []stage.Call{
		{Name: "add_recipe", Arg: "nginx"},
		{Name: "add_recipe", Arg: "postgresql"},
	}, recorder.Calls())
}

func TestString(t *testing.T) {
	t.Parallel()

	value, err := stage.String("playbook", "site.yml")

	require.NoError(t, err)
	assert.Equal(t, "site.yml", value)

	_, err = stage.String("playbook", 42)

	require.ErrorIs(t, err, stage.ErrInvalidOptionValue)
	assert.EqualError(
		t, err, `invalid value: "playbook" expects a string, got int`,
	)
}

func TestBool(t *testing.T) {
	t.Parallel()

	value, err := stage.Bool("become", true)

	require.NoError(t, err)
	assert.True(t, value)

	_, err = stage.Bool("become", "yes")

	require.ErrorIs(t, err, stage.ErrInvalidOptionValue)
}

func TestInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   any
		want    int
		wantErr bool
	}{
		{name: "int", input: 1024, want: 1024},
		{name: "int64", input: int64(2048), want: 2048},
		{name: "string", input: "1024", wantErr: true},
		{name: "float", input: 10.5, wantErr: true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := stage.Int("memory", testCase.input)

			if testCase.wantErr {
				require.ErrorIs(t, err, stage.ErrInvalidOptionValue)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, value)
		})
	}
}

func TestDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   any
		want    time.Duration
		wantErr bool
	}{
		{name: "int seconds", input: 30, want: 30 * time.Second},
		{name: "int64 seconds", input: int64(300), want: 5 * time.Minute},
		{name: "float seconds", input: 1.5, want: 1500 * time.Millisecond},
		{name: "duration string", input: "2m30s", want: 2*time.Minute + 30*time.Second},
		{name: "malformed string", input: "soon", wantErr: true},
		{name: "bool", input: true, wantErr: true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := stage.Duration("stop_timeout", testCase.input)

			if testCase.wantErr {
				require.ErrorIs(t, err, stage.ErrInvalidOptionValue)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, value)
		})
	}
}

func TestStringSlice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   any
		want    []string
		wantErr bool
	}{
		{name: "list of strings", input: []any{"web", "db"}, want: []string{"web", "db"}},
		{name: "bare string", input: "web", want: []string{"web"}},
		{name: "typed slice", input: []string{"web"}, want: []string{"web"}},
		{name: "mixed list", input: []any{"web", 42}, wantErr: true},
		{name: "mapping", input: map[string]any{}, wantErr: true},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := stage.StringSlice("simple_groups", testCase.input)

			if testCase.wantErr {
				require.ErrorIs(t, err, stage.ErrInvalidOptionValue)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, value)
		})
	}
}

func TestStringMap(t *testing.T) {
	t.Parallel()

	value, err := stage.StringMap("env", map[string]any{"RAILS_ENV": "test"})

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"RAILS_ENV": "test"}, value)

	_, err = stage.StringMap("env", map[string]any{"RAILS_ENV": 1})

	require.ErrorIs(t, err, stage.ErrInvalidOptionValue)
}

func TestAnyMap(t *testing.T) {
	t.Parallel()

	value, err := stage.AnyMap("json", map[string]any{"port": 8080})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"port": 8080}, value)

	_, err = stage.AnyMap("json", "not a mapping")

	require.ErrorIs(t, err, stage.ErrInvalidOptionValue)
}

func TestGroupsMap(t *testing.T) {
	t.Parallel()

	value, err := stage.GroupsMap("groups", map[string]any{
		"web": []any{"test-machine0"},
		"db":  []any{"test-machine0", "test-machine1"},
	})

	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"web": {"test-machine0"},
		"db":  {"test-machine0", "test-machine1"},
	}, value)

	_, err = stage.GroupsMap("groups", map[string]any{"web": 42})

	require.ErrorIs(t, err, stage.ErrInvalidOptionValue)
	assert.ErrorContains(t, err, `group "web"`)
}
