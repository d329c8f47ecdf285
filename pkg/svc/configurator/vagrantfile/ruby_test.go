package vagrantfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRubyValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "string", input: "site.yml", want: `"site.yml"`},
		{name: "string with quotes", input: `say "hi"`, want: `"say \"hi\""`},
		{name: "symbol", input: ":id", want: ":id"},
		{name: "bool", input: true, want: "true"},
		{name: "int", input: 2048, want: "2048"},
		{name: "float", input: 1.5, want: "1.5"},
		{name: "string slice", input: []string{"a", ":id", "b"}, want: `["a", :id, "b"]`},
		{name: "any slice", input: []any{"a", 1}, want: `["a", 1]`},
		{
			name:  "string map",
			input: map[string]string{"B": "2", "A": "1"},
			want:  `{"A" => "1", "B" => "2"}`,
		},
		{
			name:  "groups map",
			input: map[string][]string{"web": {"test-machine0"}, "db": {"test-machine1"}},
			want:  `{"db" => ["test-machine1"], "web" => ["test-machine0"]}`,
		},
		{
			name:  "any map",
			input: map[string]any{"port": 8080, "host": "localhost"},
			want:  `{"host" => "localhost", "port" => 8080}`,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, rubyValue(testCase.input))
		})
	}
}

func TestStageVariable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind string
		want string
	}{
		{kind: "ansible", want: "ansible"},
		{kind: "chef_solo", want: "chef"},
		{kind: "virtualbox", want: "vb"},
		{kind: "docker", want: "d"},
		{kind: "some_other", want: "someother"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.kind, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, stageVariable(testCase.kind))
		})
	}
}

func TestBootTimeoutSeconds(t *testing.T) {
	t.Parallel()

	seconds, err := bootTimeoutSeconds("5m0s")

	assert.NoError(t, err)
	assert.Equal(t, 300, seconds)

	_, err = bootTimeoutSeconds("not a duration")

	assert.Error(t, err)
}
