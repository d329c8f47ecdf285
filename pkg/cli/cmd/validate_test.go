package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testcasev1alpha1 "github.com/testrig-dev/testrig/pkg/apis/testcase/v1alpha1"
)

func TestValidateReportsNormalizedMachines(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testCasePath := writeFile(t, dir, "testcase.yaml", `machines:
  - private_ip: 10.0.0.10
  - private_ip: 10.0.0.11
`)

	out, err := runRoot(t, "validate", "--test-case-path", testCasePath)

	require.NoError(t, err)
	assert.Contains(t, out, "machine 'test-machine0' (host 'test-machine0', ip 10.0.0.10)")
	assert.Contains(t, out, "machine 'test-machine1' (host 'test-machine1', ip 10.0.0.11)")
	assert.Contains(t, out, "test case is valid (2 machine(s))")
}

func TestValidateSurfacesMergeMismatchWarnings(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testCasePath := writeFile(t, dir, "testcase.yaml", `machines:
  - private_ip: 10.0.0.10
    provisioning:
      shell:
        options:
          inline: echo hi
`)
	defaultsPath := writeFile(t, dir, "defaults.yaml", `provisioning:
  shell:
    options:
      inline:
        command: echo ok
`)

	out, err := runRoot(t,
		"validate",
		"--test-case-path", testCasePath,
		"--machine-defaults-path", defaultsPath,
	)

	require.NoError(t, err)
	assert.Contains(t, out, "provisioning.shell.options.inline")
	assert.Contains(t, out, "test case is valid (1 machine(s))")
}

func TestValidateFailsWithoutTestCasePath(t *testing.T) {
	t.Setenv(testcasev1alpha1.EnvTestCaseConfig, "")

	_, err := runRoot(t, "validate")

	require.ErrorIs(t, err, testcasev1alpha1.ErrConfigFile)
	assert.Contains(t, err.Error(), testcasev1alpha1.EnvTestCaseConfig)
}

func TestValidateReportsYAMLSyntaxErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testCasePath := writeFile(t, dir, "testcase.yaml", "machines: [unclosed\n")

	_, err := runRoot(t, "validate", "--test-case-path", testCasePath)

	require.ErrorIs(t, err, testcasev1alpha1.ErrConfigFile)
}
