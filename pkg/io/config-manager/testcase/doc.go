// Package testcase loads test case documents into v1alpha1.TestCase values.
//
// Loading reads the machine-defaults file (optional), reads and parses the
// test case YAML, merges defaults into every machine, and normalizes the
// result: private_ip is required, names fall back to the machine's position
// in the document, host names fall back to the machine name.
//
// Import with an alias for clarity:
//
//	import testcaseconfigmanager "github.com/testrig-dev/testrig/pkg/io/config-manager/testcase"
package testcase
