package v1alpha1

import (
	"errors"
	"fmt"
)

// Error categories. Condition errors below wrap one of these so callers can
// match a whole category with errors.Is.

// ErrConfigFile is the category for test case file failures: the path is
// unset, the file is missing or unreadable, the YAML does not parse, or the
// parsed document is not a mapping.
var ErrConfigFile = errors.New("invalid test case config file")

// ErrMachineDefaults is the category for machine-defaults file failures.
// A missing defaults file is not an error; a present but unreadable,
// malformed, or non-mapping file is.
var ErrMachineDefaults = errors.New("invalid machine defaults file")

// ErrConfig is the category for machine configuration failures after the
// defaults merge.
var ErrConfig = errors.New("invalid machine configuration")

// Condition errors.

// ErrConfigFileNotFound is returned when the test case path is unset or does
// not point to an existing file. The message is the remediation.
var ErrConfigFileNotFound = fmt.Errorf(
	"%w: set the %s environment variable to the path of an existing test case YAML file",
	ErrConfigFile, EnvTestCaseConfig,
)

// ErrConfigFileStructure is returned when the parsed test case document is
// not a YAML mapping.
var ErrConfigFileStructure = fmt.Errorf(
	"%w: the document root must be a YAML mapping", ErrConfigFile,
)

// ErrMachinesStructure is returned when the machines key holds anything but a
// YAML sequence.
var ErrMachinesStructure = fmt.Errorf(
	"%w: %q must be a YAML sequence", ErrConfigFile, MachinesKey,
)

// ErrMachineEntryStructure is returned when an entry in the machines sequence
// is not a YAML mapping.
var ErrMachineEntryStructure = fmt.Errorf(
	"%w: entries in %q must be YAML mappings", ErrConfigFile, MachinesKey,
)

// ErrMachineDefaultsStructure is returned when the parsed machine-defaults
// document is not a YAML mapping.
var ErrMachineDefaultsStructure = fmt.Errorf(
	"%w: the document root must be a YAML mapping", ErrMachineDefaults,
)

// ErrMissingPrivateIP is returned when a machine still has no private_ip
// after the defaults merge.
var ErrMissingPrivateIP = fmt.Errorf(
	"%w: missing required field %q", ErrConfig, FieldPrivateIP,
)
