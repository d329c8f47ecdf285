// Package settings loads testrig tool settings from testrig.yaml, the
// environment, and CLI flags.
//
// Configuration priority: defaults < testrig.yaml < environment variables <
// flags. Field selectors describe the configurable fields once and drive both
// flag creation and default application.
package settings
