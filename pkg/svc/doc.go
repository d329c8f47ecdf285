// Package svc provides service layer components for testrig.
//
// This package contains the business logic layer that coordinates between
// the CLI commands and the configuration backends.
//
// Subpackages:
//   - configurator: backend interfaces and the plan and Vagrantfile backends
//   - dispatcher: translation of normalized machines into backend calls
//   - scaffolder: project file generation for new testrig projects
package svc
