// Package apis provides API type definitions for testrig resources.
//
// This package contains versioned API types following Kubernetes API conventions:
//
//   - settings: tool configuration loaded from testrig.yaml
//   - testcase: machine descriptions loaded from test case YAML
//
// The API types are designed to be serializable to YAML and support
// declarative configuration workflows.
package apis
