// Package v1alpha1 contains the test case API types for testrig.
//
// A test case describes the machines an integration test bed needs: their
// box image, network address, and the provisioner and provider configuration
// applied to each machine. Test cases are loaded from YAML, filled from an
// optional machine-defaults file, and normalized before dispatch.
package v1alpha1
