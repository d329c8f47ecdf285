// Package v1alpha1 contains the testrig tool settings API types.
//
// Settings describe how testrig itself runs: where the test case and
// machine-defaults files live, which configurator backend to drive, and
// where its output goes. They are loaded from testrig.yaml, the
// environment, and command flags.
package v1alpha1
