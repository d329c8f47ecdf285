// Package configmanager defines how testrig configuration documents are
// loaded. Concrete managers live in the settings and testcase subpackages.
package configmanager

import (
	"github.com/testrig-dev/testrig/pkg/ui/timer"
)

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// Timer enables timing output in notifications when provided.
	Timer timer.Timer
	// Silent suppresses all loading notifications when true.
	Silent bool
}

// ConfigManager provides configuration management functionality.
type ConfigManager[T any] interface {
	// Load loads the configuration with the specified options.
	// Returns the loaded config, either freshly loaded or previously cached.
	Load(opts LoadOptions) (*T, error)
}
