package obo

import "sync"

// Global registry instance and initialization guard.
var (
	globalRegistry *Registry
	globalOnce     sync.Once
)

// DefaultRegistry returns the singleton relation registry, creating one
// seeded with the built-in vocabulary on first call.
func DefaultRegistry() *Registry {
	globalOnce.Do(func() {
		if globalRegistry == nil {
			globalRegistry = NewRegistry()
		}
	})
	return globalRegistry
}

// InitDefaultRegistry installs a custom registry as the singleton. Must be
// called before any call to DefaultRegistry to take effect; only the first
// initialization wins.
func InitDefaultRegistry(r *Registry) {
	globalOnce.Do(func() {
		globalRegistry = r
	})
}

// ResetDefaultRegistry clears the singleton for tests. Not thread-safe.
func ResetDefaultRegistry() {
	globalOnce = sync.Once{}
	globalRegistry = nil
}
