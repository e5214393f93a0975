// Package source defines the collaborator contract through which lexical
// data for a namespace is obtained, plus in-memory and file-backed
// implementations for tests and local workflows. Real per-database adapters
// live outside this module and only need to satisfy Client.
package source

import (
	"errors"
	"fmt"
)

// ErrNoBuild is returned when a namespace's lexical data cannot be built,
// for example because no adapter is registered for it. Index construction
// treats it as recoverable and skips the namespace.
var ErrNoBuild = errors.New("namespace cannot be built")

// Client supplies per-namespace lexical data.
type Client interface {
	// IDNameMapping returns identifier to canonical-name for a namespace.
	IDNameMapping(prefix string) (map[string]string, error)

	// IDSynonymsMapping returns identifier to synonym strings for a
	// namespace. Namespaces without synonyms return an empty map.
	IDSynonymsMapping(prefix string) (map[string][]string, error)

	// IDs returns the bare identifiers of a namespace.
	IDs(prefix string) ([]string, error)
}

// NoBuildError wraps ErrNoBuild with the failing prefix.
func NoBuildError(prefix string) error {
	return fmt.Errorf("%w: %s", ErrNoBuild, prefix)
}
