// Package bioregistry provides namespace-prefix metadata for biomedical
// identifier resources: canonical prefix resolution, CURIE normalization,
// and identifier normalization for namespaces that embed a fixed prefix
// ("banana") in their local identifiers.
//
// The registry is loaded once from an embedded snapshot at package
// initialization and is read-only afterwards, so all lookups are safe for
// concurrent use.
package bioregistry

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var rawRegistry []byte

// Record describes one registered namespace.
type Record struct {
	// Prefix is the canonical, lowercase namespace prefix.
	Prefix string `yaml:"prefix"`

	// Name is the human-readable resource name.
	Name string `yaml:"name,omitempty"`

	// Synonyms lists alternate spellings that normalize to Prefix.
	Synonyms []string `yaml:"synonyms,omitempty"`

	// Banana is the fixed literal the namespace embeds in its local
	// identifiers (e.g. "CHEBI" for chebi, rendered as CHEBI:24867).
	Banana string `yaml:"banana,omitempty"`

	// NamespaceInLUI reports whether the uppercased prefix appears in the
	// local unique identifier even though no explicit banana is declared.
	NamespaceInLUI bool `yaml:"namespace_in_lui,omitempty"`
}

// ParseError reports a CURIE string that could not be normalized.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid curie %q: %s", e.Input, e.Reason)
}

var (
	records  map[string]*Record
	synonyms map[string]string
)

func init() {
	var loaded []*Record
	if err := yaml.Unmarshal(rawRegistry, &loaded); err != nil {
		panic(fmt.Sprintf("bioregistry: embedded registry is malformed: %v", err))
	}
	records = make(map[string]*Record, len(loaded))
	synonyms = make(map[string]string)
	for _, r := range loaded {
		r.Prefix = strings.ToLower(r.Prefix)
		records[r.Prefix] = r
		for _, s := range r.Synonyms {
			synonyms[strings.ToLower(s)] = r.Prefix
		}
	}
}

// Get returns the record for a namespace prefix, resolving synonyms.
func Get(prefix string) (*Record, bool) {
	p, ok := NormalizePrefix(prefix)
	if !ok {
		return nil, false
	}
	r, ok := records[p]
	return r, ok
}

// NormalizePrefix maps any registered spelling of a prefix to its canonical
// lowercase form. The second return value is false for unknown prefixes.
func NormalizePrefix(prefix string) (string, bool) {
	p := strings.ToLower(strings.TrimSpace(prefix))
	if _, ok := records[p]; ok {
		return p, true
	}
	if canonical, ok := synonyms[p]; ok {
		return canonical, true
	}
	return "", false
}

// NormalizeCurie splits a compact URI of the form prefix:identifier and
// returns the canonical lowercase prefix and the untouched identifier.
// A *ParseError is returned when the string does not split into two
// non-empty parts or the prefix is not registered.
func NormalizeCurie(curie string) (prefix, identifier string, err error) {
	raw, id, found := strings.Cut(curie, ":")
	if !found {
		return "", "", &ParseError{Input: curie, Reason: "missing colon separator"}
	}
	if raw == "" || id == "" {
		return "", "", &ParseError{Input: curie, Reason: "empty prefix or identifier"}
	}
	p, ok := NormalizePrefix(raw)
	if !ok {
		return "", "", &ParseError{Input: curie, Reason: fmt.Sprintf("unknown prefix %q", raw)}
	}
	return p, id, nil
}

// GetBanana returns the fixed identifier prefix declared for a namespace,
// or the empty string when the namespace has none.
func GetBanana(prefix string) string {
	r, ok := Get(prefix)
	if !ok {
		return ""
	}
	return r.Banana
}

// NamespaceInLUI reports whether a namespace repeats its prefix inside its
// local identifiers without declaring an explicit banana.
func NamespaceInLUI(prefix string) bool {
	r, ok := Get(prefix)
	if !ok {
		return false
	}
	return r.NamespaceInLUI
}

// NormalizeIdentifier renders a raw local identifier in the canonical
// external form for its namespace, prepending the banana (or the
// uppercased prefix for namespace-in-LUI resources) when the identifier
// does not already carry it. The function is pure and idempotent.
func NormalizeIdentifier(prefix, identifier string) string {
	if banana := GetBanana(prefix); banana != "" {
		if !strings.HasPrefix(identifier, banana) {
			return banana + ":" + identifier
		}
		return identifier
	}
	if NamespaceInLUI(prefix) {
		banana := strings.ToUpper(prefix) + ":"
		if !strings.HasPrefix(identifier, banana) {
			return banana + identifier
		}
	}
	return identifier
}

// Prefixes returns all canonical prefixes known to the registry.
func Prefixes() []string {
	out := make([]string, 0, len(records))
	for p := range records {
		out = append(out, p)
	}
	return out
}
