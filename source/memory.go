package source

import "sort"

// Namespace holds the lexical data of one namespace.
type Namespace struct {
	Names    map[string]string   `yaml:"names"`
	Synonyms map[string][]string `yaml:"synonyms,omitempty"`
}

// Memory is an in-memory Client keyed by namespace prefix. Unregistered
// prefixes fail with ErrNoBuild.
type Memory struct {
	namespaces map[string]Namespace
}

// NewMemory creates an empty in-memory client.
func NewMemory() *Memory {
	return &Memory{namespaces: make(map[string]Namespace)}
}

// Register installs the lexical data for a prefix, replacing any previous
// registration.
func (m *Memory) Register(prefix string, ns Namespace) {
	m.namespaces[prefix] = ns
}

// IDNameMapping implements Client.
func (m *Memory) IDNameMapping(prefix string) (map[string]string, error) {
	ns, ok := m.namespaces[prefix]
	if !ok {
		return nil, NoBuildError(prefix)
	}
	return ns.Names, nil
}

// IDSynonymsMapping implements Client.
func (m *Memory) IDSynonymsMapping(prefix string) (map[string][]string, error) {
	ns, ok := m.namespaces[prefix]
	if !ok {
		return nil, NoBuildError(prefix)
	}
	if ns.Synonyms == nil {
		return map[string][]string{}, nil
	}
	return ns.Synonyms, nil
}

// IDs implements Client. Identifiers are returned sorted so repeated calls
// are deterministic.
func (m *Memory) IDs(prefix string) ([]string, error) {
	ns, ok := m.namespaces[prefix]
	if !ok {
		return nil, NoBuildError(prefix)
	}
	ids := make([]string, 0, len(ns.Names))
	for id := range ns.Names {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Prefixes returns the registered prefixes, sorted.
func (m *Memory) Prefixes() []string {
	out := make([]string, 0, len(m.namespaces))
	for p := range m.namespaces {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
