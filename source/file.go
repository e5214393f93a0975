package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML dump of namespaces into a Memory client. The file
// maps prefix to names/synonyms:
//
//	demo:
//	  names:
//	    "1": Foo Protein
//	  synonyms:
//	    "1": [FooP]
func LoadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}
	return ParseDump(data)
}

// ParseDump parses the YAML namespace-dump format from memory.
func ParseDump(data []byte) (*Memory, error) {
	var namespaces map[string]Namespace
	if err := yaml.Unmarshal(data, &namespaces); err != nil {
		return nil, fmt.Errorf("parse source dump: %w", err)
	}
	m := NewMemory()
	for prefix, ns := range namespaces {
		if ns.Names == nil {
			ns.Names = map[string]string{}
		}
		m.Register(prefix, ns)
	}
	return m, nil
}
