// Package obo provides the generic ontology term model shared by all
// converted sources: references, typedefs, terms with synonyms and typed
// relationships, and the process-wide relation registry.
package obo

import (
	"strings"

	"github.com/matentzn/pyobo/bioregistry"
)

// Pair is the globally unique (prefix, identifier) key of any entity.
// It is comparable and usable as a map key.
type Pair struct {
	Prefix     string
	Identifier string
}

// Curie renders the pair in compact URI form.
func (p Pair) Curie() string {
	return p.Prefix + ":" + p.Identifier
}

// Reference identifies an entity (term, typedef, namespace) anywhere in the
// system. Identity is the (prefix, identifier) pair; Name is denormalized
// display data and never participates in equality.
type Reference struct {
	Prefix     string `json:"prefix" yaml:"prefix"`
	Identifier string `json:"identifier" yaml:"identifier"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
}

// NewReference creates a reference with a lowercased prefix.
func NewReference(prefix, identifier, name string) Reference {
	return Reference{
		Prefix:     strings.ToLower(prefix),
		Identifier: identifier,
		Name:       name,
	}
}

// DefaultReference creates a reference in the module's internal namespace,
// used for ad-hoc vocabulary that has no upstream registration.
func DefaultReference(identifier, name string) Reference {
	return Reference{Prefix: "pyobo", Identifier: identifier, Name: name}
}

// ParseReference parses a prefix:identifier CURIE via the bioregistry,
// normalizing the prefix to canonical lowercase form.
func ParseReference(curie string) (Reference, error) {
	prefix, identifier, err := bioregistry.NormalizeCurie(curie)
	if err != nil {
		return Reference{}, err
	}
	return Reference{Prefix: prefix, Identifier: identifier}, nil
}

// Pair returns the identity key of the reference.
func (r Reference) Pair() Pair {
	return Pair{Prefix: r.Prefix, Identifier: r.Identifier}
}

// Equal reports pair identity, ignoring Name.
func (r Reference) Equal(o Reference) bool {
	return r.Prefix == o.Prefix && r.Identifier == o.Identifier
}

// Curie renders the reference in compact URI form.
func (r Reference) Curie() string {
	return r.Pair().Curie()
}

// String returns the CURIE so references read naturally in logs and errors.
func (r Reference) String() string {
	return r.Curie()
}

// IsZero reports whether the reference is unset.
func (r Reference) IsZero() bool {
	return r.Prefix == "" && r.Identifier == ""
}
