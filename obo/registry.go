package obo

import (
	"fmt"
	"strings"
)

// RelationHint is anything that identifies a relation type: a Reference, a
// *TypeDef, a Pair, a [2]string{prefix, identifier}, or a prefix:identifier
// CURIE string. ReferencePair resolves all accepted shapes uniformly.
type RelationHint = any

// ReferencePair extracts the (prefix, identifier) pair from a relation hint.
// CURIE strings go through bioregistry normalization; pair and raw-pair
// shapes get their prefix lowercased so they address the registry the same
// way parsed references do. Malformed or unsupported input yields
// *UnknownRelationError.
func ReferencePair(hint RelationHint) (Pair, error) {
	switch h := hint.(type) {
	case Reference:
		return h.Pair(), nil
	case *TypeDef:
		return h.Pair(), nil
	case TypeDef:
		return h.Pair(), nil
	case Pair:
		return Pair{Prefix: strings.ToLower(h.Prefix), Identifier: h.Identifier}, nil
	case [2]string:
		return Pair{Prefix: strings.ToLower(h[0]), Identifier: h[1]}, nil
	case string:
		ref, err := ParseReference(h)
		if err != nil {
			return Pair{}, &UnknownRelationError{Hint: hint, Err: err}
		}
		return ref.Pair(), nil
	default:
		return Pair{}, &UnknownRelationError{
			Hint: hint,
			Err:  fmt.Errorf("unsupported hint type %T", hint),
		}
	}
}

// Registry maps every known (prefix, identifier) pair to its typedef. It is
// written during initialization only; all later access is read-only, so
// concurrent reads need no locking once construction is complete.
type Registry struct {
	typedefs map[Pair]*TypeDef
}

// NewRegistry creates a registry seeded with the built-in relation
// vocabulary plus any additional typedefs.
func NewRegistry(extra ...*TypeDef) *Registry {
	r := &Registry{typedefs: make(map[Pair]*TypeDef, len(builtinTypeDefs)+len(extra))}
	for _, td := range builtinTypeDefs {
		r.typedefs[td.Pair()] = td
	}
	for _, td := range extra {
		r.typedefs[td.Pair()] = td
	}
	return r
}

// Get returns the typedef registered for a pair.
func (r *Registry) Get(p Pair) (*TypeDef, bool) {
	td, ok := r.typedefs[p]
	return td, ok
}

// Register adds a typedef, replacing any previous registration of its pair.
// Must only be called during the single-writer initialization phase.
func (r *Registry) Register(td *TypeDef) {
	r.typedefs[td.Pair()] = td
}

// Extend adds a typedef for every pair not already known, using the display
// names from an externally loaded relation-ontology mapping. Already
// registered pairs are left untouched. Initialization phase only.
func (r *Registry) Extend(names map[Pair]string) {
	for pair, name := range names {
		if _, ok := r.typedefs[pair]; ok {
			continue
		}
		r.typedefs[pair] = TypeDefFromTriple(pair.Prefix, pair.Identifier, name)
	}
}

// Len returns the number of registered typedefs.
func (r *Registry) Len() int {
	return len(r.typedefs)
}

// Resolve turns a relation hint into a typedef. Registered pairs resolve to
// their shared typedef; a well-formed pair or CURIE that is not registered
// resolves to an ad-hoc unregistered typedef, matching the tolerance of
// source dumps that carry their own relation types.
func (r *Registry) Resolve(hint RelationHint) (*TypeDef, error) {
	pair, err := ReferencePair(hint)
	if err != nil {
		return nil, err
	}
	if td, ok := r.typedefs[pair]; ok {
		return td, nil
	}
	if pair.Prefix == "" || pair.Identifier == "" {
		return nil, &UnknownRelationError{Hint: hint}
	}
	switch h := hint.(type) {
	case *TypeDef:
		return h, nil
	case TypeDef:
		return &h, nil
	}
	return TypeDefFromTriple(pair.Prefix, pair.Identifier, ""), nil
}
