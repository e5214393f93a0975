package obo

import "fmt"

// Ontology is a finished term collection for one namespace: the terms in
// producer order plus a pair index for resolve-by-lookup consumers. Within
// one ontology no two terms share a (prefix, identifier) pair.
type Ontology struct {
	// Prefix is the namespace the collection was produced for.
	Prefix string

	// Name is the human-readable resource name.
	Name string

	// DataVersion identifies the upstream dump the terms came from.
	DataVersion string

	// Typedefs lists the relation types used by this collection, in the
	// order the producer declared them.
	Typedefs []*TypeDef

	// SynonymTypeDefs lists the synonym classifications in use.
	SynonymTypeDefs []*SynonymTypeDef

	terms  []*Term
	byPair map[Pair]*Term
}

// NewOntology creates an empty collection for a namespace.
func NewOntology(prefix string) *Ontology {
	return &Ontology{
		Prefix: prefix,
		byPair: make(map[Pair]*Term),
	}
}

// AddTerm accumulates a produced term, enforcing pair uniqueness.
func (o *Ontology) AddTerm(t *Term) error {
	pair := t.Pair()
	if _, ok := o.byPair[pair]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTerm, pair.Curie())
	}
	o.byPair[pair] = t
	o.terms = append(o.terms, t)
	return nil
}

// Term looks a term up by pair.
func (o *Ontology) Term(p Pair) (*Term, bool) {
	t, ok := o.byPair[p]
	return t, ok
}

// Terms returns the terms in producer order. The slice is shared; callers
// must not modify it.
func (o *Ontology) Terms() []*Term {
	return o.terms
}

// Len returns the number of terms.
func (o *Ontology) Len() int {
	return len(o.terms)
}

// AppendParentTo is the second-pass edge operation: after the collection is
// fully materialized, hierarchy loaded from a separate tree is attached to
// already produced terms by identifier lookup.
func (o *Ontology) AppendParentTo(child Pair, parent Reference) error {
	t, ok := o.byPair[child]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTermNotFound, child.Curie())
	}
	t.AppendParent(parent)
	return nil
}

// AppendRelationshipTo attaches a typed edge to an already produced term by
// identifier lookup.
func (o *Ontology) AppendRelationshipTo(subject Pair, hint RelationHint, targets ...Reference) error {
	t, ok := o.byPair[subject]
	if !ok {
		return fmt.Errorf("%w: %s", ErrTermNotFound, subject.Curie())
	}
	return t.AppendRelationship(hint, targets...)
}
