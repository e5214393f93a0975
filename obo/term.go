package obo

// Term is the core entity of the model: a named concept anchored by a
// Reference, accumulating definitions, synonyms, parents, typed
// relationships, cross-references, provenance, and scalar properties.
//
// Edges are stored as References, never as live pointers to other terms:
// producers may emit a child before its parent, or reference terms in other
// namespaces that are never materialized in the current run. Resolution to a
// concrete term is always a secondary lookup by pair (see Ontology).
//
// A term is mutated through its Append operations by the adapter producing
// it and is treated as immutable once yielded into a finished collection.
type Term struct {
	Reference  Reference
	Definition string
	Synonyms   []Synonym
	Parents    []Reference
	Xrefs      []Reference
	Provenance []Reference

	// Species is the denormalized single-taxon annotation maintained by
	// SetSpecies alongside the from-species relationship edge.
	Species *Reference

	relationOrder []Pair
	relations     map[Pair]*relationEdges

	propertyOrder []string
	properties    map[string]string
}

type relationEdges struct {
	typedef *TypeDef
	targets []Reference
}

// NewTerm creates a term anchored by the given reference.
func NewTerm(ref Reference) *Term {
	return &Term{Reference: ref}
}

// NewTermFromTriple creates a term from raw identity parts.
func NewTermFromTriple(prefix, identifier, name string) *Term {
	return NewTerm(NewReference(prefix, identifier, name))
}

// Pair returns the term's identity key.
func (t *Term) Pair() Pair {
	return t.Reference.Pair()
}

// Curie renders the term identity in compact URI form.
func (t *Term) Curie() string {
	return t.Reference.Curie()
}

// Name returns the term's canonical name.
func (t *Term) Name() string {
	return t.Reference.Name
}

// SetDefinition sets the free-text definition.
func (t *Term) SetDefinition(definition string) {
	t.Definition = definition
}

// AppendSynonym records alternate text for the term. Appends are
// duplicate-tolerant and order-preserving.
func (t *Term) AppendSynonym(s Synonym) {
	if s.Specificity == "" {
		s.Specificity = SpecificityExact
	}
	t.Synonyms = append(t.Synonyms, s)
}

// AppendSynonymText records a plain synonym string with an optional type.
func (t *Term) AppendSynonymText(name string, typ *SynonymTypeDef) {
	t.AppendSynonym(Synonym{Name: name, Type: typ, Specificity: SpecificityExact})
}

// AppendParent records an is-a edge. The parent need not exist yet; it is
// resolved by identity at consumption time.
func (t *Term) AppendParent(ref Reference) {
	t.Parents = append(t.Parents, ref)
}

// AppendXref records a cross-database identity claim.
func (t *Term) AppendXref(ref Reference) {
	t.Xrefs = append(t.Xrefs, ref)
}

// AppendProvenance records a supporting reference (e.g. a publication).
func (t *Term) AppendProvenance(ref Reference) {
	t.Provenance = append(t.Provenance, ref)
}

// AppendProperty records a free-form scalar annotation. A repeated key
// overwrites the value but keeps its original position.
func (t *Term) AppendProperty(key, value string) {
	if t.properties == nil {
		t.properties = make(map[string]string)
	}
	if _, ok := t.properties[key]; !ok {
		t.propertyOrder = append(t.propertyOrder, key)
	}
	t.properties[key] = value
}

// Property returns the value recorded for a property key.
func (t *Term) Property(key string) (string, bool) {
	v, ok := t.properties[key]
	return v, ok
}

// PropertyKeys returns property keys in insertion order.
func (t *Term) PropertyKeys() []string {
	return t.propertyOrder
}

// AppendRelationship records typed edges to the targets under the relation
// identified by hint (a Reference, *TypeDef, Pair, [2]string, or CURIE
// string, resolved through the default relation registry). Target order is
// preserved per relation type; independent relation types do not interact.
func (t *Term) AppendRelationship(hint RelationHint, targets ...Reference) error {
	typedef, err := DefaultRegistry().Resolve(hint)
	if err != nil {
		return err
	}
	t.AppendTypedRelationship(typedef, targets...)
	return nil
}

// AppendTypedRelationship records typed edges under an already resolved
// typedef. Never fails.
func (t *Term) AppendTypedRelationship(typedef *TypeDef, targets ...Reference) {
	e := t.edges(typedef)
	e.targets = append(e.targets, targets...)
}

func (t *Term) edges(typedef *TypeDef) *relationEdges {
	if t.relations == nil {
		t.relations = make(map[Pair]*relationEdges)
	}
	pair := typedef.Pair()
	e, ok := t.relations[pair]
	if !ok {
		e = &relationEdges{typedef: typedef}
		t.relations[pair] = e
		t.relationOrder = append(t.relationOrder, pair)
	}
	return e
}

// RelationTypes returns the typedefs with at least one recorded edge, in
// first-use order.
func (t *Term) RelationTypes() []*TypeDef {
	out := make([]*TypeDef, 0, len(t.relationOrder))
	for _, pair := range t.relationOrder {
		out = append(out, t.relations[pair].typedef)
	}
	return out
}

// RelationshipTargets returns the ordered targets recorded under the
// relation identified by hint, or nil when none exist or the hint does not
// resolve.
func (t *Term) RelationshipTargets(hint RelationHint) []Reference {
	pair, err := ReferencePair(hint)
	if err != nil {
		return nil
	}
	e, ok := t.relations[pair]
	if !ok {
		return nil
	}
	return e.targets
}

// SetSpecies annotates the term with its taxon. Species is cardinality-one:
// a repeated call replaces both the annotation and the from-species
// relationship edge rather than accumulating duplicates.
func (t *Term) SetSpecies(identifier, name string) {
	ref := NewReference("ncbitaxon", identifier, name)
	t.Species = &ref
	e := t.edges(FromSpecies)
	e.targets = append(e.targets[:0], ref)
}
