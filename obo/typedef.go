package obo

// TypeDef is a named, directed relation type (e.g. "part of"). Typedefs are
// constructed once and shared; nothing mutates a typedef after construction.
type TypeDef struct {
	Reference  Reference
	Namespace  string
	Definition string
	Comment    string

	// IsTransitive and IsSymmetric are tri-state: nil means unknown.
	IsTransitive *bool
	IsSymmetric  *bool

	Domain  *Reference
	Range   *Reference
	Parents []Reference
	Xrefs   []Reference
	Inverse *Reference
}

// TypeDefFromTriple creates a typedef from its raw identity parts.
func TypeDefFromTriple(prefix, identifier, name string) *TypeDef {
	return &TypeDef{Reference: NewReference(prefix, identifier, name)}
}

// TypeDefFromCurie creates a typedef from a prefix:identifier string,
// failing with a *bioregistry.ParseError on malformed input.
func TypeDefFromCurie(curie, name string) (*TypeDef, error) {
	ref, err := ParseReference(curie)
	if err != nil {
		return nil, err
	}
	ref.Name = name
	return &TypeDef{Reference: ref}, nil
}

// Pair returns the typedef's identity key.
func (t *TypeDef) Pair() Pair {
	return t.Reference.Pair()
}

// Curie renders the typedef identity in compact URI form.
func (t *TypeDef) Curie() string {
	return t.Reference.Curie()
}

// Name returns the display name of the typedef.
func (t *TypeDef) Name() string {
	return t.Reference.Name
}

// SynonymTypeDef classifies the kind of a synonym (e.g. "previous symbol").
type SynonymTypeDef struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Specificity grades how closely a synonym maps to its term.
type Specificity string

const (
	SpecificityExact   Specificity = "EXACT"
	SpecificityNarrow  Specificity = "NARROW"
	SpecificityBroad   Specificity = "BROAD"
	SpecificityRelated Specificity = "RELATED"
)

// Synonym is alternate text for a term.
type Synonym struct {
	Name        string
	Type        *SynonymTypeDef
	Specificity Specificity
	Provenance  []Reference
}

// NewSynonym creates an EXACT synonym with no type annotation.
func NewSynonym(name string) Synonym {
	return Synonym{Name: name, Specificity: SpecificityExact}
}

func boolPtr(b bool) *bool { return &b }

func refPtr(r Reference) *Reference { return &r }
