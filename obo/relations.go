package obo

// Built-in relation vocabulary. These are shared immutable constants,
// constructed at package initialization and never mutated afterwards.
var (
	// FromSpecies annotates a term with the taxon it belongs to.
	FromSpecies = &TypeDef{
		Reference: NewReference("ro", "0002162", "in taxon"),
	}

	SpeciesSpecific = &TypeDef{
		Reference: DefaultReference("speciesSpecific", "Species Specific"),
		Definition: "X speciesSpecific Y means that Y is a general phenomena, " +
			"like a pathway, and X is the version that appears in a species. X should state which " +
			"species with RO:0002162 (in taxon)",
	}

	PartOf = &TypeDef{
		Reference: NewReference("bfo", "0000050", "part of"),
		Comment:   "Inverse of has part",
		Inverse:   refPtr(NewReference("bfo", "0000051", "has part")),
	}

	HasPart = &TypeDef{
		Reference: NewReference("bfo", "0000051", "has part"),
		Comment:   "Inverse of part of",
		Inverse:   refPtr(NewReference("bfo", "0000050", "part of")),
	}

	IsA = &TypeDef{
		Reference: NewReference("rdfs", "subClassOf", "subclass of"),
	}

	HasMember = &TypeDef{
		Reference: NewReference("ro", "0002351", "has member"),
	}

	MemberOf = &TypeDef{
		Reference: NewReference("ro", "0002350", "member of"),
		Inverse:   refPtr(HasMember.Reference),
	}

	SuperclassOf = &TypeDef{
		Reference: NewReference("sssom", "superClassOf", "super class of"),
		Comment:   "Inverse of subClassOf",
		Inverse:   refPtr(IsA.Reference),
	}

	DevelopsFrom = TypeDefFromTriple("ro", "0002202", "develops from")

	Orthologous = &TypeDef{
		Reference:   NewReference("ro", "HOM0000017", "in orthology relationship with"),
		IsSymmetric: boolPtr(true),
	}

	HasRole = &TypeDef{
		Reference: NewReference("ro", "0000087", "has role"),
		Definition: "a relation between an independent continuant (the bearer) and a role," +
			" in which the role specifically depends on the bearer for its existence",
		Domain:  refPtr(NewReference("bfo", "0000004", "independent continuant")),
		Range:   refPtr(NewReference("bfo", "0000023", "role")),
		Parents: []Reference{NewReference("ro", "0000053", "bearer of")},
		Inverse: refPtr(NewReference("ro", "0000081", "role of")),
	}

	RoleOf = &TypeDef{
		Reference: NewReference("ro", "0000081", "role of"),
		Definition: "a relation between a role and an independent continuant (the bearer)," +
			" in which the role specifically depends on the bearer for its existence",
		Parents: []Reference{NewReference("ro", "0000052", "inheres in")},
		Inverse: refPtr(NewReference("ro", "0000087", "has role")),
	}

	HasMature = &TypeDef{
		Reference: DefaultReference("has_mature", "has mature miRNA"),
	}

	TranscribesTo = &TypeDef{
		Reference: NewReference("ro", "0002511", "transcribed to"),
	}

	TranslatesTo = &TypeDef{
		Reference: NewReference("ro", "0002513", "ribosomally translates to"),
	}

	GeneProductOf = TypeDefFromTriple("ro", "0002204", "gene product of")

	// HasGeneProduct holds over the chain (transcribes to, translates to).
	HasGeneProduct = &TypeDef{
		Reference: NewReference("ro", "0002205", "has gene product"),
		Inverse:   refPtr(GeneProductOf.Reference),
	}

	GeneProductIsA = &TypeDef{
		Reference: DefaultReference("gene_product_is_a", "gene product is a"),
	}

	IsImmediatelyTransformedFrom = TypeDefFromTriple("sio", "000658", "is immediately transformed from")

	// ChEBI structural relations.
	IsConjugateBaseOf       = TypeDefFromTriple("chebi", "is_conjugate_base_of", "is conjugate base of")
	IsConjugateAcidOf       = TypeDefFromTriple("chebi", "is_conjugate_acid_of", "is conjugate acid of")
	IsEnantiomerOf          = TypeDefFromTriple("chebi", "is_enantiomer_of", "is enantiomer of")
	IsTautomerOf            = TypeDefFromTriple("chebi", "is_tautomer_of", "is tautomer of")
	HasParentHydride        = TypeDefFromTriple("chebi", "has_parent_hydride", "has parent hydride")
	IsSubstituentGroupFrom  = TypeDefFromTriple("chebi", "is_substituent_group_from", "is substituent group from")
	HasFunctionalParent     = TypeDefFromTriple("chebi", "has_functional_parent", "has functional parent")
	FormedAsResultOf        = TypeDefFromTriple("ro", "0002354", "formed as result of")
	HasPhenotype            = TypeDefFromTriple("ro", "0002200", "has phenotype")
	LocatedIn               = TypeDefFromTriple("ro", "0001025", "located in")
	ParticipatesIn          = TypeDefFromTriple("ro", "0000056", "participates in")
	HasParticipant          = TypeDefFromTriple("ro", "0000057", "has participant")
	NegativelyRegulates     = TypeDefFromTriple("ro", "0002212", "negatively regulates")
	PositivelyRegulates     = TypeDefFromTriple("ro", "0002213", "positively regulates")
	DerivesFrom             = TypeDefFromTriple("ro", "0001000", "derives from")
	HasInput                = TypeDefFromTriple("ro", "0002233", "has input")
	HasOutput               = TypeDefFromTriple("ro", "0002234", "has output")
	OccursIn                = TypeDefFromTriple("bfo", "0000066", "occurs in")
	Precedes                = TypeDefFromTriple("bfo", "0000063", "precedes")
)

// Annotation property references without relation semantics.
var (
	ExampleOfUsage  = NewReference("iao", "0000112", "example of usage")
	AlternativeTerm = NewReference("iao", "0000118", "alternative term")
	EditorNote      = NewReference("iao", "0000116", "editor note")
)

// builtinTypeDefs seeds newly created registries.
var builtinTypeDefs = []*TypeDef{
	FromSpecies,
	SpeciesSpecific,
	PartOf,
	HasPart,
	IsA,
	HasMember,
	MemberOf,
	SuperclassOf,
	DevelopsFrom,
	Orthologous,
	HasRole,
	RoleOf,
	HasMature,
	TranscribesTo,
	TranslatesTo,
	GeneProductOf,
	HasGeneProduct,
	GeneProductIsA,
	IsImmediatelyTransformedFrom,
	IsConjugateBaseOf,
	IsConjugateAcidOf,
	IsEnantiomerOf,
	IsTautomerOf,
	HasParentHydride,
	IsSubstituentGroupFrom,
	HasFunctionalParent,
	FormedAsResultOf,
	HasPhenotype,
	LocatedIn,
	ParticipatesIn,
	HasParticipant,
	NegativelyRegulates,
	PositivelyRegulates,
	DerivesFrom,
	HasInput,
	HasOutput,
	OccursIn,
	Precedes,
}
