package obo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOntologyAddTermRejectsDuplicatePair(t *testing.T) {
	onto := NewOntology("hgnc")

	require.NoError(t, onto.AddTerm(NewTermFromTriple("hgnc", "16793", "MAPK1")))
	require.NoError(t, onto.AddTerm(NewTermFromTriple("hgnc", "6871", "MAPK3")))

	err := onto.AddTerm(NewTermFromTriple("hgnc", "16793", "renamed"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateTerm)
	assert.Equal(t, 2, onto.Len())
}

func TestOntologyLookupAndOrder(t *testing.T) {
	onto := NewOntology("interpro")
	first := NewTermFromTriple("interpro", "IPR000001", "Kringle")
	second := NewTermFromTriple("interpro", "IPR000003", "Retinoid X receptor")
	require.NoError(t, onto.AddTerm(first))
	require.NoError(t, onto.AddTerm(second))

	got, ok := onto.Term(Pair{Prefix: "interpro", Identifier: "IPR000001"})
	require.True(t, ok)
	assert.Same(t, first, got)

	_, ok = onto.Term(Pair{Prefix: "interpro", Identifier: "IPR999999"})
	assert.False(t, ok)

	assert.Equal(t, []*Term{first, second}, onto.Terms())
}

func TestOntologySecondPassEdges(t *testing.T) {
	// Children may be produced before the separately loaded hierarchy is
	// attached by identifier lookup.
	onto := NewOntology("mesh")
	child := NewTermFromTriple("mesh", "D000255", "Adenosine")
	require.NoError(t, onto.AddTerm(child))

	parent := NewReference("mesh", "D011977", "Purine Nucleosides")
	require.NoError(t, onto.AppendParentTo(child.Pair(), parent))
	assert.Equal(t, []Reference{parent}, child.Parents)

	err := onto.AppendParentTo(Pair{Prefix: "mesh", Identifier: "missing"}, parent)
	assert.ErrorIs(t, err, ErrTermNotFound)

	require.NoError(t, onto.AppendRelationshipTo(child.Pair(), PartOf, parent))
	assert.Equal(t, []Reference{parent}, child.RelationshipTargets(PartOf))

	err = onto.AppendRelationshipTo(Pair{Prefix: "mesh", Identifier: "missing"}, PartOf, parent)
	assert.ErrorIs(t, err, ErrTermNotFound)
}
