package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matentzn/pyobo/obo"
)

func buildFixture(t *testing.T) *obo.Ontology {
	t.Helper()

	onto := obo.NewOntology("demo")
	onto.Name = "Demo Nomenclature"
	onto.DataVersion = "2024-01"
	onto.Typedefs = []*obo.TypeDef{obo.PartOf, obo.Orthologous}

	term := obo.NewTermFromTriple("demo", "1", "Foo Protein")
	term.SetDefinition("A demonstration protein.")
	term.AppendProvenance(obo.NewReference("pubmed", "12345", ""))
	term.AppendSynonymText("FooP", nil)
	term.AppendSynonym(obo.Synonym{
		Name:        "foo precursor",
		Specificity: obo.SpecificityBroad,
		Type:        &obo.SynonymTypeDef{ID: "previous_name", Name: "previous name"},
	})
	term.AppendXref(obo.NewReference("uniprot", "P00001", ""))
	term.AppendParent(obo.NewReference("demo", "0", "Root"))
	require.NoError(t, term.AppendRelationship(obo.PartOf, obo.NewReference("demo", "2", "Foo Complex")))
	term.AppendProperty("source", "demo dump")
	require.NoError(t, onto.AddTerm(term))

	require.NoError(t, onto.AddTerm(obo.NewTermFromTriple("demo", "2", "Foo Complex")))
	return onto
}

func TestWriteOBO(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteOBO(&sb, buildFixture(t)))
	out := sb.String()

	assert.Contains(t, out, "format-version: 1.2\n")
	assert.Contains(t, out, "data-version: 2024-01\n")
	assert.Contains(t, out, "ontology: demo\n")

	assert.Contains(t, out, "[Typedef]\nid: bfo:0000050\nname: part of\n")
	assert.Contains(t, out, "inverse_of: bfo:0000051 ! has part\n")
	assert.Contains(t, out, "is_symmetric: true\n")

	assert.Contains(t, out, "[Term]\nid: demo:1\nname: Foo Protein\n")
	assert.Contains(t, out, "def: \"A demonstration protein.\" [pubmed:12345]\n")
	assert.Contains(t, out, "synonym: \"FooP\" EXACT []\n")
	assert.Contains(t, out, "synonym: \"foo precursor\" BROAD previous_name []\n")
	assert.Contains(t, out, "xref: uniprot:P00001\n")
	assert.Contains(t, out, "is_a: demo:0 ! Root\n")
	assert.Contains(t, out, "relationship: bfo:0000050 demo:2 ! Foo Complex\n")
	assert.Contains(t, out, "property_value: source \"demo dump\"\n")

	// Terms stay in producer order.
	assert.Less(t, strings.Index(out, "id: demo:1"), strings.Index(out, "id: demo:2"))
}

func TestWriteOBOMinimalTerm(t *testing.T) {
	onto := obo.NewOntology("demo")
	require.NoError(t, onto.AddTerm(obo.NewTermFromTriple("demo", "1", "")))

	var sb strings.Builder
	require.NoError(t, WriteOBO(&sb, onto))
	out := sb.String()

	assert.Contains(t, out, "[Term]\nid: demo:1\n")
	assert.NotContains(t, out, "name:")
	assert.NotContains(t, out, "def:")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestWriteOBOPropagatesWriteError(t *testing.T) {
	err := WriteOBO(failingWriter{}, buildFixture(t))
	assert.ErrorIs(t, err, assert.AnError)
}
