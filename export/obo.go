// Package export serializes finished term collections to the OBO flat-file
// format. The writer emits to any io.Writer and never touches the
// filesystem itself.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/matentzn/pyobo/obo"
)

// FormatVersion is the OBO format version the writer emits.
const FormatVersion = "1.2"

// OBOWriter serializes one ontology as OBO stanzas.
type OBOWriter struct {
	w   io.Writer
	err error
}

// NewOBOWriter creates a writer over w.
func NewOBOWriter(w io.Writer) *OBOWriter {
	return &OBOWriter{w: w}
}

// Write emits the complete document: header, [Typedef] stanzas in
// declaration order, then [Term] stanzas in producer order.
func (ow *OBOWriter) Write(onto *obo.Ontology) error {
	ow.line("format-version: %s", FormatVersion)
	if onto.DataVersion != "" {
		ow.line("data-version: %s", onto.DataVersion)
	}
	if onto.Name != "" {
		ow.line("remark: %s", onto.Name)
	}
	ow.line("ontology: %s", onto.Prefix)

	for _, td := range onto.Typedefs {
		ow.typedef(td)
	}
	for _, term := range onto.Terms() {
		ow.term(term)
	}
	return ow.err
}

// WriteOBO is a convenience wrapper around NewOBOWriter(w).Write(onto).
func WriteOBO(w io.Writer, onto *obo.Ontology) error {
	return NewOBOWriter(w).Write(onto)
}

func (ow *OBOWriter) typedef(td *obo.TypeDef) {
	ow.line("")
	ow.line("[Typedef]")
	ow.line("id: %s", td.Curie())
	if td.Name() != "" {
		ow.line("name: %s", td.Name())
	}
	if td.Namespace != "" {
		ow.line("namespace: %s", td.Namespace)
	}
	if td.Definition != "" {
		ow.line("def: %q", td.Definition)
	}
	if td.Comment != "" {
		ow.line("comment: %s", td.Comment)
	}
	for _, xref := range td.Xrefs {
		ow.line("xref: %s", xref.Curie())
	}
	for _, parent := range td.Parents {
		ow.ref("is_a", parent)
	}
	if td.Domain != nil {
		ow.ref("domain", *td.Domain)
	}
	if td.Range != nil {
		ow.ref("range", *td.Range)
	}
	if td.Inverse != nil {
		ow.ref("inverse_of", *td.Inverse)
	}
	if td.IsTransitive != nil {
		ow.line("is_transitive: %t", *td.IsTransitive)
	}
	if td.IsSymmetric != nil {
		ow.line("is_symmetric: %t", *td.IsSymmetric)
	}
}

func (ow *OBOWriter) term(t *obo.Term) {
	ow.line("")
	ow.line("[Term]")
	ow.line("id: %s", t.Curie())
	if t.Name() != "" {
		ow.line("name: %s", t.Name())
	}
	if t.Definition != "" {
		ow.line("def: %q %s", t.Definition, bracketed(t.Provenance))
	}
	for _, s := range t.Synonyms {
		ow.synonym(s)
	}
	for _, xref := range t.Xrefs {
		ow.line("xref: %s", xref.Curie())
	}
	for _, parent := range t.Parents {
		ow.ref("is_a", parent)
	}
	for _, td := range t.RelationTypes() {
		for _, target := range t.RelationshipTargets(td) {
			if target.Name != "" {
				ow.line("relationship: %s %s ! %s", td.Curie(), target.Curie(), target.Name)
			} else {
				ow.line("relationship: %s %s", td.Curie(), target.Curie())
			}
		}
	}
	for _, key := range t.PropertyKeys() {
		value, _ := t.Property(key)
		ow.line("property_value: %s %q", key, value)
	}
}

func (ow *OBOWriter) synonym(s obo.Synonym) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "synonym: %q %s", s.Name, s.Specificity)
	if s.Type != nil {
		sb.WriteString(" " + s.Type.ID)
	}
	sb.WriteString(" " + bracketed(s.Provenance))
	ow.line("%s", sb.String())
}

func (ow *OBOWriter) ref(tag string, r obo.Reference) {
	if r.Name != "" {
		ow.line("%s: %s ! %s", tag, r.Curie(), r.Name)
	} else {
		ow.line("%s: %s", tag, r.Curie())
	}
}

func (ow *OBOWriter) line(format string, args ...any) {
	if ow.err != nil {
		return
	}
	_, ow.err = fmt.Fprintf(ow.w, format+"\n", args...)
}

func bracketed(refs []obo.Reference) string {
	if len(refs) == 0 {
		return "[]"
	}
	curies := make([]string, len(refs))
	for i, r := range refs {
		curies[i] = r.Curie()
	}
	return "[" + strings.Join(curies, ", ") + "]"
}
