package ground

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase passthrough", input: "foo protein", want: "foo protein"},
		{name: "case folding", input: "Foo Protein", want: "foo protein"},
		{name: "whitespace collapse", input: "  foo \t protein \n", want: "foo protein"},
		{name: "ascii dash", input: "beta-catenin", want: "beta catenin"},
		{name: "unicode dash", input: "beta–catenin", want: "beta catenin"},
		{name: "underscore", input: "gene_product", want: "gene product"},
		{name: "nfkc compatibility", input: "ﬁbrin", want: "fibrin"},
		{name: "greek casefold", input: "TNF-Α", want: "tnf α"},
		{name: "empty", input: "", want: ""},
		{name: "only separators", input: " -_- ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, input := range []string{"Foo Protein", "beta-catenin", "GENE_product  X"} {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once))
	}
}
