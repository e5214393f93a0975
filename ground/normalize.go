// Package ground builds normalized lexical indices over the names and
// synonyms of one or more namespaces and answers exact-match grounding
// queries against them.
package ground

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize maps text to the canonical form used for index keys and query
// lookup: NFKC normalization, full case folding, unicode dashes and
// underscores mapped to spaces, and whitespace runs collapsed to a single
// space. Lookups are therefore insensitive to superficial formatting
// differences between source dumps and query text.
func Normalize(text string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKC, cases.Fold()), text)
	if err != nil {
		// The chain cannot fail on valid UTF-8; fall back to the raw text
		// for the odd malformed input rather than dropping it.
		folded = strings.ToLower(text)
	}
	mapped := strings.Map(func(r rune) rune {
		if unicode.In(r, unicode.Pd) || r == '_' || unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, folded)
	return strings.Join(strings.Fields(mapped), " ")
}
