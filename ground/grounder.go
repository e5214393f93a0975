package ground

import (
	"sort"

	"github.com/matentzn/pyobo/metric"
)

// MethodLexical is the matching-method label of exact lexical matches, the
// only method this grounder implements.
const MethodLexical = "lexical"

// Status confidence policy for exact matches. Canonical names outrank
// synonyms, which outrank bare identifiers.
var statusScores = map[Status]float64{
	StatusName:       1.0,
	StatusSynonym:    0.95,
	StatusIdentifier: 0.85,
}

// ScoredMatch is one candidate term for a grounding query.
type ScoredMatch struct {
	Entry Entry

	// Method labels how the match was found.
	Method string

	// Score is the match confidence in [0, 1].
	Score float64
}

// Grounder answers repeated lookup queries against a fixed lexical index.
// It is safe for concurrent use once constructed.
type Grounder struct {
	index   *Index
	metrics *metric.Metrics
}

// NewGrounder creates a grounder over an index.
func NewGrounder(index *Index) *Grounder {
	return &Grounder{index: index}
}

// WithMetrics attaches query instrumentation.
func (g *Grounder) WithMetrics(m *metric.Metrics) *Grounder {
	g.metrics = m
	return g
}

// Index returns the underlying lexical index.
func (g *Grounder) Index() *Index {
	return g.index
}

// Ground returns every index entry whose normalized text equals the
// normalized query, ranked by score with build order breaking ties. Text
// that normalizes to the empty string, or matches nothing, yields an empty
// result, never an error.
func (g *Grounder) Ground(text string) []ScoredMatch {
	if g.metrics != nil {
		g.metrics.GroundQueries.Inc()
	}
	normText := Normalize(text)
	if normText == "" {
		if g.metrics != nil {
			g.metrics.GroundMisses.Inc()
		}
		return nil
	}
	entries := g.index.Lookup(normText)
	if len(entries) == 0 {
		if g.metrics != nil {
			g.metrics.GroundMisses.Inc()
		}
		return nil
	}
	matches := make([]ScoredMatch, 0, len(entries))
	for _, e := range entries {
		matches = append(matches, ScoredMatch{
			Entry:  e,
			Method: MethodLexical,
			Score:  statusScores[e.Status],
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if g.metrics != nil {
		g.metrics.GroundMatches.Add(float64(len(matches)))
	}
	return matches
}
