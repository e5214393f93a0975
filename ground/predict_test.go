package ground

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matentzn/pyobo/source"
)

func predictFixture(t *testing.T) (*source.Memory, *Grounder) {
	t.Helper()
	m := source.NewMemory()
	m.Register("chebi", source.Namespace{
		Names: map[string]string{
			"16865": "gamma-aminobutyric acid",
			"15377": "water",
		},
	})
	m.Register("mesh", source.Namespace{
		Names: map[string]string{
			"D005680": "gamma-Aminobutyric Acid",
			"D014867": "Water",
		},
	})

	idx, err := BuildIndex(m, []string{"chebi"}, nil)
	require.NoError(t, err)
	return m, NewGrounder(idx)
}

func TestPredictions(t *testing.T) {
	m, g := predictFixture(t)

	seq, err := Predictions(m, "mesh", "skos:exactMatch", g, nil)
	require.NoError(t, err)

	var rows []Prediction
	for p := range seq {
		rows = append(rows, p)
	}

	// Sorted identifier order: D005680 before D014867.
	require.Len(t, rows, 2)
	assert.Equal(t, "mesh", rows[0].SourcePrefix)
	assert.Equal(t, "D005680", rows[0].SourceIdentifier)
	assert.Equal(t, "gamma-Aminobutyric Acid", rows[0].SourceName)
	assert.Equal(t, "skos:exactMatch", rows[0].Relation)
	assert.Equal(t, "chebi", rows[0].TargetPrefix)
	// Target identifier is rendered with the namespace banana.
	assert.Equal(t, "CHEBI:16865", rows[0].TargetIdentifier)
	assert.Equal(t, "gamma-aminobutyric acid", rows[0].TargetName)
	assert.Equal(t, MethodLexical, rows[0].Method)
	assert.Equal(t, 1.0, rows[0].Score)

	assert.Equal(t, "CHEBI:15377", rows[1].TargetIdentifier)
}

func TestPredictionsLazyEarlyStop(t *testing.T) {
	m, g := predictFixture(t)

	seq, err := Predictions(m, "mesh", "skos:exactMatch", g, nil)
	require.NoError(t, err)

	// Consuming a single row and breaking must not panic or run to
	// completion behind the caller's back.
	count := 0
	for range seq {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestPredictionsIdentifiersAreNames(t *testing.T) {
	m := source.NewMemory()
	m.Register("symbols", source.Namespace{
		Names: map[string]string{"water": "water"},
	})
	m.Register("query", source.Namespace{
		Names: map[string]string{"1": "unrelated"},
	})

	idx, err := BuildIndex(m, []string{"symbols"}, nil)
	require.NoError(t, err)
	g := NewGrounder(idx)

	seq, err := Predictions(m, "query", "skos:exactMatch", g, &PredictOptions{IdentifiersAreNames: true})
	require.NoError(t, err)

	// The name pass finds nothing; nothing matches "unrelated" and the
	// identifier pass grounds the bare id "1" without a hit either.
	count := 0
	for range seq {
		count++
	}
	assert.Zero(t, count)

	// Grounding a namespace whose identifier text matches succeeds.
	m.Register("query2", source.Namespace{Names: map[string]string{"water": "totally different"}})
	seq, err = Predictions(m, "query2", "skos:exactMatch", g, &PredictOptions{IdentifiersAreNames: true})
	require.NoError(t, err)
	var rows []Prediction
	for p := range seq {
		rows = append(rows, p)
	}
	require.Len(t, rows, 1)
	assert.Equal(t, "water", rows[0].SourceIdentifier)
	assert.Equal(t, "water", rows[0].SourceName)
}

func TestPredictionsUnavailableNamespace(t *testing.T) {
	m, g := predictFixture(t)

	_, err := Predictions(m, "unregistered", "skos:exactMatch", g, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrNoBuild)
}
