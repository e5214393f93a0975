package ground

import (
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matentzn/pyobo/metric"
	"github.com/matentzn/pyobo/source"
)

func demoClient() *source.Memory {
	m := source.NewMemory()
	m.Register("demo", source.Namespace{
		Names: map[string]string{
			"1": "Foo Protein",
			"2": "Bar Kinase",
		},
		Synonyms: map[string][]string{
			"1": {"FooP", "foo-protein"},
		},
	})
	m.Register("other", source.Namespace{
		Names: map[string]string{
			"x1": "Foo Protein",
		},
	})
	return m
}

func TestBuildIndexNamesAndSynonyms(t *testing.T) {
	idx, err := BuildIndex(demoClient(), []string{"demo"}, nil)
	require.NoError(t, err)

	entries := idx.Lookup("foo protein")
	// "Foo Protein" (name) and "foo-protein" (synonym) normalize to the
	// same key but differ in status, so both survive deduplication.
	require.Len(t, entries, 2)
	assert.Equal(t, StatusName, entries[0].Status)
	assert.Equal(t, "1", entries[0].Identifier)
	assert.Equal(t, StatusSynonym, entries[1].Status)
	assert.Equal(t, "Foo Protein", entries[1].EntryName)

	entries = idx.Lookup("foop")
	require.Len(t, entries, 1)
	assert.Equal(t, StatusSynonym, entries[0].Status)

	assert.Equal(t, []string{"demo"}, idx.Prefixes())
}

func TestBuildIndexLexicalAmbiguityAcrossNamespaces(t *testing.T) {
	idx, err := BuildIndex(demoClient(), []string{"demo", "other"}, nil)
	require.NoError(t, err)

	entries := idx.Lookup("foo protein")
	require.Len(t, entries, 3)
	// Request order drives build order: demo's entries precede other's.
	assert.Equal(t, "demo", entries[0].Source)
	assert.Equal(t, "demo", entries[1].Source)
	assert.Equal(t, "other", entries[2].Source)
}

func TestBuildIndexIdentifiersAreNames(t *testing.T) {
	m := source.NewMemory()
	m.Register("symbols", source.Namespace{
		Names: map[string]string{"MAPK1": "mitogen-activated protein kinase 1"},
	})

	idx, err := BuildIndex(m, []string{"symbols"}, &BuildOptions{
		IdentifiersAreNames: []string{"symbols"},
	})
	require.NoError(t, err)

	entries := idx.Lookup("mapk1")
	require.Len(t, entries, 1)
	assert.Equal(t, StatusIdentifier, entries[0].Status)

	// Without the flag the bare identifier is not matchable text.
	idx, err = BuildIndex(m, []string{"symbols"}, nil)
	require.NoError(t, err)
	assert.Empty(t, idx.Lookup("mapk1"))
}

func TestBuildIndexSkipsUnavailableNamespace(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	idx, err := BuildIndex(demoClient(), []string{"demo", "unbuildable"}, &BuildOptions{Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, []string{"demo"}, idx.Prefixes())
	assert.NotEmpty(t, idx.Lookup("foo protein"))
}

// synonymlessClient serves names normally but reports one namespace's
// synonym data as unbuildable.
type synonymlessClient struct {
	*source.Memory
	broken string
}

func (c *synonymlessClient) IDSynonymsMapping(prefix string) (map[string][]string, error) {
	if prefix == c.broken {
		return nil, source.NoBuildError(prefix)
	}
	return c.Memory.IDSynonymsMapping(prefix)
}

func TestBuildIndexSkipsNamespaceWhole(t *testing.T) {
	m := source.NewMemory()
	m.Register("a", source.Namespace{
		Names: map[string]string{"1": "Alpha Term"},
	})
	m.Register("b", source.Namespace{
		Names:    map[string]string{"9": "Beta Term"},
		Synonyms: map[string][]string{"9": {"BetaT"}},
	})
	logger := slog.New(slog.DiscardHandler)

	idx, err := BuildIndex(&synonymlessClient{Memory: m, broken: "b"}, []string{"a", "b"}, &BuildOptions{Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, idx.Prefixes())

	// The skipped namespace's name entries must not leak into the index
	// even though its name pass succeeded.
	assert.Empty(t, idx.Lookup("beta term"))
	assert.Equal(t, 1, idx.Len())
	assert.NotEmpty(t, idx.Lookup("alpha term"))
}

func TestBuildIndexFailsWhenNothingBuilds(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	_, err := BuildIndex(demoClient(), []string{"nope", "alsonope"}, &BuildOptions{Logger: logger})
	require.Error(t, err)
	assert.ErrorIs(t, err, source.ErrNoBuild)
}

func TestBuildIndexDeduplicates(t *testing.T) {
	m := source.NewMemory()
	m.Register("dup", source.Namespace{
		Names:    map[string]string{"1": "Foo"},
		Synonyms: map[string][]string{"1": {"Foo", "foo", "FOO"}},
	})

	idx, err := BuildIndex(m, []string{"dup"}, nil)
	require.NoError(t, err)
	// One name entry plus one synonym entry; the three case variants of
	// the synonym collapse to a single normalized entry.
	assert.Equal(t, 2, idx.Len())
}

func TestBuildIndexMetrics(t *testing.T) {
	metrics := metric.NewMetrics()
	reg := prometheus.NewRegistry()
	require.NoError(t, metrics.Register(reg))

	logger := slog.New(slog.DiscardHandler)
	_, err := BuildIndex(demoClient(), []string{"demo", "unbuildable"}, &BuildOptions{
		Logger:  logger,
		Metrics: metrics,
	})
	require.NoError(t, err)

	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.IndexEntries.WithLabelValues("demo", "name")))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.IndexEntries.WithLabelValues("demo", "synonym")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.IndexSkipped.WithLabelValues("unbuildable")))
}
