package ground

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/matentzn/pyobo/metric"
	"github.com/matentzn/pyobo/obo"
	"github.com/matentzn/pyobo/source"
)

// Status tags where an index entry's text came from.
type Status string

const (
	StatusName       Status = "name"
	StatusSynonym    Status = "synonym"
	StatusIdentifier Status = "identifier"
)

// Entry is one (text, term identity) pair in the lexical index.
type Entry struct {
	// Text is the original string the entry was built from.
	Text string

	// NormText is the normalized index key.
	NormText string

	// Prefix and Identifier give the matched term's identity.
	Prefix     string
	Identifier string

	// EntryName is the term's canonical name; empty for identifier-status
	// entries of unnamed namespaces.
	EntryName string

	// Status records whether the text was the canonical name, a synonym,
	// or a bare identifier.
	Status Status

	// Source is the namespace the entry was built from.
	Source string
}

// Reference returns the entry's term identity as a model reference.
func (e Entry) Reference() obo.Reference {
	return obo.NewReference(e.Prefix, e.Identifier, e.EntryName)
}

type entryKey struct {
	normText   string
	prefix     string
	identifier string
	status     Status
}

// Index is an immutable normalized-text to entry multimap. The same
// normalized text may map to many distinct entries (true lexical ambiguity)
// and one term may appear under many normalized strings.
type Index struct {
	entries  map[string][]Entry
	prefixes []string
	size     int
}

// BuildOptions tunes index construction.
type BuildOptions struct {
	// IdentifiersAreNames lists prefixes whose bare identifiers are
	// themselves human-readable tokens and should be indexed as matchable
	// text.
	IdentifiersAreNames []string

	// Logger receives per-namespace progress and skip warnings.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics, when set, receives build instrumentation.
	Metrics *metric.Metrics
}

// BuildIndex constructs a lexical index over the requested namespaces. A
// namespace whose data cannot be built (source.ErrNoBuild) is skipped with a
// warning; the build fails only when every requested namespace is
// unavailable. Within one namespace, identifiers are processed in sorted
// order so repeated builds are deterministic.
func BuildIndex(client source.Client, prefixes []string, opts *BuildOptions) (*Index, error) {
	if opts == nil {
		opts = &BuildOptions{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	unnamed := make(map[string]bool, len(opts.IdentifiersAreNames))
	for _, p := range opts.IdentifiersAreNames {
		unnamed[p] = true
	}

	start := time.Now()
	idx := &Index{entries: make(map[string][]Entry)}
	seen := make(map[entryKey]bool)
	skipped := 0
	for _, prefix := range prefixes {
		// Stage the whole namespace before touching the index, so a
		// namespace whose synonym or identifier data turns out to be
		// unavailable leaves nothing behind.
		staged, err := namespaceEntries(client, prefix, unnamed[prefix])
		if err != nil {
			if errors.Is(err, source.ErrNoBuild) {
				logger.Warn("Skipping unavailable namespace",
					slog.String("prefix", prefix),
					slog.String("error", err.Error()))
				if opts.Metrics != nil {
					opts.Metrics.IndexSkipped.WithLabelValues(prefix).Inc()
				}
				skipped++
				continue
			}
			return nil, fmt.Errorf("build index for %s: %w", prefix, err)
		}
		for _, e := range staged {
			idx.add(e, seen, opts.Metrics)
		}
		idx.prefixes = append(idx.prefixes, prefix)
	}
	if len(prefixes) > 0 && skipped == len(prefixes) {
		return nil, fmt.Errorf("%w: no requested namespace could be built", source.ErrNoBuild)
	}
	if opts.Metrics != nil {
		opts.Metrics.IndexBuildTime.Observe(time.Since(start).Seconds())
	}
	logger.Debug("Built lexical index",
		slog.Int("namespaces", len(idx.prefixes)),
		slog.Int("entries", idx.size))
	return idx, nil
}

// namespaceEntries gathers one namespace's entries without mutating any
// shared state. All collaborator calls happen before any entry is surfaced,
// so the caller either merges the complete namespace or skips it whole.
func namespaceEntries(client source.Client, prefix string, identifiersAreNames bool) ([]Entry, error) {
	names, err := client.IDNameMapping(prefix)
	if err != nil {
		return nil, err
	}
	synonyms, err := client.IDSynonymsMapping(prefix)
	if err != nil {
		return nil, err
	}
	var ids []string
	if identifiersAreNames {
		ids, err = client.IDs(prefix)
		if err != nil {
			return nil, err
		}
	}

	var staged []Entry
	for _, identifier := range sortedKeys(names) {
		staged = append(staged, Entry{
			Text:       names[identifier],
			NormText:   Normalize(names[identifier]),
			Prefix:     prefix,
			Identifier: identifier,
			EntryName:  names[identifier],
			Status:     StatusName,
			Source:     prefix,
		})
	}
	for _, identifier := range sortedKeys(synonyms) {
		for _, synonym := range synonyms[identifier] {
			staged = append(staged, Entry{
				Text:       synonym,
				NormText:   Normalize(synonym),
				Prefix:     prefix,
				Identifier: identifier,
				EntryName:  names[identifier],
				Status:     StatusSynonym,
				Source:     prefix,
			})
		}
	}
	for _, identifier := range ids {
		staged = append(staged, Entry{
			Text:       identifier,
			NormText:   Normalize(identifier),
			Prefix:     prefix,
			Identifier: identifier,
			EntryName:  names[identifier],
			Status:     StatusIdentifier,
			Source:     prefix,
		})
	}
	return staged, nil
}

// add appends an entry unless its text normalizes to nothing or an entry
// with the same (normtext, pair, status) already exists.
func (idx *Index) add(e Entry, seen map[entryKey]bool, metrics *metric.Metrics) {
	if e.NormText == "" {
		return
	}
	key := entryKey{normText: e.NormText, prefix: e.Prefix, identifier: e.Identifier, status: e.Status}
	if seen[key] {
		return
	}
	seen[key] = true
	idx.entries[e.NormText] = append(idx.entries[e.NormText], e)
	idx.size++
	if metrics != nil {
		metrics.IndexEntries.WithLabelValues(e.Prefix, string(e.Status)).Inc()
	}
}

// Lookup returns the entries whose normalized text equals the already
// normalized key, in build order.
func (idx *Index) Lookup(normText string) []Entry {
	return idx.entries[normText]
}

// Len returns the total number of entries.
func (idx *Index) Len() int {
	return idx.size
}

// Prefixes returns the namespaces that were actually built into the index,
// in request order.
func (idx *Index) Prefixes() []string {
	return idx.prefixes
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
