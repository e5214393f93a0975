package main

import (
	"fmt"
	"log/slog"

	"github.com/matentzn/pyobo/ground"
	"github.com/matentzn/pyobo/source"
)

// loadClient merges the configured dump files plus any extra paths into one
// in-memory source client.
func (a *app) loadClient(extraPaths []string) (*source.Memory, error) {
	paths := append([]string{}, a.cfg.Sources.Paths...)
	paths = append(paths, extraPaths...)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no source dumps configured; pass --source or set sources.paths")
	}

	merged := source.NewMemory()
	for _, path := range paths {
		m, err := source.LoadFile(path)
		if err != nil {
			return nil, err
		}
		for _, prefix := range m.Prefixes() {
			names, err := m.IDNameMapping(prefix)
			if err != nil {
				return nil, err
			}
			synonyms, err := m.IDSynonymsMapping(prefix)
			if err != nil {
				return nil, err
			}
			merged.Register(prefix, source.Namespace{Names: names, Synonyms: synonyms})
		}
		a.logger.Debug("Loaded source dump", slog.String("path", path))
	}
	return merged, nil
}

// buildGrounder constructs the lexical index over the requested prefixes
// (falling back to the configured set) and wraps it in a grounder.
func (a *app) buildGrounder(client source.Client, prefixes []string) (*ground.Grounder, error) {
	if len(prefixes) == 0 {
		prefixes = a.cfg.Grounding.Prefixes
	}
	if len(prefixes) == 0 {
		if m, ok := client.(*source.Memory); ok {
			prefixes = m.Prefixes()
		}
	}
	if len(prefixes) == 0 {
		return nil, fmt.Errorf("no namespaces to index; pass --prefix or set grounding.prefixes")
	}

	idx, err := ground.BuildIndex(client, prefixes, &ground.BuildOptions{
		IdentifiersAreNames: a.cfg.Grounding.IdentifiersAreNames,
		Logger:              a.logger,
		Metrics:             a.metrics,
	})
	if err != nil {
		return nil, err
	}
	a.logger.Info("Built lexical index",
		slog.Int("namespaces", len(idx.Prefixes())),
		slog.Int("entries", idx.Len()))
	return ground.NewGrounder(idx).WithMetrics(a.metrics), nil
}
