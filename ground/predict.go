package ground

import (
	"iter"
	"log/slog"

	"github.com/matentzn/pyobo/bioregistry"
	"github.com/matentzn/pyobo/source"
)

// Prediction is one proposed lexical mapping between a source entity and a
// grounded target term.
type Prediction struct {
	SourcePrefix     string
	SourceIdentifier string
	SourceName       string
	Relation         string
	TargetPrefix     string
	TargetIdentifier string
	TargetName       string
	Method           string
	Score            float64
}

// PredictOptions tunes batch prediction.
type PredictOptions struct {
	// IdentifiersAreNames additionally grounds the namespace's bare
	// identifiers as query text.
	IdentifiersAreNames bool

	// Logger receives progress reports. Defaults to slog.Default().
	Logger *slog.Logger

	// ProgressEvery sets how many identifiers pass between progress log
	// lines; zero disables progress reporting.
	ProgressEvery int
}

// Predictions lazily grounds every name of a namespace against the grounder
// and yields one prediction row per match. Production is one-at-a-time so a
// caller can consume partial results from a large namespace; stopping the
// iteration stops the work. Target identifiers are rendered in canonical
// external form via bioregistry.NormalizeIdentifier.
func Predictions(client source.Client, prefix, relation string, g *Grounder, opts *PredictOptions) (iter.Seq[Prediction], error) {
	if opts == nil {
		opts = &PredictOptions{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	names, err := client.IDNameMapping(prefix)
	if err != nil {
		return nil, err
	}
	var ids []string
	if opts.IdentifiersAreNames {
		ids, err = client.IDs(prefix)
		if err != nil {
			return nil, err
		}
	}

	seq := func(yield func(Prediction) bool) {
		done := 0
		progress := func() {
			done++
			if opts.ProgressEvery > 0 && done%opts.ProgressEvery == 0 {
				logger.Info("Grounding namespace",
					slog.String("prefix", prefix),
					slog.Int("processed", done))
			}
		}

		for _, identifier := range sortedKeys(names) {
			name := names[identifier]
			for _, match := range g.Ground(name) {
				if !yield(prediction(prefix, identifier, name, relation, match)) {
					return
				}
			}
			progress()
		}

		for _, identifier := range ids {
			for _, match := range g.Ground(identifier) {
				if !yield(prediction(prefix, identifier, identifier, relation, match)) {
					return
				}
			}
			progress()
		}
	}
	return seq, nil
}

func prediction(prefix, identifier, name, relation string, match ScoredMatch) Prediction {
	return Prediction{
		SourcePrefix:     prefix,
		SourceIdentifier: identifier,
		SourceName:       name,
		Relation:         relation,
		TargetPrefix:     match.Entry.Prefix,
		TargetIdentifier: bioregistry.NormalizeIdentifier(match.Entry.Prefix, match.Entry.Identifier),
		TargetName:       match.Entry.EntryName,
		Method:           match.Method,
		Score:            match.Score,
	}
}
