package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matentzn/pyobo/ground"
)

func predictCmd(a *app) *cobra.Command {
	var (
		sources  []string
		prefixes []string
		relation string
	)

	cmd := &cobra.Command{
		Use:   "predict <prefix>",
		Short: "Ground every name of a namespace and emit mapping predictions as TSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := args[0]
			client, err := a.loadClient(sources)
			if err != nil {
				return err
			}
			grounder, err := a.buildGrounder(client, prefixes)
			if err != nil {
				return err
			}

			runID := uuid.New().String()
			logger := a.logger.With(slog.String("run_id", runID), slog.String("prefix", prefix))
			logger.Info("Starting batch prediction")

			seq, err := ground.Predictions(client, prefix, relation, grounder, &ground.PredictOptions{
				IdentifiersAreNames: slices.Contains(a.cfg.Grounding.IdentifiersAreNames, prefix),
				Logger:              logger,
				ProgressEvery:       1000,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# run: %s\n", runID)
			fmt.Fprintln(out, "source_prefix\tsource_identifier\tsource_name\trelation\ttarget_prefix\ttarget_identifier\ttarget_name\tmethod\tscore")
			rows := 0
			for p := range seq {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%.2f\n",
					p.SourcePrefix, p.SourceIdentifier, p.SourceName,
					p.Relation,
					p.TargetPrefix, p.TargetIdentifier, p.TargetName,
					p.Method, p.Score,
				)
				rows++
			}
			logger.Info("Finished batch prediction", slog.Int("rows", rows))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&sources, "source", nil, "YAML namespace dump file (repeatable)")
	cmd.Flags().StringSliceVar(&prefixes, "prefix", nil, "namespace to index (repeatable; default: all loaded)")
	cmd.Flags().StringVar(&relation, "relation", "skos:exactMatch", "relation label for emitted predictions")
	return cmd
}
