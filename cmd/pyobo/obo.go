package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matentzn/pyobo/export"
	"github.com/matentzn/pyobo/obo"
	"github.com/matentzn/pyobo/source"
)

func oboCmd(a *app) *cobra.Command {
	var (
		sources []string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "obo <prefix>",
		Short: "Convert a loaded namespace into an OBO document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := args[0]
			client, err := a.loadClient(sources)
			if err != nil {
				return err
			}

			onto, err := buildOntology(client, prefix)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := export.WriteOBO(w, onto); err != nil {
				return fmt.Errorf("write obo: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&sources, "source", nil, "YAML namespace dump file (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

// buildOntology materializes a term collection from a namespace's lexical
// data: one term per identifier, synonyms attached.
func buildOntology(client source.Client, prefix string) (*obo.Ontology, error) {
	names, err := client.IDNameMapping(prefix)
	if err != nil {
		return nil, err
	}
	synonyms, err := client.IDSynonymsMapping(prefix)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	onto := obo.NewOntology(prefix)
	for _, id := range ids {
		term := obo.NewTermFromTriple(prefix, id, names[id])
		for _, synonym := range synonyms[id] {
			term.AppendSynonymText(synonym, nil)
		}
		if err := onto.AddTerm(term); err != nil {
			return nil, err
		}
	}
	return onto, nil
}
