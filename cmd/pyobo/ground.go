package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func groundCmd(a *app) *cobra.Command {
	var (
		sources  []string
		prefixes []string
	)

	cmd := &cobra.Command{
		Use:   "ground <text>...",
		Short: "Find candidate terms matching the given text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.loadClient(sources)
			if err != nil {
				return err
			}
			grounder, err := a.buildGrounder(client, prefixes)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "query\tprefix\tidentifier\tname\tstatus\tmethod\tscore")
			text := strings.Join(args, " ")
			for _, match := range grounder.Ground(text) {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\t%s\t%.2f\n",
					text,
					match.Entry.Prefix,
					match.Entry.Identifier,
					match.Entry.EntryName,
					match.Entry.Status,
					match.Method,
					match.Score,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&sources, "source", nil, "YAML namespace dump file (repeatable)")
	cmd.Flags().StringSliceVar(&prefixes, "prefix", nil, "namespace to index (repeatable; default: all loaded)")
	return cmd
}
