package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var file string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the provider for series candidates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			switch {
			case file != "":
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read markup file: %w", err)
				}
				raw = string(data)
			case len(args) == 1:
				client, err := ctx.fetcher()
				if err != nil {
					return err
				}
				raw, err = client.SearchPage(cmd.Context(), args[0])
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("a search query or --file is required")
			}

			extractor, err := ctx.extractor()
			if err != nil {
				return err
			}
			results := extractor.SearchResults(cmd.Context(), raw)

			if asJSON {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			for i, r := range results {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					r.ID,
					r.Slug,
					truncate(r.Title, 56),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]column{
				{header: "#", align: alignRight},
				{header: "ID"},
				{header: "Slug"},
				{header: "Title"},
			}, rows))
			fmt.Fprintf(out, "%d candidates\n", len(results))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read markup from a file instead of fetching")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	return cmd
}
