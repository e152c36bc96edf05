package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeriesCommand(ctx *commandContext) *cobra.Command {
	var file string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "series [ref]",
		Short: "Extract series metadata from a series page",
		Long: "Extract series metadata from a series page. The reference may be a full URL,\n" +
			"a site path, or a bare series ID; use --file to read saved markup instead of fetching.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ref string
			if len(args) > 0 {
				ref = args[0]
			}

			raw, err := ctx.pageMarkup(cmd.Context(), ref, file)
			if err != nil {
				return err
			}

			extractor, err := ctx.extractor()
			if err != nil {
				return err
			}
			series, err := extractor.Series(cmd.Context(), raw)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, series)
			}

			rows := [][]string{
				{"ID", series.ID},
				{"Slug", series.Slug},
				{"Title", series.Title},
				{"Description", truncate(series.Description, 96)},
				{"Poster", series.Poster.FullHD},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]column{{header: "Field"}, {header: "Value"}}, rows))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read markup from a file instead of fetching")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	return cmd
}
