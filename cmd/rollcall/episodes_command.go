package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEpisodesCommand(ctx *commandContext) *cobra.Command {
	var file string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "episodes [ref]",
		Short: "Extract the episode listing from a series page",
		Args:  cobra.MaximumNArgs(1),
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
			episodes := extractor.Episodes(cmd.Context(), raw)

			if asJSON {
				return writeJSON(cmd, episodes)
			}

			rows := make([][]string, 0, len(episodes))
			for _, ep := range episodes {
				rows = append(rows, []string{
					fmt.Sprintf("%d", ep.Sequence),
					ep.ID,
					formatSeason(ep),
					formatNumber(ep),
					ep.NumberSource.String(),
					truncate(ep.Title, 48),
					formatDuration(ep.DurationMS),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]column{
				{header: "#", align: alignRight},
				{header: "ID"},
				{header: "Season", align: alignRight},
				{header: "Episode", align: alignRight},
				{header: "Source"},
				{header: "Title"},
				{header: "Duration", align: alignRight},
			}, rows))
			fmt.Fprintf(out, "%d episodes\n", len(episodes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read markup from a file instead of fetching")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	return cmd
}
