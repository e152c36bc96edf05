package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rollcall/internal/mapping"
	"rollcall/internal/match"
	"rollcall/internal/scrape"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var file string
	var seriesID string
	var expectedTitle string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "match [ref]",
		Short: "Extract episodes, apply season mappings, and score the results",
		Long: "Extract the episode listing from a series page, rebase each episode through the\n" +
			"stored season mappings, and report a confidence-scored result per episode.",
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

			id := seriesID
			if id == "" {
				series, err := extractor.Series(cmd.Context(), raw)
				if err != nil {
					return fmt.Errorf("resolve series identity (pass --series to override): %w", err)
				}
				id = series.ID
			}

			episodes := extractor.Episodes(cmd.Context(), raw)

			var mappings []mapping.SeasonMapping
			if id != "" {
				if err := ctx.withStore(func(store *mapping.Store) error {
					var listErr error
					mappings, listErr = store.ListBySeries(cmd.Context(), id)
					return listErr
				}); err != nil {
					return err
				}
			}

			scorer, err := ctx.scorer()
			if err != nil {
				return err
			}
			results := scoreEpisodes(scorer, episodes, mappings, expectedTitle)

			if asJSON {
				return writeJSON(cmd, results)
			}

			rows := make([][]string, 0, len(results))
			matched := 0
			for i, r := range results {
				if r.Success {
					matched++
				}
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					r.Episode.ID,
					formatResultPosition(r),
					fmt.Sprintf("%d", r.Confidence),
					yesNo(r.Success),
					truncate(strings.Join(r.Notes, "; "), 64),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]column{
				{header: "#", align: alignRight},
				{header: "ID"},
				{header: "Position"},
				{header: "Confidence", align: alignRight},
				{header: "Matched"},
				{header: "Notes"},
			}, rows))
			fmt.Fprintf(out, "%d/%d episodes matched\n", matched, len(results))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read markup from a file instead of fetching")
	cmd.Flags().StringVar(&seriesID, "series", "", "Series ID for mapping lookup (overrides page identity)")
	cmd.Flags().StringVar(&expectedTitle, "expected-title", "", "Demote matches whose titles diverge from this")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	return cmd
}

// scoreEpisodes rates each extracted episode, rebasing through mappings when
// any exist for the series. Reconciliation failures become failed results
// rather than aborting the batch.
func scoreEpisodes(scorer *match.Scorer, episodes []scrape.Episode, mappings []mapping.SeasonMapping, expectedTitle string) []match.Result {
	results := make([]match.Result, 0, len(episodes))
	for _, ep := range episodes {
		if len(mappings) == 0 {
			results = append(results, scorer.Score(ep, nil, expectedTitle))
			continue
		}

		local := mapping.LocalEpisode{Season: ep.Season, Episode: ep.Number}
		if !ep.HasNumber {
			local.Episode = ep.Sequence
		}
		resolution, err := mapping.Resolve(mappings, local)
		if err != nil {
			results = append(results, scorer.ScoreError(ep, err))
			continue
		}
		results = append(results, scorer.Score(ep, resolution, expectedTitle))
	}
	return results
}

func formatResultPosition(r match.Result) string {
	if !r.Success {
		return "-"
	}
	if r.Season > 0 {
		return fmt.Sprintf("S%02dE%02d", r.Season, r.Number)
	}
	return fmt.Sprintf("E%02d", r.Number)
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
