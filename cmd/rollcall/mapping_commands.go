package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rollcall/internal/mapping"
)

func newMappingCommand(ctx *commandContext) *cobra.Command {
	mappingCmd := &cobra.Command{
		Use:   "mapping",
		Short: "Manage season mappings",
		Long: "Manage per-series season mappings. A mapping rebases one locally listed season\n" +
			"onto the provider's continuous numbering via an episode offset and optional range.",
	}

	mappingCmd.AddCommand(newMappingSetCommand(ctx))
	mappingCmd.AddCommand(newMappingListCommand(ctx))
	mappingCmd.AddCommand(newMappingRemoveCommand(ctx))

	return mappingCmd
}

func newMappingSetCommand(ctx *commandContext) *cobra.Command {
	var m mapping.SeasonMapping
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "set <series-id>",
		Short: "Create or replace a season mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m.SeriesID = args[0]
			return ctx.withStore(func(store *mapping.Store) error {
				stored, err := store.Upsert(cmd.Context(), m)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, stored)
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"Mapped series %s local season %d to provider season %d (offset %+d)\n",
					stored.SeriesID, stored.LocalSeason, stored.ProviderSeason, stored.EpisodeOffset)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&m.LocalSeason, "local-season", 1, "Season number as listed on the page")
	cmd.Flags().IntVar(&m.ProviderSeason, "provider-season", 1, "Season number in provider terms")
	cmd.Flags().IntVar(&m.EpisodeOffset, "offset", 0, "Added to every local episode number")
	cmd.Flags().IntVar(&m.FirstEpisode, "first", 0, "Lowest valid provider episode number")
	cmd.Flags().IntVar(&m.LastEpisode, "last", 0, "Highest valid provider episode number (0 = open-ended)")
	cmd.Flags().StringVar(&m.Note, "note", "", "Free-form note about the mapping")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	return cmd
}

func newMappingListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list <series-id>",
		Short: "List season mappings for a series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *mapping.Store) error {
				mappings, err := store.ListBySeries(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, mappings)
				}

				rows := make([][]string, 0, len(mappings))
				for _, m := range mappings {
					last := "open"
					if m.LastEpisode != 0 {
						last = fmt.Sprintf("%d", m.LastEpisode)
					}
					rows = append(rows, []string{
						fmt.Sprintf("%d", m.LocalSeason),
						fmt.Sprintf("%d", m.ProviderSeason),
						fmt.Sprintf("%+d", m.EpisodeOffset),
						fmt.Sprintf("%d", m.FirstEpisode),
						last,
						truncate(m.Note, 40),
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable([]column{
					{header: "Local", align: alignRight},
					{header: "Provider", align: alignRight},
					{header: "Offset", align: alignRight},
					{header: "First", align: alignRight},
					{header: "Last", align: alignRight},
					{header: "Note"},
				}, rows))
				fmt.Fprintf(out, "%d mappings\n", len(mappings))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	return cmd
}

func newMappingRemoveCommand(ctx *commandContext) *cobra.Command {
	var localSeason int

	cmd := &cobra.Command{
		Use:   "remove <series-id>",
		Short: "Remove a season mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(store *mapping.Store) error {
				if err := store.Delete(cmd.Context(), args[0], localSeason); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"Removed mapping for series %s local season %d\n", args[0], localSeason)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&localSeason, "local-season", 1, "Season number as listed on the page")
	return cmd
}
