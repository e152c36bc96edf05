package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var file string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect [ref]",
		Short: "Show which extraction strategies hit or miss on a page",
		Long: "Evaluate every extraction strategy against a page and report each hit and miss.\n" +
			"Useful when upstream markup changes and extractions start falling through to fallbacks.",
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
			outcomes := extractor.Inspect(raw)

			if asJSON {
				return writeJSON(cmd, outcomes)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			for _, line := range renderSectionHeader("extraction strategies", colorize) {
				fmt.Fprintln(out, line)
			}

			hits := 0
			for _, o := range outcomes {
				kind := statusWarn
				switch {
				case o.Recovered:
					kind = statusError
				case o.Hit:
					kind = statusOK
					hits++
				}
				label := o.Field + " / " + o.Strategy
				fmt.Fprintln(out, renderStatusLine(label, kind, truncate(o.Value, 56), colorize))
			}
			fmt.Fprintln(out, renderStatusLine("strategies hit", statusInfo,
				fmt.Sprintf("%d of %d", hits, len(outcomes)), colorize))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read markup from a file instead of fetching")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON")
	return cmd
}
