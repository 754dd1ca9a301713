package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"blocgraph/internal/export"
	"blocgraph/internal/logging"
	"blocgraph/internal/render"
)

func newMapCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Write the geographic co-production figure",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, logger, err := ctx.compute(cmd)
			if err != nil {
				return err
			}
			fig := render.Map(res.Graph, ctx.renderOptions(logger))
			if asJSON {
				return writeJSON(cmd, fig)
			}

			target := outPath
			if target == "" {
				target = ctx.config.OutputPath("map.json")
			}
			if err := export.WriteJSON(cmd.Context(), target, fig); err != nil {
				return err
			}
			logger.Info("map figure written", logging.String("path", target), logging.Int("unplaced", len(fig.Unplaced)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote map figure to %s (%d countries, %d edges)\n", target, len(fig.Nodes), len(fig.Edges))
			if len(fig.Unplaced) > 0 {
				fmt.Fprintf(out, "Without coordinates: %s\n", strings.Join(fig.Unplaced, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the figure to stdout instead of writing a file")
	cmd.Flags().StringVar(&outPath, "out", "", "Destination for the figure (default <output_dir>/map.json)")
	return cmd
}
