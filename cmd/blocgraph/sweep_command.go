package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"blocgraph/internal/analysis"
	"blocgraph/internal/logging"
)

func newSweepCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var axisFlag string
	var from, to, step int

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Show how the graph shrinks as a relevance threshold grows",
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, err := analysis.ParseAxis(axisFlag)
			if err != nil {
				return err
			}
			if from < 0 || to < from {
				return errors.New("sweep range must satisfy 0 <= --from <= --to")
			}
			if n := analysis.RangeLen(from, to, step); n > analysis.MaxSweepPoints {
				return fmt.Errorf("sweep would compute %d graphs; narrow --from/--to or raise --step (limit %d)", n, analysis.MaxSweepPoints)
			}
			logger, err := ctx.loggerFor(cmd.Context())
			if err != nil {
				return err
			}
			records, err := ctx.loadRecords(cmd.Context(), logger)
			if err != nil {
				return err
			}
			points, err := analysis.Sweep(records, ctx.params(), axis, analysis.Range(from, to, step))
			if err != nil {
				return err
			}
			logger.Info("sweep finished", logging.String("axis", string(axis)), logging.Int("points", len(points)))
			if asJSON {
				return writeJSON(cmd, points)
			}

			rows := make([][]string, 0, len(points))
			for _, p := range points {
				rows = append(rows, []string{
					strconv.Itoa(p.Value),
					strconv.Itoa(p.Nodes),
					strconv.Itoa(p.Edges),
					strconv.Itoa(p.Western),
					strconv.Itoa(p.Eastern),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{string(axis), "Countries", "Collaborations", "Western", "Eastern"},
				rows, numericAligns(5, 0)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the sweep as JSON")
	cmd.Flags().StringVar(&axisFlag, "axis", string(analysis.AxisMinFilms), "Parameter to vary: min_films or min_collab")
	cmd.Flags().IntVar(&from, "from", 0, "First value")
	cmd.Flags().IntVar(&to, "to", 20, "Last value")
	cmd.Flags().IntVar(&step, "step", 1, "Increment between values")
	return cmd
}
