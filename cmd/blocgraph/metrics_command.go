package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"blocgraph/internal/analysis"
)

func newMetricsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show degree, betweenness and component structure of the graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, _, err := ctx.compute(cmd)
			if err != nil {
				return err
			}
			m := analysis.ComputeGraphMetrics(res.Graph)
			if asJSON {
				return writeJSON(cmd, m)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Countries: %d\n", m.Nodes)
			fmt.Fprintf(out, "Collaborations: %d\n", m.Edges)
			fmt.Fprintf(out, "Density: %s\n", formatFloat(m.Density, 3))
			fmt.Fprintf(out, "Components: %d\n", len(m.Components))
			if m.Weights.Count > 0 {
				fmt.Fprintf(out, "Edge weights: mean %s, std dev %s, median %s, max %d\n",
					formatFloat(m.Weights.Mean, 2), formatFloat(m.Weights.StdDev, 2),
					formatFloat(m.Weights.Median, 1), m.Weights.Max)
			}
			if m.Nodes == 0 {
				return nil
			}

			colorize := shouldColorize(out)
			rows := make([][]string, 0, len(m.Countries))
			for _, c := range m.Countries {
				rows = append(rows, []string{
					c.Country,
					sideLabel(c.Side, colorize),
					strconv.Itoa(c.Degree),
					strconv.Itoa(c.WeightedDegree),
					formatFloat(c.Betweenness, 2),
					strconv.Itoa(c.Component + 1),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Country", "Side", "Degree", "Weighted", "Betweenness", "Component"},
				rows, numericAligns(6, 2)))

			for i, members := range m.Components {
				if len(members) < 2 {
					continue
				}
				fmt.Fprintf(out, "Component %d: %s\n", i+1, strings.Join(members, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the metrics as JSON")
	return cmd
}
