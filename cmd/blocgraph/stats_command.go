package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"blocgraph/internal/analysis"
	"blocgraph/internal/movies"
)

type statsView struct {
	Distribution analysis.Distribution `json:"distribution"`
	Countries    []string              `json:"countries"`
	Years        []analysis.YearCount  `json:"years"`
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the side distribution and per-year movie counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.loggerFor(cmd.Context())
			if err != nil {
				return err
			}
			records, err := ctx.loadRecords(cmd.Context(), logger)
			if err != nil {
				return err
			}
			view := statsView{
				Distribution: analysis.SideDistribution(records),
				Countries:    movies.NewStore(records).Countries(),
				Years:        analysis.YearlyCounts(records),
			}
			if asJSON {
				return writeJSON(cmd, view)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, renderSectionHeader("Sides"))
			fmt.Fprintf(out, "Movies: %d\n", view.Distribution.Total)
			fmt.Fprintf(out, "Countries credited: %d\n", len(view.Countries))
			polarShare := make(map[string]string, len(view.Distribution.Polarized))
			for _, s := range view.Distribution.Polarized {
				polarShare[s.Side.String()] = formatPercent(s.Share)
			}
			rows := make([][]string, 0, len(view.Distribution.All))
			for _, s := range view.Distribution.All {
				polar, ok := polarShare[s.Side.String()]
				if !ok {
					polar = "-"
				}
				rows = append(rows, []string{sideLabel(s.Side, colorize), strconv.Itoa(s.Count), formatPercent(s.Share), polar})
			}
			fmt.Fprintln(out, renderTable([]string{"Side", "Movies", "Share", "Share of blocs"}, rows, numericAligns(4, 1)))

			fmt.Fprintln(out, renderSectionHeader("Years"))
			if len(view.Years) == 0 {
				fmt.Fprintln(out, "No movie has a known release year")
				return nil
			}
			rows = make([][]string, 0, len(view.Years))
			for _, y := range view.Years {
				rows = append(rows, []string{
					strconv.Itoa(y.Year),
					strconv.Itoa(y.Western),
					strconv.Itoa(y.Eastern),
					strconv.Itoa(y.None),
					strconv.Itoa(y.Total),
				})
			}
			fmt.Fprintln(out, renderTable([]string{"Year", "Western", "Eastern", "None", "Total"}, rows, numericAligns(5, 1)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the statistics as JSON")
	return cmd
}
