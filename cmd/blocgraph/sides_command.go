package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"blocgraph/internal/analysis"
	"blocgraph/internal/collab"
	"blocgraph/internal/movies"
)

type sideRow struct {
	analysis.CountryTally
	// Difference is the Western/Eastern percentage-point gap; nil when the
	// country has no polarized movie.
	Difference *float64    `json:"difference"`
	Verdict    movies.Side `json:"verdict"`
	InGraph    bool        `json:"in_graph"`
}

func buildSideRows(res *collab.Result, tallies []analysis.CountryTally) []sideRow {
	rows := make([]sideRow, 0, len(tallies))
	for _, ct := range tallies {
		t := res.Tallies[ct.Country]
		row := sideRow{
			CountryTally: ct,
			Verdict:      collab.Classify(t, res.Params.Classifier),
		}
		if pd, ok := t.PercentageDifference(); ok {
			row.Difference = &pd
		}
		_, row.InGraph = res.Graph.Node(ct.Country)
		rows = append(rows, row)
	}
	return rows
}

// verdictCounts summarizes rows as "Western 1, Eastern 0, ..." over every
// verdict, including those no country received.
func verdictCounts(rows []sideRow) string {
	counts := make(map[movies.Side]int, len(movies.CountrySides))
	for _, r := range rows {
		counts[r.Verdict]++
	}
	parts := make([]string, len(movies.CountrySides))
	for i, side := range movies.CountrySides {
		parts[i] = fmt.Sprintf("%s %d", side, counts[side])
	}
	return strings.Join(parts, ", ")
}

func newSidesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var limit int

	cmd := &cobra.Command{
		Use:   "sides",
		Short: "Show per-country side tallies and verdicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, records, _, err := ctx.compute(cmd)
			if err != nil {
				return err
			}
			rows := buildSideRows(res, analysis.SideTallies(records))
			verdicts := verdictCounts(rows)
			if limit > 0 && len(rows) > limit {
				rows = rows[:limit]
			}
			if asJSON {
				return writeJSON(cmd, rows)
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No country is credited in the dataset")
				return nil
			}
			colorize := shouldColorize(out)
			tableRows := make([][]string, 0, len(rows))
			for _, r := range rows {
				diff := "-"
				if r.Difference != nil {
					diff = formatFloat(*r.Difference, 1)
				}
				inGraph := "no"
				if r.InGraph {
					inGraph = "yes"
				}
				tableRows = append(tableRows, []string{
					r.Country,
					strconv.Itoa(r.Occurrences),
					strconv.Itoa(r.Western),
					strconv.Itoa(r.Eastern),
					strconv.Itoa(r.None),
					diff,
					sideLabel(r.Verdict, colorize),
					inGraph,
				})
			}
			headers := []string{"Country", "Movies", "Western", "Eastern", "None", "Diff %", "Verdict", "In graph"}
			aligns := numericAligns(len(headers), 1)
			aligns[6], aligns[7] = text.AlignLeft, text.AlignLeft
			fmt.Fprintln(out, renderTable(headers, tableRows, aligns))
			p := res.Params.Classifier
			fmt.Fprintf(out, "Verdicts: %s\n", verdicts)
			fmt.Fprintf(out, "Verdicts use relevance_nb=%d relevance_diff=%d threshold=%s\n",
				p.RelevanceNB, p.RelevanceDiff, formatFloat(p.Threshold, 1))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the tallies as JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the N most credited countries")
	return cmd
}
