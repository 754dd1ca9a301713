package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"blocgraph/internal/collab"
	"blocgraph/internal/export"
	"blocgraph/internal/logging"
	"blocgraph/internal/render"
)

type graphNodeView struct {
	Country string  `json:"country"`
	Side    string  `json:"side"`
	Films   int     `json:"films"`
	Size    float64 `json:"size"`
}

type graphEdgeView struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
	Tone   string `json:"tone"`
}

type graphView struct {
	MinFilms      int             `json:"min_films"`
	MinCollab     int             `json:"min_collab"`
	RelevanceNB   int             `json:"relevance_nb"`
	RelevanceDiff int             `json:"relevance_diff"`
	Threshold     float64         `json:"threshold"`
	Nodes         []graphNodeView `json:"nodes"`
	Edges         []graphEdgeView `json:"edges"`
}

func newGraphView(res *collab.Result) graphView {
	g := res.Graph
	view := graphView{
		MinFilms:      res.Params.MinFilms,
		MinCollab:     res.Params.MinCollab,
		RelevanceNB:   res.Params.Classifier.RelevanceNB,
		RelevanceDiff: res.Params.Classifier.RelevanceDiff,
		Threshold:     res.Params.Classifier.Threshold,
		Nodes:         make([]graphNodeView, 0, g.NodeCount()),
		Edges:         make([]graphEdgeView, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		view.Nodes = append(view.Nodes, graphNodeView{Country: n.Name, Side: n.Side.String(), Films: n.FilmCount, Size: n.Size})
	}
	for _, e := range g.Edges() {
		view.Edges = append(view.Edges, graphEdgeView{Source: e.A, Target: e.B, Weight: e.Weight, Tone: g.Tone(e).String()})
	}
	return view
}

func newGraphCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var outPath string
	var writeFigure bool

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Build the co-production graph and print its nodes and edges",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, logger, err := ctx.compute(cmd)
			if err != nil {
				return err
			}

			if writeFigure || outPath != "" {
				target := outPath
				if target == "" {
					target = ctx.config.OutputPath("network.json")
				}
				fig := render.Network(res.Graph, ctx.renderOptions(logger))
				if err := export.WriteJSON(cmd.Context(), target, fig); err != nil {
					return err
				}
				logger.Info("network figure written", logging.String("path", target))
				if !asJSON {
					fmt.Fprintf(cmd.OutOrStdout(), "Wrote network figure to %s\n", target)
				}
			}

			if asJSON {
				return writeJSON(cmd, newGraphView(res))
			}
			printGraph(cmd, res)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the graph as JSON")
	cmd.Flags().BoolVar(&writeFigure, "figure", false, "Write the network figure to the output directory")
	cmd.Flags().StringVar(&outPath, "out", "", "Write the network figure to this path")
	return cmd
}

func printGraph(cmd *cobra.Command, res *collab.Result) {
	out := cmd.OutOrStdout()
	g := res.Graph
	colorize := shouldColorize(out)

	fmt.Fprintf(out, "Graph: %d countries, %d collaborations (min films > %d, min collab > %d)\n",
		g.NodeCount(), g.EdgeCount(), res.Params.MinFilms, res.Params.MinCollab)
	if g.NodeCount() == 0 {
		fmt.Fprintln(out, "No country passes the relevance filter")
		return
	}

	rows := make([][]string, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		rows = append(rows, []string{n.Name, sideLabel(n.Side, colorize), strconv.Itoa(n.FilmCount), formatFloat(n.Size, 2)})
	}
	fmt.Fprintln(out, renderTable([]string{"Country", "Side", "Films", "Size"}, rows, numericAligns(4, 2)))

	if g.EdgeCount() == 0 {
		fmt.Fprintln(out, "No collaboration passes the relevance filter")
		return
	}
	rows = make([][]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		rows = append(rows, []string{e.A, e.B, strconv.Itoa(e.Weight), toneLabel(g.Tone(e))})
	}
	fmt.Fprintln(out, renderTable([]string{"Country A", "Country B", "Movies", "Tone"}, rows, []text.Align{text.AlignLeft, text.AlignLeft, text.AlignRight, text.AlignLeft}))
}
