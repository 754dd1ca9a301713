package render_test

import (
	"math"
	"reflect"
	"testing"

	"blocgraph/internal/collab"
	"blocgraph/internal/movies"
	"blocgraph/internal/render"
)

func buildGraph(t *testing.T) *collab.Graph {
	t.Helper()
	filtered := collab.Filter(collab.Counts{
		Films: map[string]int{"France": 16, "Italy": 9, "Russia": 25, "Poland": 4, "Atlantis": 1},
		Collaborations: map[collab.Pair]int{
			collab.NewPair("France", "Italy"):    100,
			collab.NewPair("Poland", "Russia"):   10,
			collab.NewPair("France", "Russia"):   50,
			collab.NewPair("Atlantis", "France"): 1,
		},
	}, 0, 0)
	sides := map[string]movies.Side{
		"France":   movies.Western,
		"Italy":    movies.Western,
		"Russia":   movies.Eastern,
		"Poland":   movies.Eastern,
		"Atlantis": movies.LackOfData,
	}
	return collab.Build(filtered, sides)
}

func TestPaletteColours(t *testing.T) {
	p := render.DefaultPalette()
	tests := map[movies.Side]string{
		movies.Western:    "rgb(28, 94, 169)",
		movies.Eastern:    "rgb(189, 0, 50)",
		movies.None:       "rgb(187, 185, 185)",
		movies.LackOfData: "rgb(255, 233, 137)",
	}
	for side, want := range tests {
		if got := p.Side(side).CSS(); got != want {
			t.Fatalf("Side(%q) = %s, want %s", side, got, want)
		}
	}
	if got := p.Black.WithAlpha(0.25); got != "rgba(0, 0, 0, 0.25)" {
		t.Fatalf("WithAlpha = %s", got)
	}
}

func TestMarkerAndHover(t *testing.T) {
	if got := render.MarkerSize(4, 0.5); got != 2 {
		t.Fatalf("MarkerSize = %v, want 2", got)
	}
	if got := render.HoverText("France", math.Sqrt(16)); got != "France : 16" {
		t.Fatalf("HoverText = %q", got)
	}
	if got := render.HoverText("Italy", math.Sqrt(7)); got != "Italy : 7" {
		t.Fatalf("HoverText should round the squared size, got %q", got)
	}
}

func TestNetworkEdgeStyle(t *testing.T) {
	p := render.DefaultPalette()
	tests := []struct {
		name      string
		tone      collab.Tone
		weight    int
		maxWeight int
		want      render.EdgeStyle
	}{
		{"western scaled alpha", collab.SameWestern, 10, 100, render.EdgeStyle{Width: 0.1, Color: "rgba(28, 94, 169, 0.5)"}},
		{"eastern clamped alpha", collab.SameEastern, 50, 100, render.EdgeStyle{Width: 0.5, Color: "rgba(189, 0, 50, 1)"}},
		{"mixed is black", collab.Mixed, 100, 100, render.EdgeStyle{Width: 1, Color: "rgba(0, 0, 0, 1)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := render.NetworkEdgeStyle(tt.tone, tt.weight, tt.maxWeight, p)
			if math.Abs(got.Width-tt.want.Width) > 1e-12 || got.Color != tt.want.Color {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMapEdgeStyle(t *testing.T) {
	p := render.DefaultPalette()
	got := render.MapEdgeStyle(collab.Mixed, 25, 100, p)
	if got.Width != 1.25 || got.Color != "rgb(187, 185, 185)" {
		t.Fatalf("mixed map edge = %+v", got)
	}
	got = render.MapEdgeStyle(collab.SameWestern, 100, 100, p)
	if got.Width != 5 || got.Color != "rgba(28, 94, 169, 1)" {
		t.Fatalf("western map edge = %+v", got)
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	g := buildGraph(t)
	cfg := render.LayoutConfig{Width: 800, Height: 600, Iterations: 50, Seed: 42}
	first := render.NewForceLayout(cfg).Compute(g)
	second := render.NewForceLayout(cfg).Compute(g)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("same seed should give identical positions")
	}
	if len(first) != g.NodeCount() {
		t.Fatalf("expected %d positions, got %d", g.NodeCount(), len(first))
	}
	for name, p := range first {
		if p.X < 50-1e-9 || p.X > 750+1e-9 || p.Y < 50-1e-9 || p.Y > 550+1e-9 {
			t.Fatalf("%s outside padded canvas: %+v", name, p)
		}
	}

	cfg.Seed = 7
	other := render.NewForceLayout(cfg).Compute(g)
	if reflect.DeepEqual(first, other) {
		t.Fatal("different seeds should move nodes")
	}
}

func TestLayoutSmallGraphs(t *testing.T) {
	layout := render.NewForceLayout(render.LayoutConfig{})
	empty := collab.Build(collab.Filtered{}, nil)
	if got := layout.Compute(empty); len(got) != 0 {
		t.Fatalf("expected no positions, got %v", got)
	}
	single := collab.Build(collab.Filter(collab.Counts{Films: map[string]int{"France": 1}}, 0, 0), nil)
	got := layout.Compute(single)
	if got["France"] != (render.Position{X: 500, Y: 400}) {
		t.Fatalf("single node should be centred, got %+v", got["France"])
	}
}

func TestNetworkFigure(t *testing.T) {
	g := buildGraph(t)
	fig := render.Network(g, render.DefaultOptions())

	if fig.Kind != render.KindNetwork || fig.MaxWeight != 100 {
		t.Fatalf("unexpected header %+v", fig)
	}
	if len(fig.Nodes) != 5 || len(fig.Edges) != 4 {
		t.Fatalf("expected 5 nodes and 4 edges, got %d/%d", len(fig.Nodes), len(fig.Edges))
	}
	france := fig.Nodes[1]
	if france.Name != "France" || france.MarkerSize != 2 || france.Hover != "France : 16" || france.Color != "rgb(28, 94, 169)" {
		t.Fatalf("unexpected France node %+v", france)
	}
	byPair := map[string]render.NetworkEdge{}
	for _, e := range fig.Edges {
		byPair[e.Source+"-"+e.Target] = e
	}
	fi := byPair["France-Italy"]
	if fi.Tone != "same_western" || fi.Color != "rgba(28, 94, 169, 1)" || fi.Width != 1 {
		t.Fatalf("unexpected France-Italy edge %+v", fi)
	}
	pr := byPair["Poland-Russia"]
	if pr.Tone != "same_eastern" || pr.Color != "rgba(189, 0, 50, 0.5)" {
		t.Fatalf("unexpected Poland-Russia edge %+v", pr)
	}
	fr := byPair["France-Russia"]
	if fr.Tone != "mixed" || fr.Color != "rgba(0, 0, 0, 1)" {
		t.Fatalf("unexpected France-Russia edge %+v", fr)
	}
	if fr.From != france.Position {
		t.Fatalf("edge should start at France position, got %+v vs %+v", fr.From, france.Position)
	}
}

func TestNetworkFigureWithoutEdges(t *testing.T) {
	g := collab.Build(collab.Filter(collab.Counts{Films: map[string]int{"A": 1, "B": 4}}, 0, 0), nil)
	fig := render.Network(g, render.DefaultOptions())
	if len(fig.Edges) != 0 || fig.MaxWeight != 0 || len(fig.Nodes) != 2 {
		t.Fatalf("unexpected edgeless figure %+v", fig)
	}
}

func TestMapFigureSkipsUnplacedCountries(t *testing.T) {
	g := buildGraph(t)
	fig := render.Map(g, render.DefaultOptions())

	if !reflect.DeepEqual(fig.Unplaced, []string{"Atlantis"}) {
		t.Fatalf("Unplaced = %v", fig.Unplaced)
	}
	if len(fig.Nodes) != 4 || len(fig.Edges) != 3 {
		t.Fatalf("expected 4 nodes and 3 edges, got %d/%d", len(fig.Nodes), len(fig.Edges))
	}
	for _, e := range fig.Edges {
		if e.Source == "Atlantis" || e.Target == "Atlantis" {
			t.Fatalf("edge touching unplaced country kept: %+v", e)
		}
	}
	russia := fig.Nodes[3]
	if russia.Name != "Russia" || russia.Lat != 61.5240 || russia.Lon != 105.3188 {
		t.Fatalf("unexpected Russia node %+v", russia)
	}
}

func TestMapUsesInjectedCoordinates(t *testing.T) {
	g := buildGraph(t)
	opts := render.DefaultOptions()
	opts.Coordinates = render.Coordinates{"Atlantis": {Lat: 1, Lon: 2}}
	fig := render.Map(g, opts)
	if len(fig.Nodes) != 1 || fig.Nodes[0].Name != "Atlantis" || len(fig.Edges) != 0 {
		t.Fatalf("expected only Atlantis placed, got %+v", fig.Nodes)
	}
}

func TestDefaultCoordinatesCoverRepresentedCountries(t *testing.T) {
	coords := render.DefaultCoordinates()
	for _, name := range []string{"Russia", "Germany", "United Kingdom", "Korea", "Yugoslavia", "Taiwan", "Czechoslovakia"} {
		if _, ok := coords.Lookup(name); !ok {
			t.Fatalf("missing coordinates for %s", name)
		}
	}
}
