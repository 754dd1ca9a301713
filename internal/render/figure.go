package render

import (
	"log/slog"

	"blocgraph/internal/collab"
	"blocgraph/internal/logging"
)

const (
	KindNetwork = "network"
	KindMap     = "map"
)

// Options configure both figure builders.
type Options struct {
	NodeScale   float64
	Layout      LayoutConfig
	Palette     Palette
	Coordinates Coordinates
	Logger      *slog.Logger
}

// DefaultOptions uses a 0.5 node scale, seed 42 with 100 layout iterations,
// the default palette and the built-in coordinate table.
func DefaultOptions() Options {
	return Options{
		NodeScale:   0.5,
		Layout:      LayoutConfig{Width: 1000, Height: 800, Iterations: 100, Seed: 42},
		Palette:     DefaultPalette(),
		Coordinates: DefaultCoordinates(),
	}
}

// NodeMarker is the presentation of one country shared by both figures.
type NodeMarker struct {
	Name       string  `json:"name"`
	Side       string  `json:"side"`
	FilmCount  int     `json:"film_count"`
	Size       float64 `json:"size"`
	MarkerSize float64 `json:"marker_size"`
	Color      string  `json:"color"`
	Hover      string  `json:"hover"`
}

// EdgeStroke is the presentation of one pair shared by both figures.
type EdgeStroke struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight int     `json:"weight"`
	Tone   string  `json:"tone"`
	Width  float64 `json:"width"`
	Color  string  `json:"color"`
}

type NetworkNode struct {
	NodeMarker
	Position
}

type NetworkEdge struct {
	EdgeStroke
	From Position `json:"from"`
	To   Position `json:"to"`
}

// NetworkFigure is the force-directed rendering of the graph.
type NetworkFigure struct {
	Kind      string        `json:"kind"`
	Width     float64       `json:"width"`
	Height    float64       `json:"height"`
	MaxWeight int           `json:"max_weight"`
	Nodes     []NetworkNode `json:"nodes"`
	Edges     []NetworkEdge `json:"edges"`
}

type MapNode struct {
	NodeMarker
	LatLon
}

type MapEdge struct {
	EdgeStroke
	From LatLon `json:"from"`
	To   LatLon `json:"to"`
}

// MapFigure is the geographic rendering of the graph.
type MapFigure struct {
	Kind       string    `json:"kind"`
	Projection string    `json:"projection"`
	MaxWeight  int       `json:"max_weight"`
	Nodes      []MapNode `json:"nodes"`
	Edges      []MapEdge `json:"edges"`
	// Unplaced lists countries without coordinates; they and their edges
	// are left out of the figure.
	Unplaced []string `json:"unplaced,omitempty"`
}

func marker(n collab.Node, opts Options) NodeMarker {
	return NodeMarker{
		Name:       n.Name,
		Side:       n.Side.String(),
		FilmCount:  n.FilmCount,
		Size:       n.Size,
		MarkerSize: MarkerSize(n.Size, opts.NodeScale),
		Color:      opts.Palette.Side(n.Side).CSS(),
		Hover:      HoverText(n.Name, n.Size),
	}
}

// Network lays the graph out and styles it. An edgeless graph yields a
// figure with nodes only.
func Network(g *collab.Graph, opts Options) NetworkFigure {
	positions := NewForceLayout(opts.Layout).Compute(g)
	maxWeight, _ := g.MaxWeight()

	fig := NetworkFigure{
		Kind:      KindNetwork,
		Width:     opts.Layout.Width,
		Height:    opts.Layout.Height,
		MaxWeight: maxWeight,
		Nodes:     make([]NetworkNode, 0, g.NodeCount()),
		Edges:     make([]NetworkEdge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		fig.Nodes = append(fig.Nodes, NetworkNode{NodeMarker: marker(n, opts), Position: positions[n.Name]})
	}
	for _, e := range g.Edges() {
		tone := g.Tone(e)
		style := NetworkEdgeStyle(tone, e.Weight, maxWeight, opts.Palette)
		fig.Edges = append(fig.Edges, NetworkEdge{
			EdgeStroke: stroke(e, tone, style),
			From:       positions[e.A],
			To:         positions[e.B],
		})
	}
	return fig
}

// Map places the graph on country coordinates. Countries missing from the
// coordinate table are reported in Unplaced and logged.
func Map(g *collab.Graph, opts Options) MapFigure {
	logger := logging.NewComponentLogger(opts.Logger, "render")
	maxWeight, _ := g.MaxWeight()

	fig := MapFigure{
		Kind:       KindMap,
		Projection: "natural earth",
		MaxWeight:  maxWeight,
		Nodes:      make([]MapNode, 0, g.NodeCount()),
		Edges:      make([]MapEdge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		ll, ok := opts.Coordinates.Lookup(n.Name)
		if !ok {
			fig.Unplaced = append(fig.Unplaced, n.Name)
			continue
		}
		fig.Nodes = append(fig.Nodes, MapNode{NodeMarker: marker(n, opts), LatLon: ll})
	}
	for _, e := range g.Edges() {
		from, okA := opts.Coordinates.Lookup(e.A)
		to, okB := opts.Coordinates.Lookup(e.B)
		if !okA || !okB {
			continue
		}
		tone := g.Tone(e)
		style := MapEdgeStyle(tone, e.Weight, maxWeight, opts.Palette)
		fig.Edges = append(fig.Edges, MapEdge{EdgeStroke: stroke(e, tone, style), From: from, To: to})
	}
	if len(fig.Unplaced) > 0 {
		logging.WarnWithContext(logger, "countries without coordinates", "map_coordinates_missing",
			logging.Int("count", len(fig.Unplaced)),
			logging.Any("countries", fig.Unplaced),
			logging.String(logging.FieldErrorHint, "extend the coordinate table"),
			logging.String(logging.FieldImpact, "countries and their edges are left off the map"),
		)
	}
	return fig
}

func stroke(e collab.Edge, tone collab.Tone, style EdgeStyle) EdgeStroke {
	return EdgeStroke{
		Source: e.A,
		Target: e.B,
		Weight: e.Weight,
		Tone:   tone.String(),
		Width:  style.Width,
		Color:  style.Color,
	}
}
