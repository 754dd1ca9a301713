package render

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"

	"blocgraph/internal/collab"
)

// Position is a 2D coordinate on the layout canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures the force-directed layout.
type LayoutConfig struct {
	Width      float64
	Height     float64
	Iterations int
	Padding    float64
	Seed       int64
}

// ForceLayout is a seeded force-directed layout with weighted attraction.
// Identical graphs and configs produce identical positions.
type ForceLayout struct {
	config LayoutConfig
}

// NewForceLayout fills zero-valued settings with defaults.
func NewForceLayout(config LayoutConfig) *ForceLayout {
	if config.Width <= 0 {
		config.Width = 1000
	}
	if config.Height <= 0 {
		config.Height = 800
	}
	if config.Iterations <= 0 {
		config.Iterations = 100
	}
	if config.Padding <= 0 {
		config.Padding = 50
	}
	return &ForceLayout{config: config}
}

// Compute positions every node of g with gonum's Eades layout, then scales
// the result onto the padded canvas.
func (fl *ForceLayout) Compute(g *collab.Graph) map[string]Position {
	nodes := g.Nodes()
	positions := make(map[string]Position, len(nodes))
	if len(nodes) == 0 {
		return positions
	}
	cfg := fl.config
	if len(nodes) == 1 {
		positions[nodes[0].Name] = Position{X: cfg.Width / 2, Y: cfg.Height / 2}
		return positions
	}

	lg := newLayoutGraph(g)
	eades := layout.EadesR2{
		Updates:   cfg.Iterations,
		Repulsion: 1,
		Rate:      0.05,
		Theta:     0.2,
		Src:       rand.NewPCG(uint64(cfg.Seed), 0),
	}
	optimizer := layout.NewOptimizerR2(lg, eades.Update)
	for optimizer.Update() {
	}

	for i, n := range nodes {
		c := optimizer.Coord2(int64(i))
		if !isFinite(c.X) || !isFinite(c.Y) {
			c.X, c.Y = 0, 0
		}
		positions[n.Name] = Position{X: c.X, Y: c.Y}
	}
	return normalizePositions(positions, cfg.Width, cfg.Height, cfg.Padding)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// layoutGraph presents a collab.Graph to gonum with node IDs in name order
// and neighbours in ID order, so iteration and therefore the seeded initial
// placement are stable. Edge weights are the attraction strengths.
type layoutGraph struct {
	nodes   []graph.Node
	adj     [][]graph.Node
	weights map[[2]int64]float64
}

func newLayoutGraph(g *collab.Graph) *layoutGraph {
	nodes := g.Nodes()
	lg := &layoutGraph{
		nodes:   make([]graph.Node, len(nodes)),
		adj:     make([][]graph.Node, len(nodes)),
		weights: make(map[[2]int64]float64),
	}
	index := make(map[string]int64, len(nodes))
	for i, n := range nodes {
		lg.nodes[i] = simple.Node(i)
		index[n.Name] = int64(i)
	}
	maxWeight, _ := g.MaxWeight()
	for _, e := range g.Edges() {
		a, b := index[e.A], index[e.B]
		w := edgeStrength(e.Weight, maxWeight)
		lg.weights[[2]int64{a, b}] = w
		lg.weights[[2]int64{b, a}] = w
		lg.adj[a] = append(lg.adj[a], simple.Node(b))
		lg.adj[b] = append(lg.adj[b], simple.Node(a))
	}
	for _, list := range lg.adj {
		slices.SortFunc(list, func(x, y graph.Node) int { return cmp.Compare(x.ID(), y.ID()) })
	}
	return lg
}

func (lg *layoutGraph) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(lg.nodes)) {
		return nil
	}
	return lg.nodes[id]
}

func (lg *layoutGraph) Nodes() graph.Nodes {
	return iterator.NewOrderedNodes(lg.nodes)
}

func (lg *layoutGraph) From(id int64) graph.Nodes {
	if lg.Node(id) == nil || len(lg.adj[id]) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedNodes(lg.adj[id])
}

func (lg *layoutGraph) HasEdgeBetween(xid, yid int64) bool {
	_, ok := lg.weights[[2]int64{xid, yid}]
	return ok
}

func (lg *layoutGraph) Edge(uid, vid int64) graph.Edge {
	e := lg.WeightedEdge(uid, vid)
	if e == nil {
		return nil
	}
	return e
}

func (lg *layoutGraph) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	w, ok := lg.weights[[2]int64{uid, vid}]
	if !ok {
		return nil
	}
	return simple.WeightedEdge{F: simple.Node(uid), T: simple.Node(vid), W: w}
}

func (lg *layoutGraph) Weight(xid, yid int64) (float64, bool) {
	if xid == yid {
		return 0, true
	}
	w, ok := lg.weights[[2]int64{xid, yid}]
	return w, ok
}

// edgeStrength scales attraction into [0.5, 1.5] by relative weight.
func edgeStrength(weight, maxWeight int) float64 {
	if maxWeight <= 0 {
		return 1
	}
	return 0.5 + float64(weight)/float64(maxWeight)
}

func normalizePositions(positions map[string]Position, width, height, padding float64) map[string]Position {
	if len(positions) == 0 {
		return positions
	}
	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64
	for _, p := range positions {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX < 0.01 {
		rangeX = 1
	}
	if rangeY < 0.01 {
		rangeY = 1
	}
	targetWidth := width - 2*padding
	targetHeight := height - 2*padding

	normalized := make(map[string]Position, len(positions))
	for name, p := range positions {
		normalized[name] = Position{
			X: padding + (p.X-minX)/rangeX*targetWidth,
			Y: padding + (p.Y-minY)/rangeY*targetHeight,
		}
	}
	return normalized
}
