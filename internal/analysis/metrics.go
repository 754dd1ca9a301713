package analysis

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/stat"

	"blocgraph/internal/collab"
	"blocgraph/internal/movies"
)

// CountryMetrics are the structural measures of one node.
type CountryMetrics struct {
	Country        string      `json:"country"`
	Side           movies.Side `json:"side"`
	Degree         int         `json:"degree"`
	WeightedDegree int         `json:"weighted_degree"`
	// Betweenness is unnormalized shortest-path betweenness, ignoring weights.
	Betweenness float64 `json:"betweenness"`
	Component   int     `json:"component"`
}

// WeightSummary describes the distribution of edge weights.
type WeightSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Median float64 `json:"median"`
	Max    int     `json:"max"`
}

// GraphMetrics summarizes the structure of a collaboration graph.
type GraphMetrics struct {
	Nodes      int              `json:"nodes"`
	Edges      int              `json:"edges"`
	Density    float64          `json:"density"`
	Components [][]string       `json:"components"`
	Countries  []CountryMetrics `json:"countries"`
	Weights    WeightSummary    `json:"weights"`
}

// ComputeGraphMetrics derives degree, betweenness and connected components
// per country plus edge-weight statistics. Components are ordered largest
// first; country rows follow graph (name) order.
func ComputeGraphMetrics(g *collab.Graph) GraphMetrics {
	nodes := g.Nodes()
	edges := g.Edges()

	ids := make(map[string]int64, len(nodes))
	ug := simple.NewUndirectedGraph()
	for i, n := range nodes {
		ids[n.Name] = int64(i)
		ug.AddNode(simple.Node(i))
	}
	weighted := make(map[string]int, len(nodes))
	weights := make([]float64, 0, len(edges))
	for _, e := range edges {
		ug.SetEdge(simple.Edge{F: simple.Node(ids[e.A]), T: simple.Node(ids[e.B])})
		weighted[e.A] += e.Weight
		weighted[e.B] += e.Weight
		weights = append(weights, float64(e.Weight))
	}

	betweenness := network.Betweenness(ug)
	components := connectedComponents(ug, nodes)
	componentOf := make(map[string]int, len(nodes))
	for i, members := range components {
		for _, name := range members {
			componentOf[name] = i
		}
	}

	m := GraphMetrics{
		Nodes:      len(nodes),
		Edges:      len(edges),
		Density:    density(len(nodes), len(edges)),
		Components: components,
		Countries:  make([]CountryMetrics, 0, len(nodes)),
		Weights:    summarize(weights),
	}
	for _, n := range nodes {
		m.Countries = append(m.Countries, CountryMetrics{
			Country:        n.Name,
			Side:           n.Side,
			Degree:         len(g.Neighbors(n.Name)),
			WeightedDegree: weighted[n.Name],
			Betweenness:    betweenness[ids[n.Name]],
			Component:      componentOf[n.Name],
		})
	}
	return m
}

func connectedComponents(ug *simple.UndirectedGraph, nodes []collab.Node) [][]string {
	var out [][]string
	for _, cc := range topo.ConnectedComponents(ug) {
		members := make([]string, 0, len(cc))
		for _, n := range cc {
			members = append(members, nodes[n.ID()].Name)
		}
		slices.Sort(members)
		out = append(out, members)
	}
	slices.SortFunc(out, func(a, b []string) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), cmp.Compare(a[0], b[0]))
	})
	return out
}

func density(nodes, edges int) float64 {
	if nodes < 2 {
		return 0
	}
	return 2 * float64(edges) / float64(nodes*(nodes-1))
}

func summarize(weights []float64) WeightSummary {
	if len(weights) == 0 {
		return WeightSummary{}
	}
	sorted := slices.Clone(weights)
	slices.Sort(sorted)
	s := WeightSummary{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Max:    int(sorted[len(sorted)-1]),
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}
