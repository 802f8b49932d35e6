package city

import "github.com/niceyeti/citytraffic/graph"

// CreateEdges walks the city's roads and, for each, computes the forward
// cell reached by advancing one tile in the road's exit direction. Each
// road contributes at most one outbound edge (orientation-preserving
// traversal): a road that would exit the grid contributes none. Edge cost
// is the default of 1.
func (c *City) CreateEdges() []graph.Edge {
	edges := make([]graph.Edge, 0, len(c.Roads))
	for _, r := range c.Roads {
		start := Cell{X: r.X, Y: r.Y, Dir: r.EntryDir}
		dx, dy := r.ExitDir.Delta()
		fx, fy := r.X+dx, r.Y+dy
		if !c.InBounds(fx, fy) {
			continue
		}
		forward := Cell{X: fx, Y: fy, Dir: r.ExitDir}
		edges = append(edges, graph.Edge{
			From: c.GetIndex(start),
			To:   c.GetIndex(forward),
			Cost: 1,
		})
	}
	return edges
}

// BuildNetwork constructs the graph.Network for this city. Called once when
// a simulator binds to a City.
func (c *City) BuildNetwork() *graph.Network {
	return graph.Build(c.NumNodes(), c.CreateEdges())
}

// CostTables computes, for every destination group, the reverse-shortest-
// path distance from each node to the nearest node in that group. Called
// once at bind time; the result is indexed CostTables[g][node].
func (c *City) CostTables(net *graph.Network) ([]graph.CostTable, error) {
	tables := make([]graph.CostTable, len(c.Destinations))
	for g, goals := range c.Destinations {
		if len(goals) == 0 {
			return nil, ErrEmptyDestinationGroup
		}
		table, err := net.Dijkstra(goals)
		if err != nil {
			return nil, err
		}
		tables[g] = table
	}
	return tables, nil
}
