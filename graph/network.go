package graph

import "fmt"

// Edge is a directed, weighted connection between two nodes. Self-loops and
// duplicate parallel edges are permitted and preserved; Dijkstra's
// dominance property makes deduplication unnecessary for correctness.
type Edge struct {
	From, To int
	Cost     uint32
}

// Network owns the adjacency of a fixed-size node set, indexed both by
// outgoing edges (edges leaving a node) and incoming edges (edges entering
// a node, i.e. the reverse graph used by Dijkstra to seed from goal sets).
type Network struct {
	nodes    int
	edgesOut [][]Edge
	edgesIn  [][]Edge
}

// Build partitions edges by source and by target for O(1) out/in neighbour
// enumeration. All edge endpoints must be < nodes, or Build panics: a bad
// index here is a programmer error in the caller that built the edge list
// (e.g. city.CreateEdges), not a data-driven failure to recover from.
func Build(nodes int, edges []Edge) *Network {
	n := &Network{
		nodes:    nodes,
		edgesOut: make([][]Edge, nodes),
		edgesIn:  make([][]Edge, nodes),
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= nodes || e.To < 0 || e.To >= nodes {
			panic(fmt.Sprintf("%v: edge %+v references a node outside [0, %d)", ErrNodeOutOfRange, e, nodes))
		}
		n.edgesOut[e.From] = append(n.edgesOut[e.From], e)
		n.edgesIn[e.To] = append(n.edgesIn[e.To], e)
	}
	return n
}

// NumNodes returns the number of nodes the network was built with.
func (n *Network) NumNodes() int {
	return n.nodes
}

// Out returns the edges leaving node i, or an empty slice if it has none.
func (n *Network) Out(i int) []Edge {
	return n.edgesOut[i]
}

// In returns the edges entering node i, or an empty slice if it has none.
func (n *Network) In(i int) []Edge {
	return n.edgesIn[i]
}
