// Package graph implements a directed node/edge network and a multi-source
// reverse-Dijkstra cost table builder. Nodes are addressed by dense integer
// index, matching the way city.City encodes cells.
package graph

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrNodeOutOfRange indicates an edge or goal referenced a node index
	// outside [0, nodes).
	ErrNodeOutOfRange = errors.New("graph: node index out of range")
	// ErrNoGoals indicates Dijkstra was called with an empty goal set.
	ErrNoGoals = errors.New("graph: goal set must be non-empty")
)
