// Package driver implements the bounded-depth lookahead vehicle driver: for
// a vehicle sitting at a node with a known cost-to-destination table, it
// searches nearby free nodes for the best local move and applies spec's
// tie-breaking policy among equally-good candidates.
package driver

import (
	"math/rand"

	"github.com/niceyeti/citytraffic/graph"
	"github.com/niceyeti/citytraffic/occupancy"
)

// Driver enumerates simple paths up to Lookahead edges long and moves to
// the first step of the best one found, per spec's tie-breaking policy:
// lower endpoint cost wins, then shorter path, then uniform random.
type Driver struct {
	Lookahead int
}

// New returns a Driver bounded to the given lookahead depth.
func New(lookahead int) *Driver {
	return &Driver{Lookahead: lookahead}
}

// candidate is one enumerated path's outcome: the first step to take if
// this path is chosen, the cost at its endpoint, and the path's length in
// edges.
type candidate struct {
	firstStep int
	endCost   uint32
	length    int
}

// Step returns the node a vehicle currently at n should move to this tick.
// If cost[n] is unreachable, or no reachable path improves on staying put,
// Step returns n unchanged (the vehicle does not move this tick).
func (d *Driver) Step(net *graph.Network, cost graph.CostTable, occ *occupancy.Occupancy, n int, rng *rand.Rand) int {
	if !cost.Reachable(n) {
		return n
	}

	best := cost[n]
	var bestCandidates []candidate

	// The zero-length path {n} is always in play: staying put costs
	// cost[n], which is the baseline everything else must beat.
	visit := func(firstStep int, endCost uint32, length int) {
		switch {
		case endCost < best:
			best = endCost
			bestCandidates = []candidate{{firstStep: firstStep, endCost: endCost, length: length}}
		case endCost == best:
			bestCandidates = append(bestCandidates, candidate{firstStep: firstStep, endCost: endCost, length: length})
		}
	}

	visited := map[int]bool{n: true}
	d.walk(net, cost, occ, n, n, -1, 0, visited, visit)

	if best >= cost[n] || len(bestCandidates) == 0 {
		return n
	}

	// Restrict to the shortest paths among those tied for best cost, then
	// break remaining ties uniformly at random.
	minLen := bestCandidates[0].length
	for _, c := range bestCandidates[1:] {
		if c.length < minLen {
			minLen = c.length
		}
	}
	shortest := bestCandidates[:0:0]
	for _, c := range bestCandidates {
		if c.length == minLen {
			shortest = append(shortest, c)
		}
	}

	chosen := shortest[rng.Intn(len(shortest))]
	return chosen.firstStep
}

// walk performs the bounded-depth simple-path DFS from the vehicle's
// current node n. cur is the path's current endpoint, firstStep is the
// second node of the path being built (the move a vehicle would actually
// make; -1 while still at n), depth is edges traversed so far. visited
// excludes revisits, keeping paths simple/acyclic. Each extension that
// reaches an unlocked, unvisited neighbour is walked further, and is
// reported via visit when that neighbour has a reachable cost.
func (d *Driver) walk(
	net *graph.Network,
	cost graph.CostTable,
	occ *occupancy.Occupancy,
	n, cur, firstStep, depth int,
	visited map[int]bool,
	visit func(firstStep int, endCost uint32, length int),
) {
	if depth >= d.Lookahead {
		return
	}
	for _, e := range net.Out(cur) {
		next := e.To
		if visited[next] || !occ.IsUnlocked(next) {
			continue
		}

		step := firstStep
		if step == -1 {
			step = next
		}
		if cost.Reachable(next) {
			visit(step, cost[next], depth+1)
		}

		visited[next] = true
		d.walk(net, cost, occ, n, next, step, depth+1, visited, visit)
		delete(visited, next)
	}
}
