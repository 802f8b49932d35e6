package graph

import "container/heap"

// Unreachable marks a node with no path to any goal in a Dijkstra call.
const Unreachable = ^uint32(0)

// CostTable is the result of Dijkstra: the shortest distance from each node
// to the nearest node in the goal set it was computed against, or
// Unreachable.
type CostTable []uint32

// Reachable reports whether node i has a finite cost in this table.
func (c CostTable) Reachable(i int) bool {
	return c[i] != Unreachable
}

// Dijkstra computes, for every node, the shortest distance to the nearest
// node in goals, by relaxing over the reverse graph (edges_in): this gives
// each node the remaining distance it must still travel to reach one of
// the goals, which is what the lookahead driver needs to make purely local
// "move toward lower cost" decisions. All goals are seeded with cost 0
// (multi-goal seeding implements "the nearest of these destinations").
// Ties during relaxation are broken arbitrarily (first-popped wins);
// downstream tie-breaking is the driver's responsibility, not this
// function's.
func (n *Network) Dijkstra(goals []int) (CostTable, error) {
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}
	for _, g := range goals {
		if g < 0 || g >= n.nodes {
			return nil, ErrNodeOutOfRange
		}
	}

	cost := make(CostTable, n.nodes)
	for i := range cost {
		cost[i] = Unreachable
	}
	finalized := make([]bool, n.nodes)

	pq := &nodeHeap{}
	heap.Init(pq)
	for _, g := range goals {
		if cost[g] != 0 {
			cost[g] = 0
			heap.Push(pq, nodeDist{node: g, dist: 0})
		}
	}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(nodeDist)
		if finalized[cur.node] {
			continue
		}
		finalized[cur.node] = true

		// Traverse predecessors (edges_in): an edge u->v with v=cur.node
		// means u can reach cur.node directly, so u's cost is at most
		// cur.dist + edge cost.
		for _, e := range n.edgesIn[cur.node] {
			u := e.From
			if finalized[u] {
				continue
			}
			nd := cur.dist + e.Cost
			if cost[u] == Unreachable || nd < cost[u] {
				cost[u] = nd
				heap.Push(pq, nodeDist{node: u, dist: nd})
			}
		}
	}

	return cost, nil
}

type nodeDist struct {
	node int
	dist uint32
}

// nodeHeap is a min-heap of nodeDist ordered by dist, used as Dijkstra's
// priority queue.
type nodeHeap []nodeDist

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(nodeDist)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}
