package driver

import (
	"math/rand"
	"testing"

	"github.com/niceyeti/citytraffic/graph"
	"github.com/niceyeti/citytraffic/occupancy"
	. "github.com/smartystreets/goconvey/convey"
)

// grid4 builds a W x H bidirectional 4-neighbour grid, node index = y*W+x,
// matching the node layout spec's worked lookahead examples are phrased in.
func grid4(w, h int) []graph.Edge {
	idx := func(x, y int) int { return y*w + x }
	var edges []graph.Edge
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+1 < w {
				edges = append(edges, graph.Edge{From: idx(x, y), To: idx(x+1, y), Cost: 1})
				edges = append(edges, graph.Edge{From: idx(x+1, y), To: idx(x, y), Cost: 1})
			}
			if y+1 < h {
				edges = append(edges, graph.Edge{From: idx(x, y), To: idx(x, y+1), Cost: 1})
				edges = append(edges, graph.Edge{From: idx(x, y+1), To: idx(x, y), Cost: 1})
			}
		}
	}
	return edges
}

func TestLookaheadObstructionRoutesAround(t *testing.T) {
	Convey("Given a 4x4 grid with nodes 4 and 5 locked, goal {13}, L=3", t, func() {
		net := graph.Build(16, grid4(4, 4))
		cost, err := net.Dijkstra([]int{13})
		So(err, ShouldBeNil)

		occ := occupancy.New(16)
		occ.Lock(4)
		occ.Lock(5)

		d := New(3)
		rng := rand.New(rand.NewSource(1))

		Convey("The vehicle at node 1 detours through column 2 to node 2", func() {
			next := d.Step(net, cost, occ, 1, rng)
			So(next, ShouldEqual, 2)
		})
	})
}

func TestLookaheadInsufficientDepthStaysPut(t *testing.T) {
	Convey("Given the same obstruction but L=2", t, func() {
		net := graph.Build(16, grid4(4, 4))
		cost, err := net.Dijkstra([]int{13})
		So(err, ShouldBeNil)

		occ := occupancy.New(16)
		occ.Lock(4)
		occ.Lock(5)

		d := New(2)
		rng := rand.New(rand.NewSource(1))

		Convey("The vehicle at node 1 has no depth-2 detour and stays", func() {
			next := d.Step(net, cost, occ, 1, rng)
			So(next, ShouldEqual, 1)
		})
	})
}

func TestUnreachableDestinationIdles(t *testing.T) {
	Convey("Given a node with no path to the goal set", t, func() {
		edges := []graph.Edge{{From: 0, To: 1, Cost: 1}}
		net := graph.Build(4, edges)
		cost, err := net.Dijkstra([]int{1})
		So(err, ShouldBeNil)
		occ := occupancy.New(4)
		d := New(3)
		rng := rand.New(rand.NewSource(1))

		Convey("A vehicle at an unreachable node does not move", func() {
			next := d.Step(net, cost, occ, 3, rng)
			So(next, ShouldEqual, 3)
		})
	})
}

func TestDriverAlwaysMovesTowardLowerCost(t *testing.T) {
	Convey("On an open 4x4 grid, every step strictly lowers cost or stays", t, func() {
		net := graph.Build(16, grid4(4, 4))
		cost, err := net.Dijkstra([]int{15})
		So(err, ShouldBeNil)
		occ := occupancy.New(16)
		d := New(3)
		rng := rand.New(rand.NewSource(42))

		for n := 0; n < 16; n++ {
			next := d.Step(net, cost, occ, n, rng)
			So(next == n || cost[next] < cost[n], ShouldBeTrue)
		}
	})
}
