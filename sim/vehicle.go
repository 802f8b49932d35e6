// Package sim composes the graph, city, occupancy, and driver packages into
// the per-tick pipeline (spawn, drive, despawn, traffic-light cycle, pace)
// and the Simulator loop that runs it, publishing a Traffic snapshot after
// every tick.
package sim

// Vehicle is an in-flight vehicle: its current node, the list of goal nodes
// for its destination group, and the group id used to pick its cost table
// and (by the renderer) its colour.
type Vehicle struct {
	Location          int
	Destination       []int
	DestinationIndex  int
}

// AtDestination reports whether the vehicle's current location is one of
// its destination nodes. Vehicles at a destination are never block-locked
// and are dropped at the end of the tick they arrive.
func (v Vehicle) AtDestination() bool {
	for _, d := range v.Destination {
		if d == v.Location {
			return true
		}
	}
	return false
}

// Traffic is the simulation's vehicle roster, tagged with a monotonically
// increasing tick id. Published Traffic snapshots are immutable; Clone
// deep-copies the vehicle slice so a publisher can hand out a value the
// simulator will never again mutate.
type Traffic struct {
	ID       uint64
	Vehicles []Vehicle
}

// Clone returns a deep copy suitable for publication to renderers.
func (t Traffic) Clone() *Traffic {
	vehicles := make([]Vehicle, len(t.Vehicles))
	copy(vehicles, t.Vehicles)
	return &Traffic{ID: t.ID, Vehicles: vehicles}
}
