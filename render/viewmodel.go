// Package render adapts the simulator's published Traffic snapshots into a
// browser-facing view, standing in for the out-of-scope window/GL renderer:
// a small HTTP server pushes Snapshot updates to connected browsers over a
// websocket, at most at a fixed publish rate, so only the latest state
// matters to a client that falls behind.
package render

import (
	"github.com/niceyeti/citytraffic/city"
	"github.com/niceyeti/citytraffic/sim"
)

// VehicleView is one vehicle's renderable state: tile coordinates, the
// orientation it currently faces, and its destination-group colour.
type VehicleView struct {
	X, Y  int
	Dir   string
	Color string
}

// Snapshot is the JSON payload pushed to a client: a Traffic id plus every
// vehicle's renderable projection.
type Snapshot struct {
	TrafficID uint64
	Vehicles  []VehicleView
}

// BuildSnapshot projects a sim.Traffic into tile coordinates via c, the
// City that defines how node indices map back to (x, y, direction).
func BuildSnapshot(c *city.City, t *sim.Traffic) Snapshot {
	vehicles := make([]VehicleView, len(t.Vehicles))
	for i, v := range t.Vehicles {
		cell := c.GetCell(v.Location)
		vehicles[i] = VehicleView{
			X:     cell.X,
			Y:     cell.Y,
			Dir:   cell.Dir.String(),
			Color: palette[v.DestinationIndex%len(palette)],
		}
	}
	return Snapshot{TrafficID: t.ID, Vehicles: vehicles}
}
