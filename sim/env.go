package sim

import (
	"github.com/niceyeti/citytraffic/city"
	"github.com/niceyeti/citytraffic/driver"
	"github.com/niceyeti/citytraffic/graph"
)

// Env bundles the immutable, bind-time data every pipeline step closes
// over: the city description, its derived Network, one cost table per
// destination group, and the driver used to advance vehicles. Env is built
// once when a Simulator binds to a City and never changes afterward.
type Env struct {
	City       *city.City
	Network    *graph.Network
	CostTables []graph.CostTable
	Driver     *driver.Driver
}

// NewEnv computes the Network and per-destination-group cost tables for c
// and bundles them with d into an Env ready for pipeline construction.
func NewEnv(c *city.City, d *driver.Driver) (*Env, error) {
	net := c.BuildNetwork()
	tables, err := c.CostTables(net)
	if err != nil {
		return nil, err
	}
	return &Env{City: c, Network: net, CostTables: tables, Driver: d}, nil
}
