package sim

import (
	"math/rand"

	"github.com/niceyeti/citytraffic/occupancy"
)

// State is the mutable world a tick's pipeline threads through: the vehicle
// roster, the occupancy grid they and the traffic lights contend over, and
// the random source driving spawn and tie-break decisions. A Simulator owns
// exactly one State, read and written only by its own run loop.
type State struct {
	Traffic   Traffic
	Occupancy *occupancy.Occupancy
	Rand      *rand.Rand
}

// NewState returns an empty State over an Occupancy grid sized for env's
// city, seeded with the given random source.
func NewState(env *Env, rng *rand.Rand) State {
	return State{
		Traffic:   Traffic{Vehicles: nil},
		Occupancy: occupancy.New(env.City.NumNodes()),
		Rand:      rng,
	}
}
