package sim

import (
	"math/rand"
	"time"

	"github.com/niceyeti/citytraffic/occupancy"
)

// Step transforms one State into the next. A Simulator's tick is an ordered
// slice of Steps applied in sequence — a pipeline of plain functions rather
// than a dispatch table of trait objects, matching how the rest of this
// codebase prefers function-typed fields over interfaces when the set of
// behaviours is fixed at construction time.
type Step func(State) State

// VehicleUpdate transforms one Vehicle, given the shared Env and the tick's
// Occupancy and random source. NewUpdateVehicles applies an ordered list of
// these to every vehicle in the roster, in place, each tick.
type VehicleUpdate func(env *Env, occ *occupancy.Occupancy, rng *rand.Rand, v Vehicle) Vehicle

// VehicleFree releases the block-lock on a vehicle's current tile
// unconditionally, including a vehicle that has already arrived: the
// destination exception lives in VehicleOccupy, not here, so a vehicle
// spawned onto a node its own destination group also contains is freed
// exactly once instead of leaking a permanent lock.
func VehicleFree(env *Env, occ *occupancy.Occupancy, rng *rand.Rand, v Vehicle) Vehicle {
	occ.UnlockBlock(v.Location)
	return v
}

// DriveVehicle asks env.Driver for the vehicle's next move given its
// destination group's cost table, and updates its Location.
func DriveVehicle(env *Env, occ *occupancy.Occupancy, rng *rand.Rand, v Vehicle) Vehicle {
	if v.AtDestination() {
		return v
	}
	cost := env.CostTables[v.DestinationIndex]
	v.Location = env.Driver.Step(env.Network, cost, occ, v.Location, rng)
	return v
}

// VehicleOccupy re-acquires the block-lock on a vehicle's (possibly new)
// tile, unless it has arrived at its destination.
func VehicleOccupy(env *Env, occ *occupancy.Occupancy, rng *rand.Rand, v Vehicle) Vehicle {
	if !v.AtDestination() {
		occ.LockBlock(v.Location)
	}
	return v
}

// DefaultVehicleUpdates is the standard per-vehicle update bracket applied
// once per tick: free the current tile, consult the driver, occupy the
// (possibly new) tile. Freeing before driving lets the vehicle's own tile
// count as a candidate move target if the driver circles back to it, and
// re-occupying afterward keeps the lock invariant continuously true between
// ticks.
var DefaultVehicleUpdates = []VehicleUpdate{VehicleFree, DriveVehicle, VehicleOccupy}

// NewUpdateVehicles returns a Step that applies updates, in order, to every
// vehicle in the roster.
func NewUpdateVehicles(env *Env, updates []VehicleUpdate) Step {
	return func(st State) State {
		for i, v := range st.Traffic.Vehicles {
			for _, upd := range updates {
				v = upd(env, st.Occupancy, st.Rand, v)
			}
			st.Traffic.Vehicles[i] = v
		}
		return st
	}
}

// NewRemoveVehicles returns a Step that drops every vehicle that has
// reached its destination, run after driving so a vehicle is dropped in the
// same tick it arrives and never appears at its destination in a published
// snapshot.
func NewRemoveVehicles() Step {
	return func(st State) State {
		kept := st.Traffic.Vehicles[:0]
		for _, v := range st.Traffic.Vehicles {
			if !v.AtDestination() {
				kept = append(kept, v)
			}
		}
		st.Traffic.Vehicles = kept
		return st
	}
}

// NewSpawnVehicles returns a Step that, for every source group, spawns a
// new vehicle with probability 1/frequency onto a uniformly random node in
// that group whose whole 4-cell block is unlocked (skipping the group
// entirely if no member's block is free), bound for a uniformly random
// destination group.
func NewSpawnVehicles(env *Env, frequency int) Step {
	return func(st State) State {
		for _, members := range env.City.Sources {
			if st.Rand.Intn(frequency) != 0 {
				continue
			}
			var free []int
			for _, node := range members {
				if st.Occupancy.IsBlockUnlocked(node) {
					free = append(free, node)
				}
			}
			if len(free) == 0 {
				continue
			}
			loc := free[st.Rand.Intn(len(free))]
			destGroup := st.Rand.Intn(len(env.City.Destinations))
			v := Vehicle{
				Location:         loc,
				Destination:      env.City.Destinations[destGroup],
				DestinationIndex: destGroup,
			}
			st.Occupancy.LockBlock(loc)
			st.Traffic.Vehicles = append(st.Traffic.Vehicles, v)
		}
		return st
	}
}

// NewDelay returns a Step that sleeps d, pacing the simulator to a target
// tick rate instead of running as fast as the CPU allows.
func NewDelay(d time.Duration) Step {
	return func(st State) State {
		time.Sleep(d)
		return st
	}
}
