package sim

import "github.com/niceyeti/citytraffic/occupancy"

// Timer decides when a TrafficLightController advances to its next phase.
// Pluggable so tests can substitute a deterministic double for the default
// step-counting implementation.
type Timer interface {
	// Ready reports whether the current phase has elapsed, advancing the
	// timer's internal step count as a side effect.
	Ready() bool
	// Reset begins timing the next phase.
	Reset()
}

// CounterTimer is the default Timer: each phase lasts a fixed number of
// Ready calls, and phases are taken from durations in round-robin order.
type CounterTimer struct {
	durations []int
	phase     int
	elapsed   int
}

// NewCounterTimer returns a CounterTimer cycling through durations, one
// phase per light group in the same order groups were given to
// NewTrafficLightController.
func NewCounterTimer(durations []int) *CounterTimer {
	return &CounterTimer{durations: durations}
}

// NewAlternatingCounterTimer returns a CounterTimer for numGroups phases
// that alternates between evenSteps (phases 0, 2, 4, ...) and oddSteps
// (phases 1, 3, 5, ...), matching the --odd_cycle_steps/--even_cycle_steps
// configuration knobs.
func NewAlternatingCounterTimer(oddSteps, evenSteps, numGroups int) *CounterTimer {
	durations := make([]int, numGroups)
	for i := range durations {
		if i%2 == 0 {
			durations[i] = evenSteps
		} else {
			durations[i] = oddSteps
		}
	}
	return NewCounterTimer(durations)
}

// Ready reports whether the current phase has run its full duration.
func (t *CounterTimer) Ready() bool {
	t.elapsed++
	return t.elapsed >= t.durations[t.phase]
}

// Reset zeroes the elapsed count and advances to the next phase.
func (t *CounterTimer) Reset() {
	t.elapsed = 0
	t.phase = (t.phase + 1) % len(t.durations)
}

// TrafficLightController cycles exactly one light group open at a time:
// every node in the current group is unlocked, every node in every other
// group is locked. Step advances the cycle whenever its Timer reports
// ready.
type TrafficLightController struct {
	groups [][]int
	cycle  int
	timer  Timer
}

// NewTrafficLightController locks every group except group 0, which starts
// open, and returns a controller ready to Step.
func NewTrafficLightController(groups [][]int, timer Timer, occ *occupancy.Occupancy) *TrafficLightController {
	for g := 1; g < len(groups); g++ {
		for _, node := range groups[g] {
			occ.Lock(node)
		}
	}
	return &TrafficLightController{groups: groups, timer: timer}
}

// Step closes the current group, opens the next, and resets the timer,
// whenever the timer reports its phase has elapsed.
func (c *TrafficLightController) Step(st State) State {
	if len(c.groups) == 0 {
		return st
	}
	if c.timer.Ready() {
		for _, node := range c.groups[c.cycle] {
			st.Occupancy.Lock(node)
		}
		c.cycle = (c.cycle + 1) % len(c.groups)
		for _, node := range c.groups[c.cycle] {
			st.Occupancy.Unlock(node)
		}
		c.timer.Reset()
	}
	return st
}
