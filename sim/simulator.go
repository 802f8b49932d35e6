package sim

import (
	"sync"

	"github.com/niceyeti/citytraffic/version"
)

// Simulator runs a fixed pipeline of Steps in a loop, publishing a Traffic
// snapshot after every completed tick. Start, Pause, and Shutdown are safe
// to call from any goroutine; Run must be called from exactly one.
//
// Run blocks on a sync.Cond rather than busy-polling a run flag: a
// supervisor toggling Start/Pause/Shutdown wakes the loop immediately
// instead of it spinning or sleeping-and-checking, with no change to the
// sequence of ticks or snapshots a running simulator produces.
type Simulator struct {
	steps []Step
	pub   *version.Publisher[Traffic]

	mu       sync.Mutex
	cond     *sync.Cond
	running  bool
	shutdown bool

	state State
}

// NewSimulator returns a Simulator over steps, starting from initial, that
// publishes its Traffic snapshots to pub. The simulator starts paused;
// call Start to begin running.
func NewSimulator(steps []Step, initial State, pub *version.Publisher[Traffic]) *Simulator {
	s := &Simulator{steps: steps, state: initial, pub: pub}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Run executes ticks until Shutdown is called. Between Start and the next
// Pause or Shutdown it runs continuously; while paused it blocks without
// spinning.
func (s *Simulator) Run() {
	for {
		s.mu.Lock()
		for !s.running && !s.shutdown {
			s.cond.Wait()
		}
		done := s.shutdown
		s.mu.Unlock()
		if done {
			return
		}

		s.state = s.tick(s.state)
		s.pub.Publish(s.state.Traffic.Clone())
	}
}

// tick applies every step in order and advances the Traffic id.
func (s *Simulator) tick(st State) State {
	for _, step := range s.steps {
		st = step(st)
	}
	st.Traffic.ID++
	return st
}

// Start begins or resumes ticking.
func (s *Simulator) Start() {
	s.mu.Lock()
	s.running = true
	s.mu.Unlock()
	s.cond.Broadcast()
}

// Pause suspends ticking after the current tick completes. Run keeps the
// goroutine alive, blocked, ready to Start again.
func (s *Simulator) Pause() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// Shutdown stops Run permanently; it does not resume after this.
func (s *Simulator) Shutdown() {
	s.mu.Lock()
	s.shutdown = true
	s.mu.Unlock()
	s.cond.Broadcast()
}
