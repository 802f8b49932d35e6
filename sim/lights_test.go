package sim

import (
	"testing"

	"github.com/niceyeti/citytraffic/occupancy"
	. "github.com/smartystreets/goconvey/convey"
)

// alwaysReady is a Timer double that reports ready on every call, letting
// tests advance the light cycle deterministically once per Step call.
type alwaysReady struct{}

func (alwaysReady) Ready() bool { return true }
func (alwaysReady) Reset()      {}

func TestTrafficLightCycling(t *testing.T) {
	Convey("Given two light groups {1,3} and {2,4} over 6 nodes with an always-ready timer", t, func() {
		occ := occupancy.New(6)
		groups := [][]int{{1, 3}, {2, 4}}
		ctrl := NewTrafficLightController(groups, alwaysReady{}, occ)
		st := State{Occupancy: occ}

		Convey("Group 0 starts open and group 1 starts locked", func() {
			So(occ.IsUnlocked(1), ShouldBeTrue)
			So(occ.IsUnlocked(3), ShouldBeTrue)
			So(occ.IsUnlocked(2), ShouldBeFalse)
			So(occ.IsUnlocked(4), ShouldBeFalse)
		})

		Convey("After one Step, group 0 closes and group 1 opens", func() {
			ctrl.Step(st)
			So(occ.IsUnlocked(1), ShouldBeFalse)
			So(occ.IsUnlocked(3), ShouldBeFalse)
			So(occ.IsUnlocked(2), ShouldBeTrue)
			So(occ.IsUnlocked(4), ShouldBeTrue)
		})

		Convey("After two Steps, the cycle returns to its initial configuration", func() {
			ctrl.Step(st)
			ctrl.Step(st)
			So(occ.IsUnlocked(1), ShouldBeTrue)
			So(occ.IsUnlocked(3), ShouldBeTrue)
			So(occ.IsUnlocked(2), ShouldBeFalse)
			So(occ.IsUnlocked(4), ShouldBeFalse)
		})
	})
}

func TestCounterTimer(t *testing.T) {
	Convey("Given a CounterTimer with durations [2, 3]", t, func() {
		timer := NewCounterTimer([]int{2, 3})

		Convey("It is not ready until the phase's duration elapses", func() {
			So(timer.Ready(), ShouldBeFalse)
			So(timer.Ready(), ShouldBeTrue)
		})

		Convey("Reset advances to the next phase with its own duration", func() {
			timer.Ready()
			timer.Ready()
			timer.Reset()
			So(timer.Ready(), ShouldBeFalse)
			So(timer.Ready(), ShouldBeFalse)
			So(timer.Ready(), ShouldBeTrue)
		})
	})
}

func TestAlternatingCounterTimer(t *testing.T) {
	Convey("Given an alternating timer over 3 groups with odd=2, even=4", t, func() {
		timer := NewAlternatingCounterTimer(2, 4, 3)

		Convey("Phase 0 (even) uses the even duration", func() {
			So(timer.durations[0], ShouldEqual, 4)
		})
		Convey("Phase 1 (odd) uses the odd duration", func() {
			So(timer.durations[1], ShouldEqual, 2)
		})
		Convey("Phase 2 (even) uses the even duration again", func() {
			So(timer.durations[2], ShouldEqual, 4)
		})
	})
}
