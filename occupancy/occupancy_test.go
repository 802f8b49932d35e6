package occupancy

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestOccupancyLifecycle(t *testing.T) {
	Convey("Given an Occupancy(10)", t, func() {
		o := New(10)

		Convey("remove_all_locks(7); lock(7); lock(7); unlock(7) leaves node 7 locked", func() {
			o.RemoveAllLocks(7)
			o.Lock(7)
			o.Lock(7)
			o.Unlock(7)
			So(o.IsUnlocked(7), ShouldBeFalse)

			Convey("a further unlock(7) leaves it unlocked", func() {
				o.Unlock(7)
				So(o.IsUnlocked(7), ShouldBeTrue)

				Convey("and one more unlock(7) is a fatal programming error", func() {
					So(func() { o.Unlock(7) }, ShouldPanic)
				})
			})
		})
	})
}

func TestAllNodesStartUnlocked(t *testing.T) {
	Convey("A freshly built Occupancy has every node unlocked", t, func() {
		o := New(5)
		for i := 0; i < 5; i++ {
			So(o.IsUnlocked(i), ShouldBeTrue)
		}
	})
}

func TestBlockLocking(t *testing.T) {
	Convey("Given an Occupancy over 2 tiles (8 nodes)", t, func() {
		o := New(8)

		Convey("LockBlock(5) locks nodes 4..7, leaving 0..3 unlocked", func() {
			o.LockBlock(5)
			for i := 0; i < 4; i++ {
				So(o.IsUnlocked(i), ShouldBeTrue)
			}
			for i := 4; i < 8; i++ {
				So(o.IsUnlocked(i), ShouldBeFalse)
			}

			Convey("UnlockBlock(4) releases the same block", func() {
				o.UnlockBlock(4)
				for i := 4; i < 8; i++ {
					So(o.IsUnlocked(i), ShouldBeTrue)
				}
			})
		})
	})
}

func TestLockCountsAreAdditive(t *testing.T) {
	Convey("A node locked by two independent holders needs two unlocks", t, func() {
		o := New(1)
		o.Lock(0)
		o.Lock(0)
		So(o.IsUnlocked(0), ShouldBeFalse)
		o.Unlock(0)
		So(o.IsUnlocked(0), ShouldBeFalse)
		o.Unlock(0)
		So(o.IsUnlocked(0), ShouldBeTrue)
	})
}

func TestIsBlockUnlocked(t *testing.T) {
	Convey("Given an Occupancy over one tile (4 nodes)", t, func() {
		o := New(4)

		Convey("It reports unlocked while every orientation is free", func() {
			So(o.IsBlockUnlocked(2), ShouldBeTrue)
		})

		Convey("Locking a single orientation makes the whole block report locked", func() {
			o.Lock(1)
			So(o.IsBlockUnlocked(2), ShouldBeFalse)
		})
	})
}

func TestClone(t *testing.T) {
	Convey("Clone is an independent deep copy", t, func() {
		o := New(2)
		o.Lock(0)
		clone := o.Clone()
		clone.Unlock(0)
		So(o.IsUnlocked(0), ShouldBeFalse)
		So(clone.IsUnlocked(0), ShouldBeTrue)
	})
}
