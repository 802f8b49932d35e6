package render

import (
	"testing"

	"github.com/niceyeti/citytraffic/city"
	"github.com/niceyeti/citytraffic/sim"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildSnapshot(t *testing.T) {
	Convey("Given a 2x2 city and a Traffic with one vehicle", t, func() {
		c, err := city.New(2, 2, nil, nil, nil, nil)
		So(err, ShouldBeNil)

		loc := c.GetIndex(city.Cell{X: 1, Y: 0, Dir: city.East})
		traffic := &sim.Traffic{ID: 7, Vehicles: []sim.Vehicle{{Location: loc, DestinationIndex: 2}}}

		Convey("BuildSnapshot projects the vehicle's node index into tile coordinates", func() {
			snap := BuildSnapshot(c, traffic)
			So(snap.TrafficID, ShouldEqual, 7)
			So(len(snap.Vehicles), ShouldEqual, 1)
			So(snap.Vehicles[0].X, ShouldEqual, 1)
			So(snap.Vehicles[0].Y, ShouldEqual, 0)
			So(snap.Vehicles[0].Dir, ShouldEqual, ">")
			So(snap.Vehicles[0].Color, ShouldEqual, palette[2])
		})
	})
}

func TestPaletteIsDistinctAndWraps(t *testing.T) {
	Convey("Given the 64-colour palette", t, func() {
		Convey("It has exactly 64 distinct colours", func() {
			seen := map[string]bool{}
			for _, c := range palette {
				seen[c] = true
			}
			So(len(palette), ShouldEqual, 64)
			So(len(seen), ShouldEqual, 64)
		})

		Convey("A destination index beyond 64 wraps via modulo", func() {
			So(palette[70%len(palette)], ShouldEqual, palette[6])
		})
	})
}
