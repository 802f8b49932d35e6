package mapfile

import (
	"errors"
	"strings"
	"testing"

	"github.com/niceyeti/citytraffic/city"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadStraightRoadWithSourceAndDestination(t *testing.T) {
	Convey("Given a 2x1 map with an eastbound road, a source, and a destination", t, func() {
		text := "S>0 >>,D>0\n"
		c, err := Load(strings.NewReader(text))
		So(err, ShouldBeNil)

		Convey("Dimensions are read from the row/column counts", func() {
			So(c.Width, ShouldEqual, 2)
			So(c.Height, ShouldEqual, 1)
		})

		Convey("The source and destination groups resolve to the expected node indices", func() {
			So(c.Sources, ShouldResemble, [][]int{{1}})
			So(c.Destinations, ShouldResemble, [][]int{{5}})
		})

		Convey("CreateEdges connects the source's road to the adjacent tile", func() {
			edges := c.CreateEdges()
			So(len(edges), ShouldEqual, 1)
			So(edges[0].From, ShouldEqual, 1)
			So(edges[0].To, ShouldEqual, 5)
		})
	})
}

func TestLoadWildcardExpandsExcludingUTurns(t *testing.T) {
	Convey("Given a single-tile map with a full wildcard road", t, func() {
		c, err := Load(strings.NewReader("**\n"))
		So(err, ShouldBeNil)

		Convey("12 of the 16 (entry, exit) pairs survive U-turn exclusion", func() {
			So(len(c.Roads), ShouldEqual, 12)
		})
	})
}

func TestLoadRejectsUnknownSymbol(t *testing.T) {
	Convey("Given a map with a nonsense cell token", t, func() {
		_, err := Load(strings.NewReader("Q9\n"))
		Convey("Load reports ErrUnknownSymbol", func() {
			So(errors.Is(err, ErrUnknownSymbol), ShouldBeTrue)
		})
	})
}

func TestLoadRejectsRaggedRows(t *testing.T) {
	Convey("Given a map whose second row has a different column count", t, func() {
		_, err := Load(strings.NewReader("**,**\n**\n"))
		Convey("Load reports ErrRaggedRow", func() {
			So(errors.Is(err, ErrRaggedRow), ShouldBeTrue)
		})
	})
}

func TestLoadRejectsSparseGroupNumbering(t *testing.T) {
	Convey("Given a map whose only source group is numbered 1, skipping 0", t, func() {
		_, err := Load(strings.NewReader("S>1\n"))
		Convey("Load reports ErrSparseGroups", func() {
			So(errors.Is(err, city.ErrSparseGroups), ShouldBeTrue)
		})
	})
}

func TestLoadRejectsEmptyMap(t *testing.T) {
	Convey("Given an empty map", t, func() {
		_, err := Load(strings.NewReader(""))
		Convey("Load reports ErrEmptyMap", func() {
			So(errors.Is(err, ErrEmptyMap), ShouldBeTrue)
		})
	})
}
