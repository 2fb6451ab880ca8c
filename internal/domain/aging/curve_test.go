package aging_test

import (
	"testing"

	"github.com/okian/cooperstown/internal/domain/aging"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCurveAt(t *testing.T) {
	Convey("Given a three-anchor curve", t, func() {
		c := aging.Curve{Points: []aging.Point{
			{Age: 20, Value: 0.5},
			{Age: 30, Value: 1.0},
			{Age: 40, Value: 0.0},
		}}

		Convey("Then anchors return their own value", func() {
			So(c.At(20), ShouldEqual, 0.5)
			So(c.At(30), ShouldEqual, 1.0)
			So(c.At(40), ShouldEqual, 0.0)
		})

		Convey("Then ages between anchors interpolate linearly", func() {
			So(c.At(25), ShouldAlmostEqual, 0.75, 1e-9)
			So(c.At(35), ShouldAlmostEqual, 0.5, 1e-9)
			So(c.At(32.5), ShouldAlmostEqual, 0.75, 1e-9)
		})

		Convey("Then ages outside the range clamp to the edge anchors", func() {
			So(c.At(15), ShouldEqual, 0.5)
			So(c.At(50), ShouldEqual, 0.0)
		})
	})

	Convey("Given an empty curve", t, func() {
		So(aging.Curve{}.At(30), ShouldEqual, 0)
	})
}

func TestDefaultTables(t *testing.T) {
	Convey("Given the default tables", t, func() {
		tables := aging.Default()

		Convey("Then every curve is sorted by age", func() {
			So(tables.Hitter.Sorted(), ShouldBeTrue)
			So(tables.Pitcher.Sorted(), ShouldBeTrue)
			So(tables.Survival.Sorted(), ShouldBeTrue)
			So(tables.PitcherSurvival.Sorted(), ShouldBeTrue)
		})

		Convey("Then pitchers decline earlier and faster than hitters", func() {
			for _, age := range []float64{31, 33, 35, 37, 40} {
				So(tables.Multiplier(age, true), ShouldBeLessThan, tables.Multiplier(age, false))
			}
		})

		Convey("Then both curves peak at 1.0", func() {
			So(tables.Multiplier(27, false), ShouldEqual, 1.0)
			So(tables.Multiplier(27, true), ShouldEqual, 1.0)
		})

		Convey("Then survival falls with age", func() {
			So(tables.PlayProbability(40, false), ShouldBeLessThan, tables.PlayProbability(30, false))
			So(tables.PlayProbability(36, true), ShouldBeLessThan, tables.PlayProbability(36, false))
		})
	})

	Convey("Given a curve with out-of-order anchors", t, func() {
		c := aging.Curve{Points: []aging.Point{{Age: 30, Value: 1}, {Age: 25, Value: 1}}}
		So(c.Sorted(), ShouldBeFalse)
	})
}
