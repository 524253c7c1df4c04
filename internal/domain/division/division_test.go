package division_test

import (
	"testing"

	"github.com/okian/contestdash/internal/domain/division"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStars(t *testing.T) {
	Convey("Given division colours", t, func() {
		Convey("When the colour is known", func() {
			Convey("Then the star count is returned regardless of case", func() {
				n, ok := division.Stars("#3366CC")
				So(ok, ShouldBeTrue)
				So(n, ShouldEqual, 3)

				n, ok = division.Stars(" #1e7d22 ")
				So(ok, ShouldBeTrue)
				So(n, ShouldEqual, 2)

				n, _ = division.Stars("#FFBF00")
				So(n, ShouldEqual, 5)
			})
		})

		Convey("When the colour is unknown", func() {
			n, ok := division.Stars("#FFFFFF")

			Convey("Then no stars are reported", func() {
				So(ok, ShouldBeFalse)
				So(n, ShouldEqual, 0)
			})
		})
	})
}

func TestLabelAndSymbol(t *testing.T) {
	Convey("Given division colours", t, func() {
		Convey("Then divisions 2 to 4 have labels", func() {
			l, ok := division.Label("#666666")
			So(ok, ShouldBeTrue)
			So(l, ShouldEqual, "Division-4 (1Star)")

			_, ok = division.Label("#684273")
			So(ok, ShouldBeFalse)
		})

		Convey("Then star symbols render with the count", func() {
			So(division.Symbol(3), ShouldEqual, "3⭐")
			So(division.Symbol(0), ShouldEqual, "")
		})
	})
}
