package repository

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompareCodes(t *testing.T) {
	Convey("Given contest codes", t, func() {
		Convey("Then numeric suffixes compare by value", func() {
			So(compareCodes("START99", "START132"), ShouldEqual, -1)
			So(compareCodes("START132", "START99"), ShouldEqual, 1)
			So(compareCodes("START132", "START132"), ShouldEqual, 0)
		})

		Convey("Then leading zeros do not change the value", func() {
			So(compareCodes("START007", "START7"), ShouldEqual, 0)
		})

		Convey("Then prefixes compare bytewise", func() {
			So(compareCodes("COOK12", "START1"), ShouldEqual, -1)
		})

		Convey("Then a proper prefix sorts first", func() {
			So(compareCodes("START", "START1"), ShouldEqual, -1)
			So(compareCodes("START12A", "START12"), ShouldEqual, 1)
		})
	})
}
