package scoring_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/contestdash/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestValidate(t *testing.T) {
	Convey("Given credential records", t, func() {
		valid := scoring.Credentials{N: 4, P: 1, OA: 12, PA: 8, C: 1420, A: 1380}

		Convey("When the record is well formed", func() {
			Convey("Then it validates", func() {
				So(scoring.Validate(valid), ShouldBeNil)
			})
		})

		Convey("When N is zero", func() {
			c := valid
			c.N = 0
			c.P = 0

			Convey("Then it is rejected", func() {
				err := scoring.Validate(c)
				So(errors.Is(err, scoring.ErrInvalidCredentials), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "N must be >= 1")
			})
		})

		Convey("When P exceeds N", func() {
			c := valid
			c.P = 5

			Convey("Then it is rejected", func() {
				So(errors.Is(scoring.Validate(c), scoring.ErrInvalidCredentials), ShouldBeTrue)
			})
		})

		Convey("When P is negative", func() {
			c := valid
			c.P = -1

			Convey("Then it is rejected", func() {
				So(errors.Is(scoring.Validate(c), scoring.ErrInvalidCredentials), ShouldBeTrue)
			})
		})

		Convey("When a rating is not finite", func() {
			c := valid
			c.C = math.Inf(1)
			d := valid
			d.PA = math.NaN()

			Convey("Then it is rejected", func() {
				So(errors.Is(scoring.Validate(c), scoring.ErrInvalidCredentials), ShouldBeTrue)
				So(errors.Is(scoring.Validate(d), scoring.ErrInvalidCredentials), ShouldBeTrue)
			})
		})
	})
}
