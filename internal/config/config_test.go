package config_test

import (
	"testing"

	"github.com/okian/contestdash/internal/config"
	"github.com/okian/contestdash/internal/domain/scoring"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.DataPath, convey.ShouldEqual, "contest_details.xlsx")
			convey.So(cfg.LatestSheet, convey.ShouldEqual, "Latest Ratings")
			convey.So(cfg.HighRatingsSheet, convey.ShouldEqual, "2 star and above")
			convey.So(cfg.HighRatingMin, convey.ShouldEqual, 1400)
			convey.So(cfg.RecentWindow, convey.ShouldEqual, 5)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then the scoring policy matches the reference policy", func() {
			convey.So(cfg.ScoringPolicy(), convey.ShouldResemble, scoring.DefaultPolicy())
			convey.So(cfg.TierThresholds(), convey.ShouldResemble, scoring.DefaultTierThresholds())
		})
	})
}
