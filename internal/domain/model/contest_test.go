package model_test

import (
	"testing"

	"github.com/okian/contestdash/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestContestRecord_Flagged(t *testing.T) {
	Convey("Given contest records", t, func() {
		Convey("When the reason is empty", func() {
			r := model.ContestRecord{UserID: "alice", Reason: ""}

			Convey("Then it is not flagged", func() {
				So(r.Flagged(), ShouldBeFalse)
			})
		})

		Convey("When the reason is only whitespace", func() {
			r := model.ContestRecord{UserID: "alice", Reason: "   "}

			Convey("Then it is not flagged", func() {
				So(r.Flagged(), ShouldBeFalse)
			})
		})

		Convey("When the reason is set", func() {
			r := model.ContestRecord{UserID: "alice", Reason: "Plagiarism detected"}

			Convey("Then it is flagged", func() {
				So(r.Flagged(), ShouldBeTrue)
			})
		})
	})
}
