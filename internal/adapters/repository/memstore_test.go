package repository_test

import (
	"context"
	"testing"

	"github.com/okian/contestdash/internal/adapters/repository"
	"github.com/okian/contestdash/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func fixture() []model.ContestRecord {
	return []model.ContestRecord{
		{UserID: "carol", RollNo: 3, Code: "START99", Name: "Starters 99", Rating: 1350, Rank: 400, Color: "#1E7D22"},
		{UserID: "alice", RollNo: 1, Code: "START132", Name: "Starters 132", Rating: 1620, Rank: 120, Color: "#3366CC"},
		{UserID: "alice", RollNo: 1, Code: "START99", Name: "Starters 99", Rating: 1500, Rank: 200, Color: "#1E7D22"},
		{UserID: "bob", RollNo: 2, Code: "START99", Name: "Starters 99", Rating: 1180, Rank: 900, Color: "#666666", Reason: "Plagiarism"},
		{UserID: "bob", RollNo: 2, Code: "START132", Name: "Starters 132", Rating: 1420, Rank: 300, Color: "#1E7D22"},
		{UserID: "abby", RollNo: 2, Code: "START132", Name: "Starters 132", Rating: 1000, Rank: 1500, Color: "#666666"},
	}
}

func TestMemoryStore_Lookups(t *testing.T) {
	Convey("Given a store built from a small workbook", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(fixture())

		Convey("When fetching a known user's history", func() {
			h, err := store.History(ctx, "alice")

			Convey("Then rows come back in workbook order", func() {
				So(err, ShouldBeNil)
				So(len(h), ShouldEqual, 2)
				So(h[0].Code, ShouldEqual, "START132")
				So(h[1].Code, ShouldEqual, "START99")
			})

			Convey("And mutating the result does not touch the store", func() {
				h[0].Rating = 0
				again, _ := store.History(ctx, "alice")
				So(again[0].Rating, ShouldEqual, 1620)
			})
		})

		Convey("When fetching an unknown user", func() {
			_, err := store.History(ctx, "mallory")

			Convey("Then ErrNotFound is returned", func() {
				So(err, ShouldEqual, repository.ErrNotFound)
			})
		})

		Convey("When resolving a shared roll number", func() {
			id, err := store.ResolveRollNo(ctx, 2)

			Convey("Then the smallest user id wins", func() {
				So(err, ShouldBeNil)
				So(id, ShouldEqual, "abby")
			})
		})

		Convey("When fetching every row of a shared roll number", func() {
			h, err := store.RollHistory(ctx, 2)

			Convey("Then rows of all its user ids come back in workbook order", func() {
				So(err, ShouldBeNil)
				So(len(h), ShouldEqual, 3)
				So(h[0].UserID, ShouldEqual, "bob")
				So(h[1].UserID, ShouldEqual, "bob")
				So(h[2].UserID, ShouldEqual, "abby")
			})
		})

		Convey("When fetching rows of an unknown roll number", func() {
			_, err := store.RollHistory(ctx, 42)

			Convey("Then ErrNotFound is returned", func() {
				So(err, ShouldEqual, repository.ErrNotFound)
			})
		})

		Convey("When resolving an unknown roll number", func() {
			_, err := store.ResolveRollNo(ctx, 42)

			Convey("Then ErrNotFound is returned", func() {
				So(err, ShouldEqual, repository.ErrNotFound)
			})
		})

		Convey("When counting", func() {
			Convey("Then users and rows are reported", func() {
				So(store.Count(ctx), ShouldEqual, 4)
				So(store.Records(ctx), ShouldEqual, 6)
			})
		})

		Convey("When reading contest averages", func() {
			avg := store.ContestAverages(ctx)

			Convey("Then means are computed per code", func() {
				So(avg["START99"].Participants, ShouldEqual, 3)
				So(avg["START99"].AverageRating, ShouldAlmostEqual, (1350.0+1500+1180)/3, 1e-9)
				So(avg["START132"].AverageRank, ShouldAlmostEqual, (120.0+300+1500)/3, 1e-9)
			})
		})
	})
}

func TestMemoryStore_Latest(t *testing.T) {
	Convey("Given a store built from a small workbook", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(fixture())

		Convey("When listing latest ratings", func() {
			latest := store.Latest(ctx)

			Convey("Then each user appears once with the naturally latest contest", func() {
				So(len(latest), ShouldEqual, 4)
				byUser := map[string]string{}
				for _, e := range latest {
					byUser[e.UserID] = e.Code
				}
				So(byUser["alice"], ShouldEqual, "START132")
				So(byUser["bob"], ShouldEqual, "START132")
				So(byUser["carol"], ShouldEqual, "START99")
			})

			Convey("Then rows are ordered by roll number", func() {
				So(latest[0].UserID, ShouldEqual, "alice")
				So(latest[1].UserID, ShouldEqual, "abby")
				So(latest[2].UserID, ShouldEqual, "bob")
				So(latest[3].UserID, ShouldEqual, "carol")
			})

			Convey("Then college ranks number the rows in roll number order", func() {
				for i, e := range latest {
					So(e.CollegeRank, ShouldEqual, i+1)
				}
				So(latest[0].Stars, ShouldEqual, 3)
			})

			Convey("Then a higher latest rating does not move a user up", func() {
				// carol (1350) sits below bob (1420) because of her roll number.
				So(latest[3].UserID, ShouldEqual, "carol")
				So(latest[3].CollegeRank, ShouldEqual, 4)
				So(latest[1].Rating, ShouldEqual, 1000)
				So(latest[1].CollegeRank, ShouldEqual, 2)
			})
		})

		Convey("When listing high ratings above 1400", func() {
			high := store.HighRatings(ctx, 1400)

			Convey("Then only strictly higher ratings remain, ascending", func() {
				So(len(high), ShouldEqual, 2)
				So(high[0].UserID, ShouldEqual, "bob")
				So(high[0].Stars, ShouldEqual, 2)
				So(high[1].UserID, ShouldEqual, "alice")
			})
		})

		Convey("When the threshold equals a rating", func() {
			high := store.HighRatings(ctx, 1420)

			Convey("Then that rating is excluded", func() {
				So(len(high), ShouldEqual, 1)
				So(high[0].UserID, ShouldEqual, "alice")
			})
		})
	})
}
