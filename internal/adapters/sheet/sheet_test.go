package sheet_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/okian/contestdash/internal/adapters/sheet"
	"github.com/okian/contestdash/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		r := row
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatal(err)
		}
	}

	path := filepath.Join(t.TempDir(), "contest_details.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

var header = []any{"user_id", "roll_no", "code", "name", "rating", "rank", "color", "reason"}

func TestReader_ReadContests(t *testing.T) {
	Convey("Given a workbook with contest rows", t, func() {
		ctx := context.Background()
		path := writeWorkbook(t, [][]any{
			header,
			{"alice", 21001, "START99", "Starters 99", 1500, 200, "#1E7D22", ""},
			{"", 21009, "START99", "Starters 99", 1100, 900, "#666666", ""},
			{"bob", 21002, "START99", "Starters 99", 1180.5, 900, "#666666", "Plagiarism"},
		})
		reader := sheet.NewReader()

		Convey("When reading the first sheet", func() {
			records, err := reader.ReadContests(ctx, path, "")

			Convey("Then rows are parsed and blank user ids skipped", func() {
				So(err, ShouldBeNil)
				So(len(records), ShouldEqual, 2)
				So(records[0], ShouldResemble, model.ContestRecord{
					UserID: "alice", RollNo: 21001, Code: "START99", Name: "Starters 99",
					Rating: 1500, Rank: 200, Color: "#1E7D22",
				})
				So(records[1].Rating, ShouldEqual, 1180.5)
				So(records[1].Flagged(), ShouldBeTrue)
			})
		})

		Convey("When reading a sheet that does not exist", func() {
			_, err := reader.ReadContests(ctx, path, "Nope")

			Convey("Then ErrSheetNotFound is returned", func() {
				So(errors.Is(err, sheet.ErrSheetNotFound), ShouldBeTrue)
			})
		})

		Convey("When the workbook does not exist", func() {
			_, err := reader.ReadContests(ctx, filepath.Join(t.TempDir(), "missing.xlsx"), "")

			Convey("Then ErrOpenWorkbook is returned", func() {
				So(errors.Is(err, sheet.ErrOpenWorkbook), ShouldBeTrue)
			})
		})
	})

	Convey("Given a workbook missing a required column", t, func() {
		path := writeWorkbook(t, [][]any{
			{"user_id", "code", "rating"},
			{"alice", "START99", 1500},
		})

		Convey("When reading it", func() {
			_, err := sheet.NewReader().ReadContests(context.Background(), path, "")

			Convey("Then ErrMissingColumn is returned", func() {
				So(errors.Is(err, sheet.ErrMissingColumn), ShouldBeTrue)
			})
		})
	})

	Convey("Given a workbook with a non-numeric rating", t, func() {
		path := writeWorkbook(t, [][]any{
			header,
			{"alice", 21001, "START99", "Starters 99", "n/a", 200, "#1E7D22", ""},
		})

		Convey("When reading it", func() {
			_, err := sheet.NewReader().ReadContests(context.Background(), path, "")

			Convey("Then the row is reported as malformed", func() {
				So(errors.Is(err, sheet.ErrMalformedRow), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "row 2")
			})
		})
	})
}

func TestWriter(t *testing.T) {
	Convey("Given a workbook and derived entries", t, func() {
		ctx := context.Background()
		path := writeWorkbook(t, [][]any{
			header,
			{"alice", 21001, "START99", "Starters 99", 1500, 200, "#1E7D22", ""},
		})
		entries := []model.LatestEntry{
			{UserID: "alice", RollNo: 21001, Code: "START132", Name: "Starters 132", Rating: 1620, Rank: 120, Color: "#3366CC", Stars: 3},
			{UserID: "bob", RollNo: 21002, Code: "START132", Name: "Starters 132", Rating: 1420, Rank: 300, Color: "#1E7D22", Stars: 2},
		}
		writer := sheet.NewWriter()

		Convey("When writing the latest sheet twice", func() {
			So(writer.WriteLatest(ctx, path, "Latest Ratings", entries[:1]), ShouldBeNil)
			So(writer.WriteLatest(ctx, path, "Latest Ratings", entries), ShouldBeNil)

			Convey("Then the sheet is replaced and readable as contest rows", func() {
				records, err := sheet.NewReader().ReadContests(ctx, path, "Latest Ratings")
				So(err, ShouldBeNil)
				So(len(records), ShouldEqual, 2)
				So(records[0].Code, ShouldEqual, "START132")
				So(records[1].UserID, ShouldEqual, "bob")
			})

			Convey("And the source sheet is untouched", func() {
				records, err := sheet.NewReader().ReadContests(ctx, path, "Sheet1")
				So(err, ShouldBeNil)
				So(len(records), ShouldEqual, 1)
			})
		})

		Convey("When writing the high-ratings sheet", func() {
			So(writer.WriteHighRatings(ctx, path, "2 star and above", entries), ShouldBeNil)

			Convey("Then stars replace the colour column", func() {
				f, err := excelize.OpenFile(path)
				So(err, ShouldBeNil)
				defer func() { _ = f.Close() }()

				rows, err := f.GetRows("2 star and above")
				So(err, ShouldBeNil)
				So(rows[0][6], ShouldEqual, "stars")
				So(rows[1][6], ShouldEqual, "3")
				So(rows[2][6], ShouldEqual, "2")
			})
		})

		Convey("When the target is the only sheet", func() {
			err := writer.WriteLatest(ctx, path, "Sheet1", entries)

			Convey("Then ErrSheetConflict is returned", func() {
				So(errors.Is(err, sheet.ErrSheetConflict), ShouldBeTrue)
			})
		})
	})
}
