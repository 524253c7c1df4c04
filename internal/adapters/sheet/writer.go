package sheet

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/okian/contestdash/internal/domain/model"
)

var (
	latestHeader = []any{colUserID, colRollNo, colCode, colName, colRating, colRank, colColor, colReason}
	highHeader   = []any{colUserID, colRollNo, colCode, colName, colRating, colRank, "stars", colReason}
)

// Writer replaces derived sheets inside an existing workbook.
type Writer struct{}

// NewWriter creates a workbook writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteLatest replaces sheetName with one row per entry, in the contest
// sheet's column layout.
func (w *Writer) WriteLatest(ctx context.Context, path, sheetName string, entries []model.LatestEntry) error {
	rows := make([][]any, len(entries))
	for i, e := range entries {
		rows[i] = []any{e.UserID, e.RollNo, e.Code, e.Name, e.Rating, e.Rank, e.Color, e.Reason}
	}
	return w.replace(ctx, path, sheetName, latestHeader, rows)
}

// WriteHighRatings replaces sheetName with the high-ratings table: the
// colour column is swapped for the star count.
func (w *Writer) WriteHighRatings(ctx context.Context, path, sheetName string, entries []model.LatestEntry) error {
	rows := make([][]any, len(entries))
	for i, e := range entries {
		rows[i] = []any{e.UserID, e.RollNo, e.Code, e.Name, e.Rating, e.Rank, e.Stars, e.Reason}
	}
	return w.replace(ctx, path, sheetName, highHeader, rows)
}

func (w *Writer) replace(ctx context.Context, path, sheetName string, header []any, rows [][]any) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOpenWorkbook, path, err)
	}
	defer func() { _ = f.Close() }()

	if idx, err := f.GetSheetIndex(sheetName); err == nil && idx >= 0 {
		if len(f.GetSheetList()) == 1 {
			return fmt.Errorf("%w: %q is the only sheet in %s", ErrSheetConflict, sheetName, path)
		}
		if err := f.DeleteSheet(sheetName); err != nil {
			return fmt.Errorf("delete sheet %q: %w", sheetName, err)
		}
	}
	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("create sheet %q: %w", sheetName, err)
	}

	if err := setRow(f, sheetName, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := setRow(f, sheetName, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheetName string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("write %s!%s: %w", sheetName, cell, err)
	}
	return nil
}
