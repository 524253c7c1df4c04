// Package sheet reads contest rows from, and writes derived sheets to, an
// .xlsx workbook.
package sheet

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/okian/contestdash/internal/domain/model"
)

// Column headers of the contest sheet.
const (
	colUserID = "user_id"
	colRollNo = "roll_no"
	colCode   = "code"
	colName   = "name"
	colRating = "rating"
	colRank   = "rank"
	colColor  = "color"
	colReason = "reason"
)

var requiredColumns = []string{colUserID, colRollNo, colCode, colRating, colRank}

// Reader loads contest rows from a workbook.
type Reader struct{}

// NewReader creates a workbook reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadContests reads every contest row of sheetName, or of the first sheet
// when sheetName is empty. Columns are located by header. Rows without a
// user id are skipped.
func (r *Reader) ReadContests(ctx context.Context, path, sheetName string) ([]model.ContestRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenWorkbook, path, err)
	}
	defer func() { _ = f.Close() }()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheetName, path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenWorkbook, sheetName, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols, err := headerIndex(rows[0])
	if err != nil {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, err)
	}

	out := make([]model.ContestRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, ok, err := parseRow(row, cols)
		if err != nil {
			// i+2: 1-based, plus the header row
			return nil, fmt.Errorf("sheet %q row %d: %w", sheetName, i+2, err)
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func headerIndex(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}
	return cols, nil
}

func parseRow(row []string, cols map[string]int) (model.ContestRecord, bool, error) {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	userID := cell(colUserID)
	if userID == "" {
		return model.ContestRecord{}, false, nil
	}

	rollNo, err := parseInt(cell(colRollNo))
	if err != nil {
		return model.ContestRecord{}, false, fmt.Errorf("%w: roll_no: %w", ErrMalformedRow, err)
	}
	rating, err := strconv.ParseFloat(cell(colRating), 64)
	if err != nil {
		return model.ContestRecord{}, false, fmt.Errorf("%w: rating: %w", ErrMalformedRow, err)
	}
	rank, err := parseInt(cell(colRank))
	if err != nil {
		return model.ContestRecord{}, false, fmt.Errorf("%w: rank: %w", ErrMalformedRow, err)
	}

	return model.ContestRecord{
		UserID: userID,
		RollNo: rollNo,
		Code:   cell(colCode),
		Name:   cell(colName),
		Rating: rating,
		Rank:   rank,
		Color:  cell(colColor),
		Reason: cell(colReason),
	}, true, nil
}

// parseInt accepts integral values that the workbook may render as floats,
// e.g. "21001" or "21001.0".
func parseInt(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %s", s)
	}
	return int(f), nil
}
