package sheet

import "errors"

// Sentinel kinds for workbook errors.
var (
	ErrOpenWorkbook  = errors.New("open workbook failed")
	ErrSheetNotFound = errors.New("sheet not found")
	ErrMissingColumn = errors.New("missing column")
	ErrMalformedRow  = errors.New("malformed row")
	ErrSheetConflict = errors.New("sheet cannot be replaced")
)
