package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted = errors.New("dataset not loaded")
	ErrEmptyQuery = errors.New("empty query")
	ErrNoReader   = errors.New("no workbook reader configured")
	ErrNoWriter   = errors.New("no workbook writer configured")
)
