package aggregate

import "errors"

// Sentinel kinds for aggregation errors.
var (
	ErrEmptyHistory = errors.New("empty contest history")
)
