package scoring

import "errors"

// Sentinel kinds for scoring errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
)
