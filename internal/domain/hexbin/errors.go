package hexbin

import "errors"

// Sentinel kinds for grid construction.
var (
	ErrInvalidBinCount = errors.New("bin count must be positive")
)
