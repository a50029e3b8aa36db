package ingest

import "errors"

// Sentinel kinds for feed-level errors.
var (
	ErrEmptyFeed     = errors.New("feed has no header row")
	ErrMissingColumn = errors.New("required column missing")
)
