package repository

import "errors"

// Sentinel kinds for aggregate store errors.
var (
	ErrGroupNotFound = errors.New("group not found")
)
