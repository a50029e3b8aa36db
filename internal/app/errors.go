package service

import "errors"

// Sentinel kinds for pipeline runs.
var (
	ErrNoInput = errors.New("no input feed configured")
)
