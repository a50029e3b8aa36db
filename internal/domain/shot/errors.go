package shot

import "errors"

// Sentinel kinds for row-level filtering. These are never fatal: the batch
// transform drops the offending row and counts it in the report.
var (
	ErrMissingCoordinate = errors.New("missing or unparseable coordinate")
	ErrUnknownEventType  = errors.New("unrecognized event type")
)

func isMissingCoordinate(err error) bool {
	return errors.Is(err, ErrMissingCoordinate)
}
