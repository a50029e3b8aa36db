// Package types contains common types used across the application
package types

// GroupStat is one row of the group-wise summary table: attempts, makes
// and made ratio for a (season, event type) group.
type GroupStat struct {
	Season    string  `json:"season"`
	EventType string  `json:"event_type"`
	Attempts  int     `json:"attempts"`
	Made      int     `json:"made"`
	MadeRatio float64 `json:"made_ratio"`
}
