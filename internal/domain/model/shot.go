// Package model contains domain models passed between layers.
package model

// ShotEvent represents one raw play-by-play row as read from the feed.
// Coordinates are in the feed's unit (inches) with the origin at a corner
// of the recorded grid; they are nil when the feed left them blank or
// unparseable, so the transform can drop the row instead of computing a
// bogus distance.
type ShotEvent struct {
	ID             string   // unique id for idempotency; assigned at ingest when the feed has none
	GameID         string   // source game identifier, may be empty
	Season         string   // e.g. "2023-24"
	HomeTeam       string   // home team name as recorded by the feed
	ConferenceGame bool     // whether the game was an in-conference matchup
	Type           string   // raw event type string, validated by the transform
	Made           bool     // whether the shot went in
	X              *float64 // raw x coordinate, inches
	Y              *float64 // raw y coordinate, inches
}

// TransformedShot is an analysis-ready shot in the court frame: feet,
// origin at half-court center, x in [-47, 47], y in [-25, 25].
type TransformedShot struct {
	ID             string
	GameID         string
	Season         string
	HomeTeam       string
	ConferenceGame bool
	Type           string
	Made           bool
	X              float64 // court-frame feet
	Y              float64 // court-frame feet
	Distance       float64 // feet to the nearest rim, rounded to a fixed precision
	Suspect        bool    // coordinates fall outside the playing surface
}
