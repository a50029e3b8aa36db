package gendata

import "math"

// Default feed shape constants.
const (
	defaultRows       = 5000
	defaultDirtyShare = 0.03
	gameCount         = 500
	conferenceShare   = 0.6
	half              = 0.5
)

// Raw grid constants, inches. Origin is the corner of the recorded grid;
// the positive-x rim sits 88.75ft along and 25ft across.
const (
	courtLengthInches = 94 * 12
	courtWidthInches  = 50 * 12
	centerYInches     = 25 * 12
	rimXInches        = 88.75 * 12
	freeThrowXInches  = 75 * 12
	threeRadiusInches = 20.75 * 12
)

// Cluster spreads and shares.
const (
	rimShare              = 0.4
	rimSpreadInches       = 30
	rimMadePct            = 0.62
	threeShare            = 0.5 // of the non-rim remainder
	arcSpreadInches       = 18
	arcAngleSpread        = math.Pi * 0.9
	threeMadePct          = 0.34
	freeThrowShare        = 0.5 // of the remainder after rim and three
	freeThrowSpreadInches = 6
	freeThrowMadePct      = 0.71
	midrangeXMin          = 600.0
	midrangeXMax          = 1100.0
	midrangeMadePct       = 0.42
)

func defaultSeasons() []string {
	return []string{"2022-23", "2023-24"}
}

func defaultTeams() []string {
	return []string{"Gonzaga", "Duke", "Kansas", "Purdue", "Houston", "Auburn"}
}
