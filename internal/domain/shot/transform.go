// Package shot maps raw play-by-play shot events into the court frame:
// inches become feet, the corner-origin grid is recentered on half court,
// and each shot gets its straight-line distance to the nearest rim.
//
// Distance folds both offensive ends onto one canonical basket via |x|.
// That is only exact when upstream data orients every shot toward its own
// basket; since the feed does not document its convention, shots landing
// outside the playing surface are flagged Suspect rather than dropped.
package shot

import (
	"fmt"
	"math"

	"github.com/okian/halfcourt/internal/domain/model"
)

// Unit and rounding constants.
const (
	inchesPerFoot    = 12.0
	defaultPrecision = 3
)

// Default court-frame constants (NCAA, feet).
const (
	defaultHalfLength = 47.0
	defaultHalfWidth  = 25.0
	defaultRimX       = 41.75
)

// EventType enumerates the recognized shot event types.
type EventType string

// Recognized shot event types.
const (
	FreeThrow      EventType = "freethrow"
	FieldGoal      EventType = "fieldgoal"
	TwoPointMade   EventType = "twopointmade"
	TwoPointMiss   EventType = "twopointmiss"
	ThreePointMade EventType = "threepointmade"
	ThreePointMiss EventType = "threepointmiss"
)

var recognized = map[EventType]struct{}{
	FreeThrow:      {},
	FieldGoal:      {},
	TwoPointMade:   {},
	TwoPointMiss:   {},
	ThreePointMade: {},
	ThreePointMiss: {},
}

// Valid reports whether t is one of the recognized shot types.
func (t EventType) Valid() bool {
	_, ok := recognized[t]
	return ok
}

// Report summarizes a batch transform: how many rows came in, how many
// survived, and why the rest were dropped.
type Report struct {
	Input             int
	Transformed       int
	MissingCoordinate int
	UnknownType       int
	Suspect           int // flagged, still included in the output
}

// Transformer converts raw shot events into court-frame shots.
type Transformer struct {
	halfLength float64
	halfWidth  float64
	rimX       float64
	precision  int
}

// NewTransformer creates a transformer with NCAA-frame defaults.
func NewTransformer(opts ...Option) *Transformer {
	t := &Transformer{
		halfLength: defaultHalfLength,
		halfWidth:  defaultHalfWidth,
		rimX:       defaultRimX,
		precision:  defaultPrecision,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform converts one raw event. Rows without both coordinates or with
// an unrecognized event type return an error so the caller excludes them;
// no sentinel distance is ever produced.
func (t *Transformer) Transform(ev model.ShotEvent) (model.TransformedShot, error) {
	if ev.X == nil || ev.Y == nil {
		return model.TransformedShot{}, fmt.Errorf("event %s: %w", ev.ID, ErrMissingCoordinate)
	}
	if !EventType(ev.Type).Valid() {
		return model.TransformedShot{}, fmt.Errorf("event %s type %q: %w", ev.ID, ev.Type, ErrUnknownEventType)
	}

	x := *ev.X/inchesPerFoot - t.halfLength
	y := *ev.Y/inchesPerFoot - t.halfWidth
	dist := math.Hypot(math.Abs(x)-t.rimX, y)

	return model.TransformedShot{
		ID:             ev.ID,
		GameID:         ev.GameID,
		Season:         ev.Season,
		HomeTeam:       ev.HomeTeam,
		ConferenceGame: ev.ConferenceGame,
		Type:           ev.Type,
		Made:           ev.Made,
		X:              x,
		Y:              y,
		Distance:       roundTo(dist, t.precision),
		Suspect:        math.Abs(x) > t.halfLength || math.Abs(y) > t.halfWidth,
	}, nil
}

// TransformAll filters and converts a whole batch. The output length always
// equals the input length minus the dropped rows counted in the report.
func (t *Transformer) TransformAll(events []model.ShotEvent) ([]model.TransformedShot, Report) {
	rep := Report{Input: len(events)}
	out := make([]model.TransformedShot, 0, len(events))
	for _, ev := range events {
		ts, err := t.Transform(ev)
		switch {
		case err == nil:
			if ts.Suspect {
				rep.Suspect++
			}
			out = append(out, ts)
		case isMissingCoordinate(err):
			rep.MissingCoordinate++
		default:
			rep.UnknownType++
		}
	}
	rep.Transformed = len(out)
	return out, rep
}

func roundTo(v float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}
