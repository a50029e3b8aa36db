// Package ingest reads raw play-by-play shot rows from CSV feeds.
//
// The reader is tolerant of dirty data: blank or unparseable coordinates
// surface as nil pointers for the transform layer to drop, and boolean-ish
// columns accept the usual spellings. Only a missing required column is a
// hard error.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/halfcourt/internal/domain/model"
)

// Required feed columns.
const (
	colX          = "event_coord_x"
	colY          = "event_coord_y"
	colType       = "type"
	colMade       = "shot_made"
	colSeason     = "season"
	colConference = "conference_game"
	colHomeTeam   = "home_name"
)

// Optional feed columns.
const (
	colEventID = "event_id"
	colGameID  = "game_id"
)

// ReadFile reads every row of the CSV file at path.
func ReadFile(path string) ([]model.ShotEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feed: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses CSV rows from r into raw shot events. Rows whose column
// count differs from the header are skipped, not fatal.
func Read(r io.Reader) ([]model.ShotEvent, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyFeed
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var events []model.ShotEvent
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		if len(rec) != len(header) {
			continue
		}
		events = append(events, rowToEvent(rec, cols))
	}
	return events, nil
}

// columns maps required and optional column names to record indices;
// -1 marks an absent optional column.
type columns map[string]int

func indexColumns(header []string) (columns, error) {
	idx := columns{}
	for _, name := range []string{colX, colY, colType, colMade, colSeason, colConference, colHomeTeam, colEventID, colGameID} {
		idx[name] = -1
	}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, ok := idx[name]; ok {
			idx[name] = i
		}
	}
	for _, name := range []string{colX, colY, colType, colMade, colSeason, colConference, colHomeTeam} {
		if idx[name] < 0 {
			return nil, fmt.Errorf("column %q: %w", name, ErrMissingColumn)
		}
	}
	return idx, nil
}

func rowToEvent(rec []string, cols columns) model.ShotEvent {
	ev := model.ShotEvent{
		Season:         field(rec, cols[colSeason]),
		HomeTeam:       field(rec, cols[colHomeTeam]),
		ConferenceGame: parseBool(field(rec, cols[colConference])),
		Type:           strings.ToLower(field(rec, cols[colType])),
		Made:           parseBool(field(rec, cols[colMade])),
		X:              parseCoord(field(rec, cols[colX])),
		Y:              parseCoord(field(rec, cols[colY])),
		GameID:         field(rec, cols[colGameID]),
	}
	ev.ID = field(rec, cols[colEventID])
	if ev.ID == "" {
		// The public feed carries no per-event id; mint one so dedupe and
		// error reporting have something to hold on to.
		ev.ID = uuid.NewString()
	}
	return ev
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// parseCoord returns nil for blank or malformed values so the transform
// excludes the row instead of computing from a sentinel.
func parseCoord(s string) *float64 {
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "null") {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseBool(s string) bool {
	v, err := strconv.ParseBool(strings.ToLower(s))
	if err != nil {
		return false
	}
	return v
}
