// Package gendata produces synthetic play-by-play CSV feeds so the
// pipeline can be exercised without the real dataset. Shots cluster the
// way real charts do: heavy at the rim, a ring at the three-point arc,
// free throws at the line, and a sprinkle of dirty rows to exercise the
// filters.
package gendata

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/okian/halfcourt/internal/domain/shot"
)

// Config controls a generated feed.
type Config struct {
	Rows    int
	Seasons []string
	Teams   []string
	Seed    int64
	// DirtyShare is the fraction of rows with a missing coordinate or a
	// non-shot type, in [0, 1).
	DirtyShare float64
}

// Generator emits synthetic feeds.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a generator; zero-value config fields fall back to defaults.
func New(cfg Config) *Generator {
	if cfg.Rows <= 0 {
		cfg.Rows = defaultRows
	}
	if len(cfg.Seasons) == 0 {
		cfg.Seasons = defaultSeasons()
	}
	if len(cfg.Teams) == 0 {
		cfg.Teams = defaultTeams()
	}
	if cfg.DirtyShare < 0 || cfg.DirtyShare >= 1 {
		cfg.DirtyShare = defaultDirtyShare
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)), //nolint:gosec // deterministic seed for reproducible feeds
	}
}

// WriteCSV writes the header and cfg.Rows generated rows to w.
func (g *Generator) WriteCSV(ctx context.Context, w io.Writer) error {
	cw := csv.NewWriter(w)
	header := []string{"event_id", "game_id", "season", "home_name", "conference_game", "type", "shot_made", "event_coord_x", "event_coord_y"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i < g.cfg.Rows; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cw.Write(g.row()); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (g *Generator) row() []string {
	season := g.cfg.Seasons[g.rng.Intn(len(g.cfg.Seasons))]
	team := g.cfg.Teams[g.rng.Intn(len(g.cfg.Teams))]
	gameID := fmt.Sprintf("g-%04d", g.rng.Intn(gameCount))
	conference := g.rng.Float64() < conferenceShare

	if g.rng.Float64() < g.cfg.DirtyShare {
		return g.dirtyRow(season, team, gameID, conference)
	}

	eventType, made, x, y := g.shotProfile()
	return []string{
		uuid.NewString(), gameID, season, team,
		fmt.Sprintf("%t", conference),
		eventType,
		fmt.Sprintf("%t", made),
		fmt.Sprintf("%.1f", x),
		fmt.Sprintf("%.1f", y),
	}
}

// shotProfile picks a cluster and returns raw inch coordinates around it.
// The raw grid has its origin at a corner; the positive-x rim sits at
// (1065, 300) inches.
func (g *Generator) shotProfile() (string, bool, float64, float64) {
	switch {
	case g.rng.Float64() < rimShare:
		x := rimXInches + g.rng.NormFloat64()*rimSpreadInches
		y := centerYInches + g.rng.NormFloat64()*rimSpreadInches
		made := g.rng.Float64() < rimMadePct
		return pick(made, string(shot.TwoPointMade), string(shot.TwoPointMiss)), made, x, y
	case g.rng.Float64() < threeShare:
		// Around the arc: radius ~20.75ft from the rim, midcourt side.
		angle := (g.rng.Float64() - half) * arcAngleSpread
		r := threeRadiusInches + g.rng.NormFloat64()*arcSpreadInches
		x := rimXInches - r*math.Cos(angle)
		y := centerYInches + r*math.Sin(angle)
		made := g.rng.Float64() < threeMadePct
		return pick(made, string(shot.ThreePointMade), string(shot.ThreePointMiss)), made, x, y
	case g.rng.Float64() < freeThrowShare:
		x := freeThrowXInches + g.rng.NormFloat64()*freeThrowSpreadInches
		y := centerYInches + g.rng.NormFloat64()*freeThrowSpreadInches
		made := g.rng.Float64() < freeThrowMadePct
		return string(shot.FreeThrow), made, x, y
	default:
		// Midrange field goals anywhere in the offensive half.
		x := midrangeXMin + g.rng.Float64()*(midrangeXMax-midrangeXMin)
		y := g.rng.Float64() * courtWidthInches
		made := g.rng.Float64() < midrangeMadePct
		return string(shot.FieldGoal), made, x, y
	}
}

// dirtyRow emits either a coordinate-less row or a non-shot event.
func (g *Generator) dirtyRow(season, team, gameID string, conference bool) []string {
	if g.rng.Intn(2) == 0 {
		return []string{
			uuid.NewString(), gameID, season, team,
			fmt.Sprintf("%t", conference),
			string(shot.FieldGoal), "false", "", "",
		}
	}
	nonShots := []string{"rebound", "turnover", "timeout", "jumpball"}
	return []string{
		uuid.NewString(), gameID, season, team,
		fmt.Sprintf("%t", conference),
		nonShots[g.rng.Intn(len(nonShots))], "false",
		fmt.Sprintf("%.1f", g.rng.Float64()*courtLengthInches),
		fmt.Sprintf("%.1f", g.rng.Float64()*courtWidthInches),
	}
}

func pick(made bool, madeType, missType string) string {
	if made {
		return madeType
	}
	return missType
}
