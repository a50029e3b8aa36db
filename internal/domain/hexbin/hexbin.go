// Package hexbin aggregates court-frame shots over a hexagonal tessellation.
//
// Cells are the Voronoi regions of a triangular lattice: rows spaced
// dy = dx*sqrt(3)/2 apart, odd rows offset by half a column. A point is
// assigned to the nearer of its candidate centers on the even and odd row
// lattices, which yields regular pointy-top hexagons of width dx.
package hexbin

import (
	"math"
	"sort"

	"github.com/okian/halfcourt/internal/domain/model"
)

// Default extent constants: the NCAA court frame in feet.
const (
	defaultXMin = -47.0
	defaultXMax = 47.0
	defaultYMin = -25.0
	defaultYMax = 25.0
)

// Cell is one non-empty hexagon with its aggregates. Proportion is only
// meaningful for cells with a positive count, which is every cell emitted.
type Cell struct {
	I          int     `json:"i"` // column index; odd rows are offset half a column
	J          int     `json:"j"` // row index
	X          float64 `json:"x"` // center, court-frame feet
	Y          float64 `json:"y"`
	Count      int     `json:"count"`
	Made       int     `json:"made"`
	Proportion float64 `json:"proportion"` // made / count
}

// Grid bins shots into hexagons at a fixed resolution.
type Grid struct {
	xMin, xMax float64
	yMin, yMax float64
	bins       int
	dx, dy     float64
}

// New creates a grid with bins columns spanning the x extent.
func New(bins int, opts ...Option) (*Grid, error) {
	if bins <= 0 {
		return nil, ErrInvalidBinCount
	}
	g := &Grid{
		xMin: defaultXMin,
		xMax: defaultXMax,
		yMin: defaultYMin,
		yMax: defaultYMax,
		bins: bins,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.dx = (g.xMax - g.xMin) / float64(g.bins)
	g.dy = g.dx * math.Sqrt(3) / 2
	return g, nil
}

// CellWidth returns the hexagon width (flat-to-flat), in feet.
func (g *Grid) CellWidth() float64 {
	return g.dx
}

// Bin assigns every shot to its containing hexagon and returns the
// non-empty cells in deterministic (row, column) order. The per-cell
// counts always sum to len(shots).
func (g *Grid) Bin(shots []model.TransformedShot) []Cell {
	type key struct{ i, j int }
	acc := map[key]*Cell{}

	for _, s := range shots {
		i, j := g.locate(s.X, s.Y)
		k := key{i, j}
		c, ok := acc[k]
		if !ok {
			cx, cy := g.center(i, j)
			c = &Cell{I: i, J: j, X: cx, Y: cy}
			acc[k] = c
		}
		c.Count++
		if s.Made {
			c.Made++
		}
	}

	cells := make([]Cell, 0, len(acc))
	for _, c := range acc {
		c.Proportion = float64(c.Made) / float64(c.Count)
		cells = append(cells, *c)
	}
	sort.Slice(cells, func(a, b int) bool {
		if cells[a].J != cells[b].J {
			return cells[a].J < cells[b].J
		}
		return cells[a].I < cells[b].I
	})
	return cells
}

// locate picks the lattice center nearest to (x, y): the candidate on the
// nearest even row versus the one on the nearest odd row.
func (g *Grid) locate(x, y float64) (int, int) {
	px := (x - g.xMin) / g.dx
	py := (y - g.yMin) / g.dy

	// Even-row candidate: integer column on an even row.
	jEven := 2 * int(math.Round(py/2))
	iEven := int(math.Round(px))

	// Odd-row candidate: half-offset column on an odd row.
	jOdd := 2*int(math.Floor(py/2)) + 1
	iOdd := int(math.Round(px - 0.5))

	dEven := sq(px-float64(iEven))*sq(g.dx) + sq(py-float64(jEven))*sq(g.dy)
	dOdd := sq(px-(float64(iOdd)+0.5))*sq(g.dx) + sq(py-float64(jOdd))*sq(g.dy)
	if dEven <= dOdd {
		return iEven, jEven
	}
	return iOdd, jOdd
}

// center returns the court-frame coordinates of cell (i, j).
func (g *Grid) center(i, j int) (float64, float64) {
	offset := 0.0
	if (j%2+2)%2 == 1 { // odd row, robust to negative j
		offset = 0.5
	}
	return g.xMin + (float64(i)+offset)*g.dx, g.yMin + float64(j)*g.dy
}

func sq(v float64) float64 { return v * v }
