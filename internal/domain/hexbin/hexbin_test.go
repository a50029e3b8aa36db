package hexbin_test

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	hexbin "github.com/okian/halfcourt/internal/domain/hexbin"
	"github.com/okian/halfcourt/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given a bin count", t, func() {
		Convey("When it is positive the grid is created", func() {
			g, err := hexbin.New(30)
			So(err, ShouldBeNil)
			So(g.CellWidth(), ShouldAlmostEqual, 94.0/30.0, 1e-9)
		})

		Convey("When it is zero or negative construction fails", func() {
			_, err := hexbin.New(0)
			So(err, ShouldWrap, hexbin.ErrInvalidBinCount)
			_, err = hexbin.New(-3)
			So(err, ShouldWrap, hexbin.ErrInvalidBinCount)
		})
	})
}

func TestBin(t *testing.T) {
	Convey("Given a grid and a spread of shots", t, func() {
		g, err := hexbin.New(30)
		So(err, ShouldBeNil)

		rng := rand.New(rand.NewSource(7))
		shots := make([]model.TransformedShot, 0, 500)
		for i := 0; i < 500; i++ {
			shots = append(shots, model.TransformedShot{
				X:    -47 + 94*rng.Float64(),
				Y:    -25 + 50*rng.Float64(),
				Made: rng.Intn(2) == 0,
			})
		}

		Convey("When binning", func() {
			cells := g.Bin(shots)

			Convey("Then per-cell counts sum to the number of shots", func() {
				total := 0
				for _, c := range cells {
					total += c.Count
				}
				So(total, ShouldEqual, len(shots))
			})

			Convey("Then every proportion is within [0, 1]", func() {
				for _, c := range cells {
					So(c.Proportion, ShouldBeBetweenOrEqual, 0, 1)
					So(c.Made, ShouldBeLessThanOrEqualTo, c.Count)
				}
			})

			Convey("Then no empty cell is materialized", func() {
				for _, c := range cells {
					So(c.Count, ShouldBeGreaterThan, 0)
				}
			})

			Convey("Then every shot sits inside its assigned hexagon", func() {
				// A hexagon of width dx has circumradius dx/sqrt(3); binning
				// one shot at a time exposes its assigned cell center.
				for _, s := range shots[:50] {
					one := g.Bin([]model.TransformedShot{s})
					So(len(one), ShouldEqual, 1)
					r := math.Hypot(s.X-one[0].X, s.Y-one[0].Y)
					So(r, ShouldBeLessThanOrEqualTo, g.CellWidth()/math.Sqrt(3)+1e-9)
				}
			})

			Convey("Then binning is deterministic", func() {
				So(reflect.DeepEqual(cells, g.Bin(shots)), ShouldBeTrue)
			})
		})

		Convey("When all shots in a cell are made", func() {
			made := []model.TransformedShot{
				{X: 0.1, Y: 0.1, Made: true},
				{X: 0.2, Y: -0.1, Made: true},
			}
			cells := g.Bin(made)

			Convey("Then its proportion is exactly one", func() {
				So(len(cells), ShouldEqual, 1)
				So(cells[0].Count, ShouldEqual, 2)
				So(cells[0].Proportion, ShouldEqual, 1)
			})
		})

		Convey("When there are no shots", func() {
			Convey("Then no cells come back", func() {
				So(g.Bin(nil), ShouldBeEmpty)
			})
		})
	})

	Convey("Given a custom extent", t, func() {
		g, err := hexbin.New(10, hexbin.WithExtent(0, 10, 0, 10))
		So(err, ShouldBeNil)

		Convey("Then cell width follows the extent", func() {
			So(g.CellWidth(), ShouldAlmostEqual, 1.0, 1e-9)
		})
	})
}
