package court_test

import (
	"math"
	"reflect"
	"testing"

	court "github.com/okian/halfcourt/internal/domain/court"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGenerate(t *testing.T) {
	Convey("Given a generator with NCAA defaults", t, func() {
		gen := court.NewGenerator()
		segs := gen.Generate()

		Convey("Then every court element is present", func() {
			counts := map[court.Label]int{}
			for _, s := range segs {
				counts[s.Label]++
			}
			So(counts[court.Boundary], ShouldEqual, 1)
			So(counts[court.CenterLine], ShouldEqual, 1)
			So(counts[court.CenterCircle], ShouldEqual, 1)
			// Mirrored pairs: two free-throw halves per basket.
			So(counts[court.FreeThrowCircle], ShouldEqual, 4)
			So(counts[court.LaneOuter], ShouldEqual, 2)
			So(counts[court.LaneInner], ShouldEqual, 2)
			So(counts[court.RestrictedArc], ShouldEqual, 2)
			So(counts[court.Rim], ShouldEqual, 2)
			So(counts[court.Backboard], ShouldEqual, 2)
			So(counts[court.ThreePointArc], ShouldEqual, 2)
		})

		Convey("Then every point lies inside the playing surface", func() {
			for _, s := range segs {
				for _, p := range s.Points {
					So(p.X, ShouldBeBetweenOrEqual, -47, 47)
					So(p.Y, ShouldBeBetweenOrEqual, -25, 25)
				}
			}
		})

		Convey("Then repeated calls yield identical output", func() {
			So(reflect.DeepEqual(segs, gen.Generate()), ShouldBeTrue)
		})

		Convey("Then closed elements end where they start", func() {
			for _, s := range segs {
				switch s.Label {
				case court.Rim, court.CenterCircle, court.Boundary, court.LaneOuter, court.LaneInner:
					first := s.Points[0]
					last := s.Points[len(s.Points)-1]
					So(last.X, ShouldEqual, first.X)
					So(last.Y, ShouldEqual, first.Y)
				}
			}
		})

		Convey("Then rim points sit on a 0.75ft circle around (41.75, 0)", func() {
			for _, s := range segs {
				if s.Label != court.Rim || s.Points[0].X < 0 {
					continue
				}
				for _, p := range s.Points {
					r := math.Hypot(p.X-41.75, p.Y)
					So(r, ShouldAlmostEqual, 0.75, 1e-9)
				}
			}
		})

		Convey("Then the three-point arc meets the corner runs at y=±20.75", func() {
			for _, s := range segs {
				if s.Label != court.ThreePointArc || s.Points[0].X < 0 {
					continue
				}
				So(s.Points[0].X, ShouldAlmostEqual, 47, 1e-9)
				So(s.Points[0].Y, ShouldAlmostEqual, -20.75, 1e-9)
				last := s.Points[len(s.Points)-1]
				So(last.X, ShouldAlmostEqual, 47, 1e-9)
				So(last.Y, ShouldAlmostEqual, 20.75, 1e-9)
				// Interior points sit on the 20.75ft locus around the rim.
				mid := s.Points[len(s.Points)/2]
				So(math.Hypot(mid.X-41.75, mid.Y), ShouldAlmostEqual, 20.75, 1e-9)
			}
		})

		Convey("Then the dashed free-throw half faces the basket", func() {
			for _, s := range segs {
				if s.Label != court.FreeThrowCircle || s.Style != court.Dashed {
					continue
				}
				for _, p := range s.Points {
					// Dashed half bulges into the lane, away from midcourt.
					So(math.Abs(p.X), ShouldBeGreaterThanOrEqualTo, 28-1e-9)
				}
			}
		})
	})

	Convey("Given a generator with the NBA preset", t, func() {
		gen := court.NewGenerator(court.WithDimensions(court.NBA()))
		segs := gen.Generate()

		Convey("Then the arc is clipped at the 22ft corner runs", func() {
			for _, s := range segs {
				if s.Label != court.ThreePointArc || s.Points[0].X < 0 {
					continue
				}
				So(s.Points[0].Y, ShouldAlmostEqual, -22, 1e-9)
				mid := s.Points[len(s.Points)/2]
				So(math.Hypot(mid.X-41.75, mid.Y), ShouldAlmostEqual, 23.75, 1e-9)
			}
		})
	})

	Convey("Given a coarser arc step", t, func() {
		fine := court.NewGenerator()
		coarse := court.NewGenerator(court.WithArcStep(1.0))

		Convey("Then curved segments carry fewer points but the same locus", func() {
			So(pointCount(coarse.Generate(), court.CenterCircle), ShouldBeLessThan, pointCount(fine.Generate(), court.CenterCircle))
			for _, s := range coarse.Generate() {
				if s.Label != court.CenterCircle {
					continue
				}
				for _, p := range s.Points {
					So(math.Hypot(p.X, p.Y), ShouldAlmostEqual, 6, 1e-9)
				}
			}
		})
	})
}

func pointCount(segs []court.Segment, label court.Label) int {
	n := 0
	for _, s := range segs {
		if s.Label == label {
			n += len(s.Points)
		}
	}
	return n
}
