// Package court generates the fixed set of line and arc segments that make
// up a regulation basketball court diagram. Coordinates are in feet with the
// origin at half-court center: x spans baseline to baseline in [-47, 47] and
// y spans sideline to sideline in [-25, 25]. The output is a pure value;
// callers regenerate on demand and overlay shots or aggregates on top.
package court

import "math"

// Style selects how a segment should be stroked.
type Style string

// Segment stroke styles.
const (
	Solid  Style = "solid"
	Dashed Style = "dashed"
)

// Label identifies which court element a segment draws.
type Label string

// Semantic segment labels.
const (
	Boundary        Label = "boundary"
	CenterLine      Label = "center_line"
	CenterCircle    Label = "center_circle"
	FreeThrowCircle Label = "free_throw_circle"
	LaneOuter       Label = "lane_outer"
	LaneInner       Label = "lane_inner"
	RestrictedArc   Label = "restricted_arc"
	Rim             Label = "rim"
	Backboard       Label = "backboard"
	ThreePointArc   Label = "three_point_arc"
)

// Point is a 2D court-frame coordinate in feet.
type Point struct {
	X float64
	Y float64
}

// Segment is one drawable path: an ordered run of points with a stroke
// style and a semantic label. Closed elements (rim, circles, rectangles)
// repeat their first point at the end.
type Segment struct {
	Label  Label
	Style  Style
	Points []Point
}

// Dimensions names every length the generator needs, in feet, so the
// geometry stays auditable and adjustable across court standards.
type Dimensions struct {
	HalfLength            float64 // center to baseline
	HalfWidth             float64 // center to sideline
	CenterCircleRadius    float64
	FreeThrowLineX        float64 // center to free-throw line
	FreeThrowCircleRadius float64
	LaneOuterHalfWidth    float64 // half width of the outer lane rectangle
	LaneInnerHalfWidth    float64 // half width of the inner lane marks
	RestrictedCenterX     float64 // center of the restricted-area arc
	RestrictedRadius      float64
	RimCenterX            float64
	RimRadius             float64
	BackboardX            float64
	BackboardHalfWidth    float64
	ThreePointRadius      float64
	ThreePointSideY       float64 // |y| where the arc meets the straight corner runs
}

// NCAA returns standard NCAA court dimensions.
func NCAA() Dimensions {
	return Dimensions{
		HalfLength:            47,
		HalfWidth:             25,
		CenterCircleRadius:    6,
		FreeThrowLineX:        28,
		FreeThrowCircleRadius: 6,
		LaneOuterHalfWidth:    8,
		LaneInnerHalfWidth:    6,
		RestrictedCenterX:     41.25,
		RestrictedRadius:      4,
		RimCenterX:            41.75,
		RimRadius:             0.75,
		BackboardX:            43,
		BackboardHalfWidth:    3,
		ThreePointRadius:      20.75,
		ThreePointSideY:       20.75,
	}
}

// NBA returns standard NBA court dimensions. The playing surface matches
// the NCAA one; the three-point line is deeper and clipped at the 22-foot
// corner runs, and the restricted arc is centered on the rim.
func NBA() Dimensions {
	d := NCAA()
	d.RestrictedCenterX = 41.75
	d.ThreePointRadius = 23.75
	d.ThreePointSideY = 22
	return d
}

// Generator produces court segments for a set of dimensions.
type Generator struct {
	dims    Dimensions
	arcStep float64 // approximate arc length between sampled points, feet
}

// NewGenerator creates a generator with NCAA defaults.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		dims:    NCAA(),
		arcStep: defaultArcStep,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Dimensions returns the dimensions the generator draws with.
func (g *Generator) Dimensions() Dimensions {
	return g.dims
}

// Generate returns every segment of the court diagram. The call is
// deterministic and has no error conditions; repeated calls yield equal
// output.
func (g *Generator) Generate() []Segment {
	d := g.dims
	segs := make([]Segment, 0, 24)

	// Elements that exist once, spanning both halves.
	segs = append(segs,
		Segment{Label: Boundary, Style: Solid, Points: closedRect(-d.HalfLength, -d.HalfWidth, d.HalfLength, d.HalfWidth)},
		Segment{Label: CenterLine, Style: Solid, Points: []Point{{0, -d.HalfWidth}, {0, d.HalfWidth}}},
		Segment{Label: CenterCircle, Style: Solid, Points: g.circle(0, 0, d.CenterCircleRadius)},
	)

	// Elements drawn around the positive-x basket, then mirrored.
	for _, half := range g.halfCourt() {
		segs = append(segs, half, mirrored(half))
	}
	return segs
}

// halfCourt builds the positive-x basket elements.
func (g *Generator) halfCourt() []Segment {
	d := g.dims
	return []Segment{
		// Free-throw circle: the half facing midcourt is solid, the half
		// inside the lane is dashed, per NCAA convention.
		{Label: FreeThrowCircle, Style: Solid, Points: g.arc(d.FreeThrowLineX, 0, d.FreeThrowCircleRadius, math.Pi/2, 3*math.Pi/2)},
		{Label: FreeThrowCircle, Style: Dashed, Points: g.arc(d.FreeThrowLineX, 0, d.FreeThrowCircleRadius, -math.Pi/2, math.Pi/2)},
		{Label: LaneOuter, Style: Solid, Points: closedRect(d.FreeThrowLineX, -d.LaneOuterHalfWidth, d.HalfLength, d.LaneOuterHalfWidth)},
		{Label: LaneInner, Style: Solid, Points: closedRect(d.FreeThrowLineX, -d.LaneInnerHalfWidth, d.HalfLength, d.LaneInnerHalfWidth)},
		// Restricted area: semicircle opening toward the baseline.
		{Label: RestrictedArc, Style: Solid, Points: g.arc(d.RestrictedCenterX, 0, d.RestrictedRadius, math.Pi/2, 3*math.Pi/2)},
		{Label: Rim, Style: Solid, Points: g.circle(d.RimCenterX, 0, d.RimRadius)},
		{Label: Backboard, Style: Solid, Points: []Point{{d.BackboardX, -d.BackboardHalfWidth}, {d.BackboardX, d.BackboardHalfWidth}}},
		{Label: ThreePointArc, Style: Solid, Points: g.threePoint()},
	}
}

// threePoint builds the arc plus its straight corner runs to the baseline
// as a single path: baseline, down one corner run, around the arc, up the
// other corner run, back to the baseline.
func (g *Generator) threePoint() []Point {
	d := g.dims
	// Half-angle of the arc as seen from the rim. When the side clip equals
	// the radius (NCAA) this is a full semicircle.
	phi := math.Asin(math.Min(1, d.ThreePointSideY/d.ThreePointRadius))

	pts := make([]Point, 0, 64)
	pts = append(pts, Point{d.HalfLength, -d.ThreePointSideY})
	for _, p := range g.arcAroundRim(-phi, phi) {
		pts = append(pts, p)
	}
	pts = append(pts, Point{d.HalfLength, d.ThreePointSideY})
	return pts
}

// arcAroundRim samples the three-point locus: points at ThreePointRadius
// from the rim center, on the midcourt side, with theta measured from the
// midcourt direction.
func (g *Generator) arcAroundRim(theta0, theta1 float64) []Point {
	d := g.dims
	n := g.steps(d.ThreePointRadius, theta1-theta0)
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := theta0 + (theta1-theta0)*float64(i)/float64(n)
		pts = append(pts, Point{
			X: d.RimCenterX - d.ThreePointRadius*math.Cos(t),
			Y: d.ThreePointRadius * math.Sin(t),
		})
	}
	return pts
}

// arc samples a circular arc around (cx, cy) from angle a0 to a1.
func (g *Generator) arc(cx, cy, r, a0, a1 float64) []Point {
	n := g.steps(r, a1-a0)
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := a0 + (a1-a0)*float64(i)/float64(n)
		pts = append(pts, Point{X: cx + r*math.Cos(t), Y: cy + r*math.Sin(t)})
	}
	return pts
}

// circle samples a full closed circle around (cx, cy).
func (g *Generator) circle(cx, cy, r float64) []Point {
	pts := g.arc(cx, cy, r, 0, 2*math.Pi)
	pts[len(pts)-1] = pts[0] // close exactly
	return pts
}

// steps returns the number of sampling intervals for an arc of radius r
// spanning |angle| radians at the configured step length.
func (g *Generator) steps(r, angle float64) int {
	n := int(math.Ceil(r * math.Abs(angle) / g.arcStep))
	if n < minArcSteps {
		n = minArcSteps
	}
	return n
}

// closedRect returns the rectangle through the two opposite corners as a
// closed path.
func closedRect(x0, y0, x1, y1 float64) []Point {
	return []Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0}}
}

// mirrored reflects a segment across the half-court line.
func mirrored(s Segment) Segment {
	pts := make([]Point, len(s.Points))
	for i, p := range s.Points {
		pts[i] = Point{X: -p.X, Y: p.Y}
	}
	return Segment{Label: s.Label, Style: s.Style, Points: pts}
}
