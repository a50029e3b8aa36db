// Package render draws shot charts as SVG: the court diagram as a
// backdrop, with either a made/missed scatter or a hex-binned heat map
// overlaid, plus a summary caption.
package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/okian/halfcourt/internal/domain/court"
	"github.com/okian/halfcourt/internal/domain/hexbin"
	"github.com/okian/halfcourt/internal/domain/model"
)

// View selects which heat-map aggregate is shaded.
type View int

// Heat-map views.
const (
	CountView View = iota
	ProportionView
)

// Drawing style constants.
const (
	courtStroke   = "fill:none;stroke:black;stroke-width:2"
	dashedSuffix  = ";stroke-dasharray:8,6"
	madeFill      = "fill-opacity:0.4;fill:black"
	missedFill    = "fill-opacity:0.4;fill:red"
	captionStyle  = "fill:gray"
	shotRadiusPx  = 3
	hexVertices   = 6
	canvasPadding = 30 // extra canvas height for the caption row
)

// Renderer maps the court frame onto an SVG canvas.
type Renderer struct {
	ppf    int // pixels per foot
	margin int
	xMin   float64
	xMax   float64
	yMin   float64
	yMax   float64
}

// New creates a renderer for the NCAA court frame.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		ppf:    defaultPixelsPerFoot,
		margin: defaultMargin,
		xMin:   -47,
		xMax:   47,
		yMin:   -25,
		yMax:   25,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ShotChart draws the court with one dot per shot, filled by outcome.
func (r *Renderer) ShotChart(w io.Writer, segments []court.Segment, shots []model.TransformedShot, caption string) {
	canvas := svg.New(w)
	r.start(canvas)
	r.backdrop(canvas, segments)
	for _, s := range shots {
		fill := missedFill
		if s.Made {
			fill = madeFill
		}
		canvas.Circle(r.px(s.X), r.py(s.Y), shotRadiusPx, fill)
	}
	r.finish(canvas, caption)
}

// HeatMap draws the court with one shaded hexagon per non-empty cell.
// cellWidth is the hexagon flat-to-flat width in feet, as reported by the
// grid that produced the cells.
func (r *Renderer) HeatMap(w io.Writer, segments []court.Segment, cells []hexbin.Cell, cellWidth float64, view View, caption string) {
	canvas := svg.New(w)
	r.start(canvas)

	maxCount := 0
	for _, c := range cells {
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}
	for _, c := range cells {
		xs, ys := r.hexagon(c.X, c.Y, cellWidth)
		canvas.Polygon(xs, ys, r.cellStyle(c, maxCount, view))
	}

	r.backdrop(canvas, segments)
	r.finish(canvas, caption)
}

func (r *Renderer) start(canvas *svg.SVG) {
	canvas.Start(r.width(), r.height())
	canvas.Rect(0, 0, r.width(), r.height(), "fill:white")
	canvas.Gstyle("font-family:sans-serif;font-size:16px")
}

func (r *Renderer) finish(canvas *svg.SVG, caption string) {
	if caption != "" {
		canvas.Text(r.margin, r.height()-r.margin/2, caption, captionStyle)
	}
	canvas.Gend()
	canvas.End()
}

// backdrop strokes every court segment as a polyline.
func (r *Renderer) backdrop(canvas *svg.SVG, segments []court.Segment) {
	for _, seg := range segments {
		style := courtStroke
		if seg.Style == court.Dashed {
			style += dashedSuffix
		}
		xs := make([]int, len(seg.Points))
		ys := make([]int, len(seg.Points))
		for i, p := range seg.Points {
			xs[i] = r.px(p.X)
			ys[i] = r.py(p.Y)
		}
		canvas.Polyline(xs, ys, style)
	}
}

// cellStyle shades a hexagon: count view scales opacity against the
// busiest cell, proportion view lerps from red (all missed) to blue
// (all made).
func (r *Renderer) cellStyle(c hexbin.Cell, maxCount int, view View) string {
	if view == ProportionView {
		p := c.Proportion
		red := int(vmap(p, 0, 1, 178, 33))
		green := int(vmap(p, 0, 1, 24, 102))
		blue := int(vmap(p, 0, 1, 43, 172))
		return fmt.Sprintf("fill:rgb(%d,%d,%d);stroke:white;stroke-width:1", red, green, blue)
	}
	opacity := 1.0
	if maxCount > 0 {
		opacity = float64(c.Count) / float64(maxCount)
	}
	return fmt.Sprintf("fill:rgb(70,130,180);fill-opacity:%.2f;stroke:white;stroke-width:1", opacity)
}

// hexagon returns the pixel vertices of a pointy-top hexagon of the given
// flat-to-flat width centered at court coordinates (cx, cy).
func (r *Renderer) hexagon(cx, cy, width float64) ([]int, []int) {
	circum := width / math.Sqrt(3)
	xs := make([]int, hexVertices)
	ys := make([]int, hexVertices)
	for k := 0; k < hexVertices; k++ {
		a := math.Pi/2 + float64(k)*math.Pi/3
		xs[k] = r.px(cx + circum*math.Cos(a))
		ys[k] = r.py(cy + circum*math.Sin(a))
	}
	return xs, ys
}

func (r *Renderer) width() int {
	return r.margin*2 + int(math.Round((r.xMax-r.xMin)*float64(r.ppf)))
}

func (r *Renderer) height() int {
	return r.margin*2 + canvasPadding + int(math.Round((r.yMax-r.yMin)*float64(r.ppf)))
}

// px and py map court feet to canvas pixels; py flips the axis so positive
// court y points up on screen.
func (r *Renderer) px(x float64) int {
	return int(vmap(x, r.xMin, r.xMax, float64(r.margin), float64(r.width()-r.margin)))
}

func (r *Renderer) py(y float64) int {
	top := float64(r.margin)
	bottom := float64(r.height() - r.margin - canvasPadding)
	return int(vmap(y, r.yMin, r.yMax, bottom, top))
}

// vmap maps one range into another.
func vmap(value, low1, high1, low2, high2 float64) float64 {
	return low2 + (high2-low2)*(value-low1)/(high1-low1)
}
