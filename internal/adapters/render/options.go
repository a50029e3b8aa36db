package render

// Default canvas configuration constants.
const (
	defaultPixelsPerFoot = 10
	defaultMargin        = 20
)

// Option applies a configuration option to the Renderer.
type Option func(*Renderer)

// WithPixelsPerFoot sets the canvas scale.
func WithPixelsPerFoot(ppf int) Option {
	return func(r *Renderer) {
		if ppf > 0 {
			r.ppf = ppf
		}
	}
}

// WithMargin sets the canvas margin in pixels.
func WithMargin(px int) Option {
	return func(r *Renderer) {
		if px >= 0 {
			r.margin = px
		}
	}
}

// WithExtent sets the court-frame extent the canvas maps.
func WithExtent(xMin, xMax, yMin, yMax float64) Option {
	return func(r *Renderer) {
		if xMax > xMin && yMax > yMin {
			r.xMin, r.xMax = xMin, xMax
			r.yMin, r.yMax = yMin, yMax
		}
	}
}
