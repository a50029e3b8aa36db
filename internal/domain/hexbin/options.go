package hexbin

// Option applies a configuration option to the Grid.
type Option func(*Grid)

// WithExtent sets the x/y extent the bin columns span. Shots outside the
// extent are still binned; the extent only anchors the lattice.
func WithExtent(xMin, xMax, yMin, yMax float64) Option {
	return func(g *Grid) {
		if xMax > xMin && yMax > yMin {
			g.xMin, g.xMax = xMin, xMax
			g.yMin, g.yMax = yMin, yMax
		}
	}
}
