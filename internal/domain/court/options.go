package court

// Default sampling configuration constants.
const (
	defaultArcStep = 0.05 // feet of arc per sampled point
	minArcSteps    = 8
)

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithDimensions sets the court dimensions to draw.
func WithDimensions(d Dimensions) Option {
	return func(g *Generator) {
		g.dims = d
	}
}

// WithArcStep sets the approximate arc length, in feet, between sampled
// points on curved segments. The locus is the contract; the step only
// controls how smooth a rendered polyline looks.
func WithArcStep(step float64) Option {
	return func(g *Generator) {
		if step > 0 {
			g.arcStep = step
		}
	}
}
