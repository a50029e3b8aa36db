package shot

// Option applies a configuration option to the Transformer.
type Option func(*Transformer)

// WithFrame sets the half-court frame extents in feet.
func WithFrame(halfLength, halfWidth float64) Option {
	return func(t *Transformer) {
		if halfLength > 0 && halfWidth > 0 {
			t.halfLength = halfLength
			t.halfWidth = halfWidth
		}
	}
}

// WithRimOffset sets the canonical rim x offset from center, in feet.
func WithRimOffset(x float64) Option {
	return func(t *Transformer) {
		if x > 0 {
			t.rimX = x
		}
	}
}

// WithPrecision sets the number of decimals the distance is rounded to.
func WithPrecision(decimals int) Option {
	return func(t *Transformer) {
		if decimals >= 0 {
			t.precision = decimals
		}
	}
}
