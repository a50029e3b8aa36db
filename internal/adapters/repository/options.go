package repository

// Default decimals for reported made ratios.
const defaultRatioPrecision = 3

// Option applies a configuration option to the memory store.
type Option func(*memStore)

// WithRatioPrecision sets the number of decimals made ratios are rounded
// to when read back.
func WithRatioPrecision(decimals int) Option {
	return func(s *memStore) {
		if decimals >= 0 {
			s.ratioPrecision = decimals
		}
	}
}
