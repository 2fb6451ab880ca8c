package repository

// Option applies a configuration option to the TreapStore.
type Option func(*TreapStore)

// WithMetrics toggles publishing board size and top score gauges.
func WithMetrics(enabled bool) Option {
	return func(s *TreapStore) {
		s.metricsEnabled = enabled
	}
}

// WithSeed fixes the treap priority seed. Ordering never depends on it.
func WithSeed(seed uint64) Option {
	return func(s *TreapStore) {
		s.seed = seed
	}
}
