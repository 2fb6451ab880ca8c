package dedupe

// Option applies a configuration option to the Deduper.
type Option func(*Deduper)

// WithMaxSize bounds how many keys are remembered. When full the oldest key
// is forgotten first. A size <= 0 means unbounded.
func WithMaxSize(maxSize int) Option {
	return func(d *Deduper) {
		d.maxSize = maxSize
	}
}
