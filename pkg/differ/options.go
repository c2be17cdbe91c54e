package differ

// Option is a functional option for configuring Differ
type Option func(*differ)

// WithExcludedKeys adds key names to skip during comparison. Exclusion is
// matched against the bare final path segment at any nesting depth.
func WithExcludedKeys(keys ...string) Option {
	return func(d *differ) {
		for _, key := range keys {
			d.excluded[key] = true
		}
	}
}

// WithEqual enables reporting of keys whose values are equal on both sides
func WithEqual(enabled bool) Option {
	return func(d *differ) {
		d.includeEqual = enabled
	}
}

// WithMaxDepth overrides the maximum recursion depth
func WithMaxDepth(depth int) Option {
	return func(d *differ) {
		if depth > 0 {
			d.maxDepth = depth
		}
	}
}
