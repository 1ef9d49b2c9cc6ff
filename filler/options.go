package filler

import (
	"go.uber.org/zap"

	"fakeforge/randgen"
)

// Option configures a Filler at construction time.
type Option func(*Filler)

// WithSeed seeds the random source, making the whole run reproducible.
// Seed zero keeps the wall-clock default.
func WithSeed(seed uint64) Option {
	return func(f *Filler) {
		f.src = randgen.NewSource(seed)
	}
}

// WithSource supplies an existing random source, e.g. one shared with
// custom selectors.
func WithSource(src *randgen.Source) Option {
	return func(f *Filler) {
		f.src = src
	}
}

// WithLogger routes population traces to log. Traces are emitted at debug
// level; the default is no logging.
func WithLogger(log *zap.Logger) Option {
	return func(f *Filler) {
		f.log = log
	}
}

// WithMaxDepth overrides the nesting budget for recursive object graphs.
// Non-positive values keep the default.
func WithMaxDepth(depth int) Option {
	return func(f *Filler) {
		if depth > 0 {
			f.maxDepth = depth
		}
	}
}

// WithoutDefaults starts from an empty registry instead of the built-in
// selector set.
func WithoutDefaults() Option {
	return func(f *Filler) {
		f.noDefaults = true
	}
}
