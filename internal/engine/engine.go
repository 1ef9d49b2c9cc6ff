package engine

import (
	"go.uber.org/zap"

	"fakeforge/internal/registry"
	"fakeforge/randgen"
)

// Collection construction draws a random element count from this range,
// bounds inclusive.
const (
	minElements = 1
	maxElements = 10
)

// DefaultMaxDepth bounds how deep population follows nested objects before
// degrading to zero values. Mutually recursive types (A holds B, B holds A)
// pass the direct self-reference guard, so the depth budget is what
// terminates their population.
const DefaultMaxDepth = 8

// Config carries the knobs of a population run.
type Config struct {
	// MaxDepth is the nesting budget; non-positive means DefaultMaxDepth.
	MaxDepth int
	// Source supplies randomness for element counts and constructed leaves.
	Source *randgen.Source
	// Log receives population traces at debug level.
	Log *zap.Logger
}

// DefaultConfig returns the standard configuration: default depth budget,
// a wall-clock seeded source and no logging.
func DefaultConfig() Config {
	return Config{
		MaxDepth: DefaultMaxDepth,
		Source:   randgen.NewSource(0),
		Log:      zap.NewNop(),
	}
}

// Engine walks target values and fills them from the ranked selectors of a
// registry, falling back to safe construction where no selector serves.
// Population never fails: what cannot be produced stays at its zero value.
type Engine struct {
	reg       *registry.Registry
	factories *FactorySet
	cfg       Config
}

// New builds an engine over the given registry and factory set. Nil
// arguments and zero config fields are replaced with working defaults.
func New(reg *registry.Registry, factories *FactorySet, cfg Config) *Engine {
	if reg == nil {
		reg = registry.New()
	}

	if factories == nil {
		factories = NewFactorySet()
	}

	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}

	if cfg.Source == nil {
		cfg.Source = randgen.NewSource(0)
	}

	if cfg.Log == nil {
		cfg.Log = zap.NewNop()
	}

	return &Engine{reg: reg, factories: factories, cfg: cfg}
}
