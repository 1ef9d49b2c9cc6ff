// Package filler is the public facade: a Filler owns a selector registry,
// a factory set and a seeded random source, and populates fake objects
// through them.
//
// Key types:
//   - Filler: registration surface + population entry points
//   - Option: construction-time configuration (seed, source, logger, depth)
//
// Key functions:
//   - Generate, GenerateManyOf: generic sugar over the entry points
package filler

import (
	"reflect"

	"go.uber.org/zap"

	"fakeforge/internal/common"
	"fakeforge/internal/engine"
	"fakeforge/internal/registry"
	"fakeforge/randgen"
	"fakeforge/selector"
)

// Filler populates fake objects. Register selectors and factories during
// setup; afterwards a Filler is safe for concurrent Populate and Generate
// calls. Population never fails: fields nothing can serve are left at
// their defaults.
type Filler struct {
	reg        *registry.Registry
	factories  *engine.FactorySet
	src        *randgen.Source
	log        *zap.Logger
	maxDepth   int
	noDefaults bool
	eng        *engine.Engine
}

// New builds a Filler. Unless WithoutDefaults is given, the built-in
// selectors of randgen.Defaults are registered first, so every later user
// registration outranks them.
func New(opts ...Option) *Filler {
	f := &Filler{
		reg:       registry.New(),
		factories: engine.NewFactorySet(),
		maxDepth:  engine.DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.src == nil {
		f.src = randgen.NewSource(0)
	}

	if f.log == nil {
		f.log = zap.NewNop()
	}

	if !f.noDefaults {
		f.reg.Register(randgen.Defaults(f.src)...)
	}

	f.eng = engine.New(f.reg, f.factories, engine.Config{
		MaxDepth: f.maxDepth,
		Source:   f.src,
		Log:      f.log,
	})

	return f
}

// Source exposes the filler's random source, so custom selectors can draw
// from the same seeded stream.
func (f *Filler) Source() *randgen.Source { return f.src }

// Register adds selectors to the registry.
func (f *Filler) Register(sels ...selector.Selector) *Filler {
	f.reg.Register(sels...)
	return f
}

// RegisterNamed registers sel narrowed to fields with the given name. The
// wrapper outranks the selector it wraps, so name-qualified registrations
// win over plain ones for matching fields.
func (f *Filler) RegisterNamed(name string, sel selector.Selector) *Filler {
	if sel != nil {
		f.reg.Register(selector.ByName(name, sel))
	}

	return f
}

// RegisterFactory parses fn as a constructor (func(args) T or
// func(args) (T, error)) and adds it to the factory set. Factories feed
// safe construction when no selector serves a type.
func (f *Filler) RegisterFactory(fn any) error {
	parsed, err := engine.ParseFactory(fn)
	if err != nil {
		return err
	}

	f.factories.Add(parsed)

	return nil
}

// MustRegisterFactory is RegisterFactory for setup paths that treat a
// malformed factory as a programming error.
func (f *Filler) MustRegisterFactory(fn any) *Filler {
	if err := f.RegisterFactory(fn); err != nil {
		panic(err)
	}

	return f
}

// Populate fills target in place and returns it. Target must be a non-nil
// pointer; anything else is returned unchanged.
func (f *Filler) Populate(target any) any {
	if target == nil {
		return nil
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		f.log.Warn("populate target must be a non-nil pointer",
			zap.String("type", common.TypeLabel(reflect.TypeOf(target))))

		return target
	}

	f.eng.Fill(v.Elem())

	return target
}

// PopulateValue populates a copy of target and returns the copy, leaving
// the argument untouched.
func (f *Filler) PopulateValue(target any) any {
	if target == nil {
		return nil
	}

	v := reflect.ValueOf(target)
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	f.eng.Fill(c)

	return c.Interface()
}

// GenerateMany builds count independently populated instances of the
// prototype's type. A pointer prototype yields pointer items.
func (f *Filler) GenerateMany(prototype any, count int) []any {
	if prototype == nil || count <= 0 {
		return nil
	}

	t := reflect.TypeOf(prototype)

	out := make([]any, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, f.generateOne(t))
	}

	return out
}

func (f *Filler) generateOne(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		p := reflect.New(t.Elem())
		f.eng.Fill(p.Elem())

		return p.Interface()
	}

	v := reflect.New(t).Elem()
	f.eng.Fill(v)

	return v.Interface()
}

// Generate builds one populated T.
func Generate[T any](f *Filler) T {
	v := reflect.New(reflect.TypeFor[T]()).Elem()
	f.eng.Fill(v)

	return v.Interface().(T)
}

// GenerateManyOf builds count populated Ts.
func GenerateManyOf[T any](f *Filler, count int) []T {
	if count <= 0 {
		return nil
	}

	out := make([]T, count)
	for i := range out {
		out[i] = Generate[T](f)
	}

	return out
}
