package engine

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fakeforge/internal/common"
	"fakeforge/internal/describe"
)

var (
	ErrFactoryIsNil          = errors.New("provided factory is nil")
	ErrFactoryIsNotAFunction = errors.New("provided factory is not a function")
	ErrFactoryIsVariadic     = errors.New("variadic factories are not supported")
	ErrFactoryBadShape       = errors.New("factory must return a value, or a value and an error")
)

var (
	errType    = reflect.TypeOf((*error)(nil)).Elem()
	stringType = reflect.TypeOf("")
	uuidType   = reflect.TypeOf(uuid.UUID{})
)

// Factory is a constructor discovered through reflection: it builds one
// output type from zero or more parameters.
type Factory struct {
	fn     reflect.Value
	out    reflect.Type
	in     []reflect.Type
	hasErr bool
}

// Out is the type this factory builds.
func (f *Factory) Out() reflect.Type { return f.out }

// NumIn is the number of parameters the factory takes.
func (f *Factory) NumIn() int { return len(f.in) }

// ParseFactory inspects the provided function and returns a Factory if it
// is a usable constructor.
//
// Supports interfaces:
//   - func(args) (out Type)
//   - func(args) (out Type, error)
//
// with any fixed parameter list; variadic functions are rejected.
func ParseFactory(fn any) (*Factory, error) {
	if fn == nil {
		return nil, ErrFactoryIsNil
	}

	fnVal := reflect.ValueOf(fn)
	fnType := fnVal.Type()
	if fnType.Kind() != reflect.Func {
		return nil, errors.Wrapf(ErrFactoryIsNotAFunction, "got %s", common.TypeLabel(fnType))
	}

	if fnType.IsVariadic() {
		return nil, ErrFactoryIsVariadic
	}

	switch fnType.NumOut() {
	default:
		return nil, ErrFactoryBadShape

	case 1:
		if fnType.Out(0) == errType {
			return nil, ErrFactoryBadShape
		}

	case 2:
		if fnType.Out(0) == errType || fnType.Out(1) != errType {
			return nil, ErrFactoryBadShape
		}
	}

	in := make([]reflect.Type, fnType.NumIn())
	for i := range in {
		in[i] = fnType.In(i)
	}

	return &Factory{
		fn:     fnVal,
		out:    fnType.Out(0),
		in:     in,
		hasErr: fnType.NumOut() == 2,
	}, nil
}

// FactorySet indexes factories by the type they build. Lookup prefers the
// factory with the fewest parameters; ties keep registration order.
type FactorySet struct {
	byType map[reflect.Type][]*Factory
}

// NewFactorySet returns an empty factory set.
func NewFactorySet() *FactorySet {
	return &FactorySet{byType: map[reflect.Type][]*Factory{}}
}

// Add registers a parsed factory. Nil factories are ignored.
func (fs *FactorySet) Add(f *Factory) {
	if f == nil {
		return
	}

	fs.byType[f.out] = append(fs.byType[f.out], f)
}

// Lookup returns the preferred factory for t.
func (fs *FactorySet) Lookup(t reflect.Type) (*Factory, bool) {
	var best *Factory
	for _, f := range fs.byType[t] {
		if best == nil || f.NumIn() < best.NumIn() {
			best = f
		}
	}

	return best, best != nil
}

// Construct builds a best-effort instance of t and never fails. The ladder:
// a registered selector, the designated empty defaults for strings and
// UUIDs, collection construction, a registered factory, and finally the
// zero value.
func (e *Engine) Construct(t reflect.Type, depth int) reflect.Value {
	v := reflect.New(t).Elem()
	if sel, ok := e.matchType(t); ok {
		sel.Bind(v)
		return v
	}

	switch t {
	case stringType, uuidType:
		// "" and uuid.Nil are the designated empty values.
		return v
	}

	path := describe.NewPath(describe.Of(t).Label)

	switch describe.KindOf(t) {
	case describe.KindSlice:
		v.Set(e.buildSlice(t, nil, path, depth))
		return v

	case describe.KindArray:
		e.fillArray(v, nil, path, depth)
		return v

	case describe.KindMap:
		if m, ok := e.buildMap(t, nil, path, depth); ok {
			v.Set(m)
		}
		return v

	case describe.KindPointer:
		p := reflect.New(t.Elem())
		if sel, ok := e.matchType(t.Elem()); ok {
			sel.Bind(p.Elem())
		}
		v.Set(p)
		return v
	}

	if f, ok := e.factories.Lookup(t); ok {
		built, err := e.callFactory(f, depth)
		if err == nil {
			v.Set(built)
			return v
		}

		e.cfg.Log.Debug("factory degraded to zero value",
			zap.String("type", common.TypeLabel(t)),
			zap.Error(err))
	}

	return v
}

// callFactory invokes f with synthesized arguments, trapping panics so a
// misbehaving constructor degrades to the zero value.
func (e *Engine) callFactory(f *Factory, depth int) (out reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = reflect.Value{}
			err = errors.Newf("factory for %s panicked: %v", common.TypeLabel(f.out), r)
		}
	}()

	args := make([]reflect.Value, len(f.in))
	for i, pt := range f.in {
		args[i] = e.synthesizeArg(pt, depth)
	}

	res := f.fn.Call(args)
	if f.hasErr && !res[1].IsNil() {
		return reflect.Value{}, errors.Wrapf(res[1].Interface().(error),
			"factory for %s failed", common.TypeLabel(f.out))
	}

	out = reflect.New(f.out).Elem()
	out.Set(res[0])

	return out, nil
}

// synthesizeArg produces a constructor argument recursively: constructed
// first, then populated when it is an object, with the depth budget keeping
// constructor chains finite.
func (e *Engine) synthesizeArg(t reflect.Type, depth int) reflect.Value {
	if depth >= e.cfg.MaxDepth {
		return reflect.New(t).Elem()
	}

	arg := e.Construct(t, depth+1)
	path := describe.NewPath(describe.Of(t).Label)

	switch {
	case arg.Kind() == reflect.Struct:
		e.populateStruct(arg, path, depth+1)
	case arg.Kind() == reflect.Pointer && !arg.IsNil() && arg.Elem().Kind() == reflect.Struct:
		e.populateStruct(arg.Elem(), path, depth+1)
	}

	return arg
}
