package engine

import (
	"reflect"

	"go.uber.org/zap"

	"fakeforge/internal/common"
	"fakeforge/internal/describe"
)

// PopulateStruct fills every writable field of v, which must be an
// addressable struct value. Fields nothing can serve stay at their zero
// value; population itself never fails.
func (e *Engine) PopulateStruct(v reflect.Value) {
	if !v.IsValid() || v.Kind() != reflect.Struct {
		return
	}

	e.populateStruct(v, describe.NewPath(describe.Of(v.Type()).Label), 0)
}

// Fill populates v in place. Structs get the full field walk; anything else
// is served by a type selector or the miss classifier.
func (e *Engine) Fill(v reflect.Value) {
	if !v.IsValid() || !v.CanSet() {
		return
	}

	if v.Kind() == reflect.Struct {
		e.populateStruct(v, describe.NewPath(describe.Of(v.Type()).Label), 0)
		return
	}

	if sel, ok := e.matchType(v.Type()); ok {
		sel.Bind(v)
		return
	}

	e.populateMiss(v, nil, "", describe.NewPath(describe.Of(v.Type()).Label), 0)
}

func (e *Engine) populateStruct(v reflect.Value, path *describe.Path, depth int) {
	t := v.Type()

	// Whole-object replacement: a selector bound to the struct type itself
	// replaces the object and ends the walk.
	if sel, ok := e.matchType(t); ok && v.CanSet() {
		sel.Bind(v)
		e.cfg.Log.Debug("replaced whole object",
			zap.String("path", path.String()),
			zap.String("type", common.TypeLabel(t)))

		return
	}

	for _, f := range describe.Of(t).Fields {
		if f.Skip {
			continue
		}

		fv := v.Field(f.Index)
		if !fv.CanSet() {
			continue
		}

		if isSelfRef(f.Type, t) {
			e.cfg.Log.Debug("skipped self reference", zap.String("path", path.Field(f.Name).String()))
			continue
		}

		e.populateField(fv, t, f, path.Field(f.Name), depth)
	}
}

func (e *Engine) populateField(fv reflect.Value, owner reflect.Type, f describe.Field, path *describe.Path, depth int) {
	if sel, ok := e.matchField(f.Type, f.Name); ok {
		sel.Bind(fv)
		return
	}

	e.populateMiss(fv, owner, f.Name, path, depth)
}

// populateMiss classifies a value no selector served and produces it
// structurally: nested objects are constructed and recursively populated,
// collections are built element by element, named scalars fall back to the
// selector of their canonical kind type.
func (e *Engine) populateMiss(fv reflect.Value, owner reflect.Type, name string, path *describe.Path, depth int) {
	t := fv.Type()

	switch describe.KindOf(t) {
	case describe.KindStruct:
		if e.depthExceeded(depth, path) {
			return
		}

		built := e.Construct(t, depth)
		e.populateStruct(built, path, depth+1)
		fv.Set(built)

	case describe.KindPointer:
		e.populatePointer(fv, path, depth)

	case describe.KindSlice:
		fv.Set(e.buildSlice(t, owner, path, depth))

	case describe.KindArray:
		e.fillArray(fv, owner, path, depth)

	case describe.KindMap:
		if m, ok := e.buildMap(t, owner, path, depth); ok {
			fv.Set(m)
		}

	case describe.KindScalar:
		if canon := describe.CanonicalScalar(t); canon != nil {
			if sel, ok := e.matchField(canon, name); ok {
				sel.Bind(fv)
			}
		}

	default:
		// Interfaces, channels and functions stay at their zero value.
	}
}

// populatePointer allocates the pointee when it can be produced and leaves
// the pointer nil otherwise.
func (e *Engine) populatePointer(fv reflect.Value, path *describe.Path, depth int) {
	elem := fv.Type().Elem()

	if describe.KindOf(elem) == describe.KindStruct {
		if e.depthExceeded(depth, path) {
			return
		}

		p := reflect.New(elem)
		e.populateStruct(p.Elem(), path, depth+1)
		fv.Set(p)

		return
	}

	if sel, ok := e.matchType(elem); ok {
		p := reflect.New(elem)
		sel.Bind(p.Elem())
		fv.Set(p)
	}
}

func (e *Engine) depthExceeded(depth int, path *describe.Path) bool {
	if depth < e.cfg.MaxDepth {
		return false
	}

	e.cfg.Log.Debug("depth budget exhausted",
		zap.String("path", path.String()),
		zap.Int("depth", depth))

	return true
}

// isSelfRef reports whether a field type refers back to the struct being
// populated, directly or through a pointer.
func isSelfRef(t, owner reflect.Type) bool {
	return t == owner || (t.Kind() == reflect.Pointer && t.Elem() == owner)
}
