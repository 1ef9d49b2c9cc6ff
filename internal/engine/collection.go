package engine

import (
	"reflect"

	"fakeforge/internal/describe"
)

// buildSlice allocates a slice with a random element count in
// [minElements, maxElements] and fills each slot. Elements of a
// self-referential slice type stay at their zero value, as recursive
// elements do.
func (e *Engine) buildSlice(t reflect.Type, owner reflect.Type, path *describe.Path, depth int) reflect.Value {
	n := e.cfg.Source.IntBetween(minElements, maxElements)

	s := reflect.MakeSlice(t, n, n)
	if t.Elem() == t {
		return s
	}

	for i := 0; i < n; i++ {
		e.populateElement(s.Index(i), owner, path.Elem(), depth)
	}

	return s
}

// fillArray fills an existing array value in place, one slot per index.
func (e *Engine) fillArray(v reflect.Value, owner reflect.Type, path *describe.Path, depth int) {
	for i := 0; i < v.Len(); i++ {
		e.populateElement(v.Index(i), owner, path.Elem(), depth)
	}
}

// buildMap builds a map with a random entry count in
// [minElements, maxElements]. Keys must be producible up front; otherwise
// the map is not built and the field stays nil. Randomly drawn keys may
// collide, so the final length can land under the drawn count. Values of
// a self-referential map type stay at their zero value.
func (e *Engine) buildMap(t reflect.Type, owner reflect.Type, path *describe.Path, depth int) (reflect.Value, bool) {
	if !e.canProduce(t.Key()) {
		return reflect.Value{}, false
	}

	n := e.cfg.Source.IntBetween(minElements, maxElements)
	selfElem := t.Elem() == t

	m := reflect.MakeMapWithSize(t, n)
	for i := 0; i < n; i++ {
		k := reflect.New(t.Key()).Elem()
		v := reflect.New(t.Elem()).Elem()
		e.populateElement(k, owner, path.Entry(), depth)
		if !selfElem {
			e.populateElement(v, owner, path.Entry(), depth)
		}
		m.SetMapIndex(k, v)
	}

	return m, true
}

// populateElement fills one collection slot. Element types that echo the
// owning struct are constructed but left unpopulated, so recursive element
// trees bottom out one level down. Nested collections consume the depth
// budget, so collection cycles bottom out the way struct cycles do.
func (e *Engine) populateElement(slot reflect.Value, owner reflect.Type, path *describe.Path, depth int) {
	t := slot.Type()

	if owner != nil && isSelfRef(t, owner) {
		slot.Set(e.Construct(t, depth))
		return
	}

	if sel, ok := e.matchType(t); ok {
		sel.Bind(slot)
		return
	}

	switch describe.KindOf(t) {
	case describe.KindStruct:
		if e.depthExceeded(depth, path) {
			return
		}

		built := e.Construct(t, depth)
		e.populateStruct(built, path, depth+1)
		slot.Set(built)

	case describe.KindPointer:
		e.populatePointer(slot, path, depth)

	case describe.KindSlice:
		if e.depthExceeded(depth, path) {
			return
		}

		slot.Set(e.buildSlice(t, owner, path, depth+1))

	case describe.KindArray:
		if e.depthExceeded(depth, path) {
			return
		}

		e.fillArray(slot, owner, path, depth+1)

	case describe.KindMap:
		if e.depthExceeded(depth, path) {
			return
		}

		if m, ok := e.buildMap(t, owner, path, depth+1); ok {
			slot.Set(m)
		}

	case describe.KindScalar:
		if canon := describe.CanonicalScalar(t); canon != nil {
			if sel, ok := e.matchType(canon); ok {
				sel.Bind(slot)
			}
		}
	}
}

// canProduce reports whether values of t can be generated at all: a
// selector serves it, its canonical scalar has one, or it is a struct the
// constructor can build.
func (e *Engine) canProduce(t reflect.Type) bool {
	if _, ok := e.matchType(t); ok {
		return true
	}

	if canon := describe.CanonicalScalar(t); canon != nil {
		if _, ok := e.matchType(canon); ok {
			return true
		}
	}

	return describe.KindOf(t) == describe.KindStruct
}
