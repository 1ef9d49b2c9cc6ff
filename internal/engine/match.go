package engine

import (
	"reflect"

	"fakeforge/selector"
)

// matchField returns the winning selector for a field of type t named name.
// Candidates arrive ranked from the registry, so the first one whose field
// contract accepts wins.
func (e *Engine) matchField(t reflect.Type, name string) (selector.Selector, bool) {
	for _, sel := range e.reg.Selectors(t) {
		if sel.CanBindField(t, name) {
			return sel, true
		}
	}

	return nil, false
}

// matchType is the unnamed variant of matchField, used for whole-object
// replacement, collection elements and safe construction.
func (e *Engine) matchType(t reflect.Type) (selector.Selector, bool) {
	for _, sel := range e.reg.Selectors(t) {
		if sel.CanBind(t) {
			return sel, true
		}
	}

	return nil, false
}
