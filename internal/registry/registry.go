package registry

import (
	"reflect"
	"sort"

	"fakeforge/internal/common"
	"fakeforge/selector"
)

// Registry is the type table: per target type, the ordered collection of
// registered selectors. Registration happens during setup; afterwards the
// registry is read-only and safe for concurrent lookups.
type Registry struct {
	entries map[reflect.Type][]selector.Selector
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: map[reflect.Type][]selector.Selector{}}
}

// Register appends selectors under their own target types. Nil selectors
// are ignored.
func (r *Registry) Register(sels ...selector.Selector) {
	for _, s := range sels {
		if s == nil || s.Type() == nil {
			continue
		}

		r.entries[s.Type()] = append(r.entries[s.Type()], s)
	}
}

// Count reports how many selectors are registered for t. Unknown types
// count zero.
func (r *Registry) Count(t reflect.Type) int {
	return len(r.entries[t])
}

// Selectors returns the selectors registered for t, re-ranked by
// descending priority. Registration order is preserved among equal
// priorities, so the first registered wins ties. Unknown types yield
// nil, never an error.
func (r *Registry) Selectors(t reflect.Type) []selector.Selector {
	list := r.entries[t]
	if len(list) == 0 {
		return nil
	}

	ranked := make([]selector.Selector, len(list))
	copy(ranked, list)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority() > ranked[j].Priority()
	})

	return ranked
}

// Base returns the first-registered selector for t.
func (r *Registry) Base(t reflect.Type) (selector.Selector, bool) {
	return common.First(r.entries[t])
}

// Types returns every registered target type, sorted by type label for
// deterministic listings.
func (r *Registry) Types() []reflect.Type {
	types := make([]reflect.Type, 0, len(r.entries))
	for t := range r.entries {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool {
		li, lj := common.TypeLabel(types[i]), common.TypeLabel(types[j])
		if li != lj {
			return li < lj
		}

		return types[i].PkgPath() < types[j].PkgPath()
	})

	return types
}
