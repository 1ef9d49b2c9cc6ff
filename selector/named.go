package selector

import "reflect"

// Named narrows another selector to fields with an exact, case-sensitive
// name, deferring all production to the wrapped selector. It outranks
// the selector it wraps by one priority step. The wrapped selector must
// be non-nil.
type Named struct {
	name  string
	inner Selector
}

// ByName wraps inner so it only matches fields named name.
func ByName(name string, inner Selector) *Named {
	return &Named{name: name, inner: inner}
}

// Name returns the field name this selector is bound to.
func (n *Named) Name() string { return n.name }

func (n *Named) Type() reflect.Type { return n.inner.Type() }

func (n *Named) Priority() int { return n.inner.Priority() + 1 }

// CanBind keeps the wrapped selector's type test: with no field name in
// play (whole-object replacement, collection elements) the name
// constraint does not apply.
func (n *Named) CanBind(t reflect.Type) bool { return n.inner.CanBind(t) }

func (n *Named) CanBindField(t reflect.Type, name string) bool {
	return name == n.name && n.inner.CanBind(t)
}

func (n *Named) Generate() any { return n.inner.Generate() }

func (n *Named) Bind(dst reflect.Value) { n.inner.Bind(dst) }
