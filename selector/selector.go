// Package selector defines the value-selector contract and its two
// concrete variants: plain type-bound selectors and name-qualified
// wrappers that narrow a selector to a single field name.
package selector

import "reflect"

// Priority bands. Higher priorities win; registration order breaks ties
// among equal priorities (first registered wins).
const (
	// PriorityDefault is used by the built-in leaf selectors.
	PriorityDefault = 0
	// PriorityUser is the default for selectors built via For, so user
	// registrations outrank the built-ins without explicit priorities.
	PriorityUser = 10
)

// Selector produces values for one target type. A selector reports what
// it can bind to, produces values, and writes them through settable
// reflect values. Selectors are stateless with respect to a single
// generation call and live as long as the registry holding them.
type Selector interface {
	// Type is the target type this selector produces.
	Type() reflect.Type
	// Priority ranks this selector against others for the same type.
	Priority() int
	// CanBind reports whether produced values can be stored into t.
	CanBind(t reflect.Type) bool
	// CanBindField is the name-qualified variant of CanBind. Plain
	// selectors ignore the name.
	CanBindField(t reflect.Type, name string) bool
	// Generate produces a value with no external binding.
	Generate() any
	// Bind produces a value and writes it through dst, which must be
	// settable. A produced nil clears dst to its zero value.
	Bind(dst reflect.Value)
}

// Base is a plain selector: one target type, a priority, and a
// production function.
type Base struct {
	typ      reflect.Type
	priority int
	produce  func() any
}

// New builds a selector for the given target type. A nil produce
// function yields zero values.
func New(target reflect.Type, priority int, produce func() any) *Base {
	if produce == nil {
		produce = func() any { return nil }
	}

	return &Base{typ: target, priority: priority, produce: produce}
}

// For builds a selector for T at PriorityUser.
func For[T any](produce func() T) *Base {
	return ForPriority(PriorityUser, produce)
}

// ForPriority builds a selector for T with an explicit priority.
func ForPriority[T any](priority int, produce func() T) *Base {
	target := reflect.TypeFor[T]()
	if produce == nil {
		return New(target, priority, nil)
	}

	return New(target, priority, func() any { return produce() })
}

func (b *Base) Type() reflect.Type { return b.typ }

func (b *Base) Priority() int { return b.priority }

func (b *Base) CanBind(t reflect.Type) bool { return canStore(b.typ, t) }

// CanBindField ignores the field name: a plain selector applies to any
// field of a bindable type.
func (b *Base) CanBindField(t reflect.Type, _ string) bool { return b.CanBind(t) }

func (b *Base) Generate() any { return b.produce() }

func (b *Base) Bind(dst reflect.Value) { bindInto(dst, b.produce()) }

// canStore reports whether a value of type src can be stored into a
// destination of type dst: identical, assignable, or convertible within
// the same kind (so named scalar types accept their underlying kind).
func canStore(src, dst reflect.Type) bool {
	if src == nil || dst == nil {
		return false
	}
	if src == dst || src.AssignableTo(dst) {
		return true
	}

	return src.Kind() == dst.Kind() && src.ConvertibleTo(dst)
}

// bindInto writes v through dst, converting when the declared types
// differ. A nil v clears dst; an incompatible v leaves dst untouched.
func bindInto(dst reflect.Value, v any) {
	if v == nil {
		dst.SetZero()
		return
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.Type() == dst.Type():
	case rv.Type().AssignableTo(dst.Type()):
	case rv.Type().ConvertibleTo(dst.Type()):
		rv = rv.Convert(dst.Type())
	default:
		return
	}

	dst.Set(rv)
}
