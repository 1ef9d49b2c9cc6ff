package describe

import (
	"reflect"
	"sync"

	"fakeforge/internal/common"
)

// skipTag marks struct fields the populator must leave untouched,
// e.g. `fake:"-"`.
const skipTag = "fake"

// Field describes one writable struct field.
type Field struct {
	Name  string
	Type  reflect.Type
	Index int
	Skip  bool
}

// Descriptor is the populate-time view of a struct type: its writable
// fields in declaration order. Computed once per type, then cached;
// immutable afterwards and safe for concurrent reads.
type Descriptor struct {
	Type   reflect.Type
	Label  string
	Fields []Field
}

var descriptors sync.Map // reflect.Type -> *Descriptor

// Of returns the descriptor for t, computing and caching it on first use.
// Non-struct types yield a descriptor with no fields.
func Of(t reflect.Type) *Descriptor {
	if d, ok := descriptors.Load(t); ok {
		return d.(*Descriptor)
	}

	d, _ := descriptors.LoadOrStore(t, describeType(t))

	return d.(*Descriptor)
}

func describeType(t reflect.Type) *Descriptor {
	d := &Descriptor{Type: t, Label: common.TypeLabel(t)}
	if t == nil || t.Kind() != reflect.Struct {
		return d
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" { // unexported: not writable
			continue
		}

		tag := sf.Tag.Get(skipTag)
		d.Fields = append(d.Fields, Field{
			Name:  sf.Name,
			Type:  sf.Type,
			Index: i,
			Skip:  tag == "-" || tag == "skip",
		})
	}

	return d
}
