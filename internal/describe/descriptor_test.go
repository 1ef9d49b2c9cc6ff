package describe

import (
	"reflect"
	"testing"
)

type sample struct {
	Name    string
	Age     int
	hidden  bool   //nolint:unused // exercises the unexported-field filter
	Ignored string `fake:"-"`
	Marked  string `fake:"skip"`
}

func TestOf_Fields(t *testing.T) {
	t.Parallel()

	d := Of(reflect.TypeOf(sample{}))

	if got, want := d.Label, "describe.sample"; got != want {
		t.Errorf("Label = %q, want %q", got, want)
	}
	if got, want := len(d.Fields), 4; got != want {
		t.Fatalf("field count = %d, want %d", got, want)
	}

	byName := map[string]Field{}
	for _, f := range d.Fields {
		byName[f.Name] = f
	}

	if _, ok := byName["hidden"]; ok {
		t.Error("unexported field listed as writable")
	}
	if !byName["Ignored"].Skip {
		t.Error(`field tagged fake:"-" not marked as skipped`)
	}
	if !byName["Marked"].Skip {
		t.Error(`field tagged fake:"skip" not marked as skipped`)
	}
	if byName["Age"].Type != reflect.TypeOf(int(0)) {
		t.Errorf("Age type = %v, want int", byName["Age"].Type)
	}
	if got, want := byName["Ignored"].Index, 3; got != want {
		t.Errorf("Ignored index = %d, want %d (declaration index, counting unexported fields)", got, want)
	}
}

func TestOf_CacheReturnsSameDescriptor(t *testing.T) {
	t.Parallel()

	tp := reflect.TypeOf(sample{})
	if Of(tp) != Of(tp) {
		t.Error("repeated Of calls returned distinct descriptors")
	}
}

func TestOf_NonStruct(t *testing.T) {
	t.Parallel()

	d := Of(reflect.TypeOf(42))
	if len(d.Fields) != 0 {
		t.Errorf("non-struct descriptor has %d fields, want 0", len(d.Fields))
	}
	if d.Label != "int" {
		t.Errorf("Label = %q, want %q", d.Label, "int")
	}
}
