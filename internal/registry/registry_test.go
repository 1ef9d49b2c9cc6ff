package registry

import (
	"reflect"
	"testing"

	"fakeforge/selector"
)

func intSel(priority, value int) *selector.Base {
	return selector.ForPriority(priority, func() int { return value })
}

func TestUnknownType(t *testing.T) {
	t.Parallel()

	r := New()
	strType := reflect.TypeOf("")

	if got := r.Count(strType); got != 0 {
		t.Errorf("Count = %d, want 0", got)
	}
	if got := r.Selectors(strType); got != nil {
		t.Errorf("Selectors = %v, want nil", got)
	}
	if _, ok := r.Base(strType); ok {
		t.Error("Base reported a selector for an unknown type")
	}
}

func TestRegistrationOrderPreservedAmongEqualPriorities(t *testing.T) {
	t.Parallel()

	first := intSel(selector.PriorityUser, 1)
	second := intSel(selector.PriorityUser, 2)

	r := New()
	r.Register(first, second)

	got := r.Selectors(reflect.TypeOf(0))
	if len(got) != 2 {
		t.Fatalf("got %d selectors, want 2", len(got))
	}
	if got[0] != selector.Selector(first) || got[1] != selector.Selector(second) {
		t.Error("equal-priority selectors not in registration order")
	}

	base, ok := r.Base(reflect.TypeOf(0))
	if !ok || base != selector.Selector(first) {
		t.Error("Base did not return the first-registered selector")
	}
}

func TestHigherPriorityRanksFirst(t *testing.T) {
	t.Parallel()

	low := intSel(1, 1)
	high := intSel(5, 2)

	r := New()
	r.Register(low, high)

	got := r.Selectors(reflect.TypeOf(0))
	if got[0] != selector.Selector(high) {
		t.Error("higher-priority selector not ranked first")
	}

	// Base ignores priority: it is the first registered.
	base, _ := r.Base(reflect.TypeOf(0))
	if base != selector.Selector(low) {
		t.Error("Base did not return the first-registered selector")
	}
}

func TestNamedOutranksWrapped(t *testing.T) {
	t.Parallel()

	base := intSel(selector.PriorityUser, 1)
	named := selector.ByName("Age", base)

	r := New()
	r.Register(base, named)

	got := r.Selectors(reflect.TypeOf(0))
	if got[0] != selector.Selector(named) {
		t.Error("name-qualified selector not ranked above its base")
	}
}

func TestRankingDeterminism(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register(intSel(2, 1), intSel(2, 2), intSel(7, 3), intSel(1, 4), intSel(7, 5))

	want := r.Selectors(reflect.TypeOf(0))
	for i := 0; i < 100; i++ {
		got := r.Selectors(reflect.TypeOf(0))
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("iteration %d: ranking changed at position %d", i, j)
			}
		}
	}
}

func TestRegisterIgnoresNil(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register(nil, intSel(0, 1))

	if got := r.Count(reflect.TypeOf(0)); got != 1 {
		t.Errorf("Count = %d, want 1", got)
	}
}

func TestTypesSortedByLabel(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register(
		selector.For(func() string { return "" }),
		selector.For(func() int { return 0 }),
		selector.For(func() bool { return false }),
	)

	types := r.Types()
	want := []reflect.Type{reflect.TypeOf(false), reflect.TypeOf(0), reflect.TypeOf("")}
	if len(types) != len(want) {
		t.Fatalf("got %d types, want %d", len(types), len(want))
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("position %d: got %v, want %v", i, types[i], want[i])
		}
	}
}
