package scenario

import (
	"fakeforge/internal/common"
	"fakeforge/randgen"
	"fakeforge/selector"
)

// overridePriority is the band for per-field pins from a scenario
// document. It sits above PriorityUser so a pin outranks every selector a
// provider registers, name-qualified ones included.
const overridePriority = selector.PriorityUser + 10

// catalog maps the generator names usable in scenario documents to
// selector constructors over the run's source.
var catalog = map[string]func(*randgen.Source) selector.Selector{
	"word":       pin((*randgen.Source).Word),
	"sentence":   pin(func(s *randgen.Source) string { return s.Sentence(6) }),
	"name":       pin((*randgen.Source).Name),
	"first_name": pin((*randgen.Source).FirstName),
	"last_name":  pin((*randgen.Source).LastName),
	"email":      pin((*randgen.Source).Email),
	"city":       pin((*randgen.Source).City),
	"url":        pin((*randgen.Source).URL),
	"company":    pin((*randgen.Source).Company),
	"phone":      pin((*randgen.Source).Phone),
	"uuid":       pin((*randgen.Source).UUID),
	"int":        pin(func(s *randgen.Source) int { return s.IntBetween(1, 1000) }),
	"float":      pin(func(s *randgen.Source) float64 { return s.Float64Between(0, 1000) }),
	"price":      pin(func(s *randgen.Source) float64 { return s.Price(1, 1000) }),
	"bool":       pin((*randgen.Source).Bool),
	"date":       pin((*randgen.Source).Date),
	"duration":   pin((*randgen.Source).Duration),
}

// pin builds one catalog constructor in the override band.
func pin[T any](produce func(*randgen.Source) T) func(*randgen.Source) selector.Selector {
	return func(s *randgen.Source) selector.Selector {
		return selector.ForPriority(overridePriority, func() T { return produce(s) })
	}
}

// Generators lists the catalog names in ascending order.
func Generators() []string {
	return common.SortedKeys(catalog)
}

func newSelector(name string, s *randgen.Source) (selector.Selector, bool) {
	ctor, ok := catalog[name]
	if !ok {
		return nil, false
	}

	return ctor(s), true
}
