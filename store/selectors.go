package store

import (
	"fakeforge/randgen"
	"fakeforge/selector"
)

// Selectors returns the domain selectors: defined order statuses instead
// of random words, plausible ages, and ISO currency codes.
func Selectors(src *randgen.Source) []selector.Selector {
	statuses := make([]string, 0, len(Statuses()))
	for _, s := range Statuses() {
		statuses = append(statuses, string(s))
	}

	return []selector.Selector{
		selector.For(func() OrderStatus { return OrderStatus(src.Pick(statuses)) }),
		selector.ByName("Age", selector.For(func() int { return src.IntBetween(18, 90) })),
		selector.ByName("Currency", selector.For(func() string {
			return src.Pick([]string{"USD", "EUR", "GBP", "JPY"})
		})),
	}
}
