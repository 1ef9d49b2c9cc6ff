package randgen

import "fakeforge/selector"

// Nullable builds a selector for *T producing nil with probability
// nullProb and a pointer to a freshly produced value otherwise.
func Nullable[T any](s *Source, nullProb float64, produce func() T) *selector.Base {
	return selector.For(func() *T {
		if s.Chance(nullProb) {
			return nil
		}

		v := produce()

		return &v
	})
}
