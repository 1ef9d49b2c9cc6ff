package randgen

import (
	"math"
	"time"

	"github.com/google/uuid"

	"fakeforge/selector"
)

// Defaults returns the built-in leaf selectors, all registered at
// selector.PriorityDefault so user registrations outrank them. The set
// covers Go's scalar types, time.Time, time.Duration and uuid.UUID,
// plus name-qualified selectors for a few common field names.
//
// The name-qualified entries also answer bare-type queries, where no field
// name is in play, and their wrappers rank above the plain word selector.
// String production outside a matching field (collection elements, map
// keys, construction) therefore draws from the first of them. Register a
// plain string selector to take over both shapes.
func Defaults(s *Source) []selector.Selector {
	sels := []selector.Selector{
		base(func() int { return s.IntBetween(1, 1000) }),
		base(func() int8 { return int8(s.IntBetween(1, math.MaxInt8)) }),
		base(func() int16 { return int16(s.IntBetween(1, math.MaxInt16)) }),
		base(func() int32 { return int32(s.IntBetween(1, math.MaxInt32)) }),
		base(func() int64 { return int64(s.IntBetween(1, math.MaxInt32)) }),
		base(func() uint { return uint(s.IntBetween(0, math.MaxInt32)) }),
		base(func() uint8 { return uint8(s.IntBetween(0, math.MaxUint8)) }),
		base(func() uint16 { return uint16(s.IntBetween(0, math.MaxUint16)) }),
		base(func() uint32 { return uint32(s.IntBetween(0, math.MaxInt32)) }),
		base(func() uint64 { return uint64(s.IntBetween(0, math.MaxInt32)) }),
		base(func() float32 { return float32(s.Float64Between(0, 1000)) }),
		base(func() float64 { return s.Float64Between(0, 1000) }),
		base(func() bool { return s.Bool() }),
		base(func() string { return s.Word() }),
		base(func() time.Time { return s.Date() }),
		base(func() time.Duration { return s.Duration() }),
		base(func() uuid.UUID { return s.UUID() }),
	}

	named := []selector.Selector{
		selector.ByName("Email", base(func() string { return s.Email() })),
		selector.ByName("FirstName", base(func() string { return s.FirstName() })),
		selector.ByName("LastName", base(func() string { return s.LastName() })),
		selector.ByName("City", base(func() string { return s.City() })),
		selector.ByName("URL", base(func() string { return s.URL() })),
	}

	return append(sels, named...)
}

func base[T any](produce func() T) selector.Selector {
	return selector.ForPriority(selector.PriorityDefault, produce)
}
