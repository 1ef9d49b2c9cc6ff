package randgen

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakeforge/utils"
)

func TestIntBetween(t *testing.T) {
	t.Parallel()

	s := NewSource(1)

	for i := 0; i < 1000; i++ {
		got := s.IntBetween(1, 10)
		require.True(t, utils.IsInRange(1, got, 10), "draw %d out of bounds: %d", i, got)
	}

	assert.Equal(t, 5, s.IntBetween(5, 5))
	assert.True(t, utils.IsInRange(1, s.IntBetween(10, 1), 10), "reversed bounds should swap")
}

func TestChance(t *testing.T) {
	t.Parallel()

	s := NewSource(7)

	assert.False(t, s.Chance(0))
	assert.False(t, s.Chance(-0.5))
	assert.True(t, s.Chance(1))
	assert.True(t, s.Chance(1.5))

	var hits, misses int
	for i := 0; i < 1000; i++ {
		if s.Chance(0.5) {
			hits++
		} else {
			misses++
		}
	}
	assert.Positive(t, hits)
	assert.Positive(t, misses)
}

func TestSameSeedSameSequence(t *testing.T) {
	t.Parallel()

	a, b := NewSource(42), NewSource(42)

	require.Equal(t, a.Word(), b.Word())
	require.Equal(t, a.Email(), b.Email())
	require.Equal(t, a.IntBetween(0, 1000000), b.IntBetween(0, 1000000))
	require.Equal(t, a.UUID(), b.UUID())
	require.Equal(t, a.Date(), b.Date())
	require.Equal(t, a.Duration(), b.Duration())
}

func TestUUIDNotNil(t *testing.T) {
	t.Parallel()

	s := NewSource(3)
	require.NotEqual(t, uuid.Nil, s.UUID())
}

func TestDateWithinFixedBounds(t *testing.T) {
	t.Parallel()

	s := NewSource(9)
	for i := 0; i < 100; i++ {
		d := s.Date()
		require.False(t, d.Before(dateMin), "date %v before lower bound", d)
		require.False(t, d.After(dateMax), "date %v after upper bound", d)
	}
}

func TestPick(t *testing.T) {
	t.Parallel()

	s := NewSource(13)
	options := []string{"red", "green", "blue"}
	for i := 0; i < 50; i++ {
		assert.Contains(t, options, s.Pick(options))
	}
}

func TestNullable(t *testing.T) {
	t.Parallel()

	s := NewSource(11)

	never := Nullable(s, 0, func() int { return 9 })
	for i := 0; i < 100; i++ {
		require.NotNil(t, never.Generate().(*int))
	}

	always := Nullable(s, 1, func() int { return 9 })
	for i := 0; i < 100; i++ {
		require.Nil(t, always.Generate().(*int))
	}

	some := Nullable(s, 0.5, func() int { return 9 })
	var nils, values int
	for i := 0; i < 200; i++ {
		if some.Generate().(*int) == nil {
			nils++
		} else {
			values++
		}
	}
	assert.Positive(t, nils)
	assert.Positive(t, values)
}

func TestDefaultsCoverLeafTypes(t *testing.T) {
	t.Parallel()

	types := map[reflect.Type]bool{}
	for _, sel := range Defaults(NewSource(5)) {
		types[sel.Type()] = true
	}

	for _, want := range []reflect.Type{
		reflect.TypeOf(0),
		reflect.TypeOf(int64(0)),
		reflect.TypeOf(uint8(0)),
		reflect.TypeOf(float64(0)),
		reflect.TypeOf(false),
		reflect.TypeOf(""),
		reflect.TypeOf(time.Time{}),
		reflect.TypeOf(time.Duration(0)),
		reflect.TypeOf(uuid.UUID{}),
	} {
		assert.True(t, types[want], "no default selector targets %v", want)
	}
}
