package engine

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakeforge/internal/registry"
	"fakeforge/randgen"
	"fakeforge/selector"
	"fakeforge/utils"
)

type money struct {
	Amount   int64
	Currency string
}

type lineItem struct {
	SKU      string
	Quantity int
	Price    money
}

type orderStatus string

type order struct {
	ID     int
	Status orderStatus
	Items  []lineItem
	Tags   []string
	Labels map[string]string
	Note   *string
	Grid   [3]int
}

type node struct {
	Name   string
	Parent *node
}

type tree struct {
	Label string
	Kids  []tree
}

type alpha struct {
	Tag string
	B   beta
}

type beta struct {
	A *alpha
}

type loopSlice []loopSlice

type loopMap map[string]loopMap

type pingList []pongList

type pongList []pingList

func newTestEngine(t *testing.T, seed uint64, sels ...selector.Selector) *Engine {
	t.Helper()

	src := randgen.NewSource(seed)
	reg := registry.New()
	reg.Register(randgen.Defaults(src)...)
	reg.Register(sels...)

	return New(reg, nil, Config{Source: src})
}

func populated[T any](e *Engine) T {
	v := reflect.New(reflect.TypeFor[T]()).Elem()
	e.PopulateStruct(v)

	return v.Interface().(T)
}

func TestPopulateLeafFields(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 42)
	got := populated[order](e)

	assert.GreaterOrEqual(t, got.ID, 1)
	assert.NotEmpty(t, got.Status, "named scalar should fall back to its canonical kind selector")

	require.True(t, utils.IsInRange(1, len(got.Items), 10), "items: %d", len(got.Items))
	for _, item := range got.Items {
		assert.NotEmpty(t, item.SKU)
		assert.GreaterOrEqual(t, item.Quantity, 1)
		assert.GreaterOrEqual(t, item.Price.Amount, int64(1))
		assert.NotEmpty(t, item.Price.Currency)
	}

	require.True(t, utils.IsInRange(1, len(got.Tags), 10), "tags: %d", len(got.Tags))
	for _, tag := range got.Tags {
		assert.NotEmpty(t, tag)
	}

	require.True(t, utils.IsInRange(1, len(got.Labels), 10), "labels: %d", len(got.Labels))

	require.NotNil(t, got.Note)
	assert.NotEmpty(t, *got.Note)

	for i, n := range got.Grid {
		assert.GreaterOrEqual(t, n, 1, "grid slot %d", i)
	}

	spew.Dump(got)
}

func TestPopulateWholeObjectReplacement(t *testing.T) {
	t.Parallel()

	fixed := money{Amount: 42, Currency: "EUR"}
	e := newTestEngine(t, 7, selector.For(func() money { return fixed }))

	type wallet struct {
		Cash  money
		Stash []money
	}

	got := populated[wallet](e)
	assert.Equal(t, fixed, got.Cash)

	require.True(t, utils.IsInRange(1, len(got.Stash), 10))
	for _, m := range got.Stash {
		assert.Equal(t, fixed, m, "slice elements should come from the object selector verbatim")
	}

	whole := populated[money](e)
	assert.Equal(t, fixed, whole)
}

func TestPopulateSkipsSelfReference(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3)
	got := populated[node](e)

	assert.NotEmpty(t, got.Name)
	assert.Nil(t, got.Parent, "a field of the enclosing type must stay untouched")
}

func TestPopulateRecursiveElementsNotPopulated(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 5)
	got := populated[tree](e)

	assert.NotEmpty(t, got.Label)
	require.True(t, utils.IsInRange(1, len(got.Kids), 10))

	for i, kid := range got.Kids {
		assert.Empty(t, kid.Label, "kid %d should be constructed but not populated", i)
		assert.Nil(t, kid.Kids, "kid %d should not grow its own elements", i)
	}
}

func TestPopulateHonorsSkipTag(t *testing.T) {
	t.Parallel()

	type document struct {
		Title  string
		Draft  string `fake:"-"`
		Secret string `fake:"skip"`
	}

	e := newTestEngine(t, 9)
	got := populated[document](e)

	assert.NotEmpty(t, got.Title)
	assert.Empty(t, got.Draft)
	assert.Empty(t, got.Secret)
}

func TestPopulatePointerToStruct(t *testing.T) {
	t.Parallel()

	type wrapper struct {
		Deal *lineItem
	}

	e := newTestEngine(t, 11)
	got := populated[wrapper](e)

	require.NotNil(t, got.Deal)
	assert.NotEmpty(t, got.Deal.SKU)
	assert.GreaterOrEqual(t, got.Deal.Quantity, 1)
}

func TestPopulateMutualRecursionBounded(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 13)
	got := populated[alpha](e)

	links := 0
	for cur := &got; cur != nil; cur = cur.B.A {
		links++
		require.LessOrEqual(t, links, DefaultMaxDepth, "the depth budget must cut the A-B-A chain")
	}

	assert.Positive(t, links)
}

func TestPopulateSelfReferentialCollectionsTerminate(t *testing.T) {
	t.Parallel()

	type cyclic struct {
		Grid  loopSlice
		Table loopMap
	}

	e := newTestEngine(t, 31)
	got := populated[cyclic](e)

	require.True(t, utils.IsInRange(1, len(got.Grid), 10), "grid: %d", len(got.Grid))
	for i, inner := range got.Grid {
		assert.Nil(t, inner, "grid slot %d should stay unpopulated", i)
	}

	require.True(t, utils.IsInRange(1, len(got.Table), 10), "table: %d", len(got.Table))
	for key, inner := range got.Table {
		assert.NotEmpty(t, key)
		assert.Nil(t, inner, "table value %q should stay unpopulated", key)
	}

	direct := e.Construct(reflect.TypeFor[loopSlice](), 0).Interface().(loopSlice)
	require.True(t, utils.IsInRange(1, len(direct), 10))
	for _, inner := range direct {
		assert.Nil(t, inner)
	}
}

func TestPopulateNestedCollectionRecursionBounded(t *testing.T) {
	t.Parallel()

	const maxDepth = 3

	src := randgen.NewSource(37)
	reg := registry.New()
	reg.Register(randgen.Defaults(src)...)
	e := New(reg, nil, Config{Source: src, MaxDepth: maxDepth})

	v := reflect.New(reflect.TypeFor[pingList]()).Elem()
	e.Fill(v)

	levels := 0
	for cur := v; cur.Kind() == reflect.Slice && cur.Len() > 0; cur = cur.Index(0) {
		levels++
	}

	require.Equal(t, maxDepth+1, levels, "nesting should stop at the depth budget")
}

func TestPopulateUnproducibleMapKey(t *testing.T) {
	t.Parallel()

	type odd struct {
		ByChan map[chan int]string
	}

	e := newTestEngine(t, 17)
	got := populated[odd](e)

	assert.Nil(t, got.ByChan, "maps with unproducible keys should stay nil")
}

func TestPopulateCollectionCountsWithinBounds(t *testing.T) {
	t.Parallel()

	type bag struct {
		Tags []string
	}

	e := newTestEngine(t, 19)

	lengths := map[int]bool{}
	for i := 0; i < 100; i++ {
		got := populated[bag](e)
		require.True(t, utils.IsInRange(1, len(got.Tags), 10), "iteration %d: %d", i, len(got.Tags))
		lengths[len(got.Tags)] = true
	}

	assert.GreaterOrEqual(t, len(lengths), 2, "element counts should vary")
}

func TestPopulateDeterministicUnderSeed(t *testing.T) {
	t.Parallel()

	left := populated[order](newTestEngine(t, 123))
	right := populated[order](newTestEngine(t, 123))

	require.Equal(t, left, right)
}

func TestFillNonStructTargets(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 23)

	n := reflect.New(reflect.TypeFor[int]()).Elem()
	e.Fill(n)
	assert.GreaterOrEqual(t, int(n.Int()), 1)

	s := reflect.New(reflect.TypeFor[[]string]()).Elem()
	e.Fill(s)
	require.True(t, utils.IsInRange(1, s.Len(), 10))

	m := reflect.New(reflect.TypeFor[map[string]int]()).Elem()
	e.Fill(m)
	require.True(t, utils.IsInRange(1, m.Len(), 10))
}

func TestPopulateUnknownLeafStaysZero(t *testing.T) {
	t.Parallel()

	type exotic struct {
		Ch chan int
		Fn func()
		If any
	}

	e := newTestEngine(t, 29)
	got := populated[exotic](e)

	assert.Nil(t, got.Ch)
	assert.Nil(t, got.Fn)
	assert.Nil(t, got.If)
}
