package view

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	name  string
	value int
}

func testColumns() []*Column[item] {
	return []*Column[item]{
		NewColumn("name", func(it item) any { return it.name }).
			WithDisplayIndex(0).
			WithDisplayNames("Name", "n").
			AsSearchable(),
		NewColumn("value", func(it item) any { return it.value }).
			WithDisplayIndex(1).
			WithDisplayNames("Value", "v"),
	}
}

func testItems() []item {
	return []item{
		{name: "b", value: 2},
		{name: "a", value: 1},
		{name: "c", value: 3},
	}
}

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}

func TestSortScenario_PaginatesSortedValues(t *testing.T) {
	e := NewEngine(testColumns(),
		WithDataSource(testItems()),
		WithPageSize[item](2))

	e.Sort("v")

	require.Equal(t, []string{"a", "b", "c"}, names(e.FilteredItems().Items()))
	assert.Equal(t, []string{"a", "b"}, names(e.PageItems().Items()))
	assert.Equal(t, 2, e.NumPages())

	e.SetPage(2)
	assert.Equal(t, []string{"c"}, names(e.PageItems().Items()))
}

func TestSortCycle_AscendingDescendingAscending(t *testing.T) {
	e := NewEngine(testColumns(), WithDataSource(testItems()))
	col, ok := e.GetDisplayColumn("v")
	require.True(t, ok)
	require.Equal(t, SortNone, col.Direction)

	e.Sort("v")
	assert.Equal(t, SortAscending, col.Direction)
	assert.Equal(t, []string{"a", "b", "c"}, names(e.FilteredItems().Items()))

	e.Sort("v")
	assert.Equal(t, SortDescending, col.Direction)
	assert.Equal(t, []string{"c", "b", "a"}, names(e.FilteredItems().Items()))

	// Descending never returns to None
	e.Sort("v")
	assert.Equal(t, SortAscending, col.Direction)
	assert.Equal(t, []string{"a", "b", "c"}, names(e.FilteredItems().Items()))
}

func TestSort_UnknownColumnFailsSilently(t *testing.T) {
	e := NewEngine(testColumns(), WithDataSource(testItems()))

	e.Sort("no-such-column")

	// recomputation still ran, with no sort applied
	assert.Equal(t, []string{"b", "a", "c"}, names(e.FilteredItems().Items()))
}

func TestSort_SingleActiveColumnInvariant(t *testing.T) {
	e := NewEngine(testColumns(), WithDataSource(testItems()))
	nameCol, _ := e.GetDisplayColumn("n")
	valueCol, _ := e.GetDisplayColumn("v")

	e.Sort("v")
	e.Sort("n")

	assert.Equal(t, SortNone, valueCol.Direction)
	assert.Equal(t, SortAscending, nameCol.Direction)
}

func TestMultiSort_ClearsColumnSortAndViceVersa(t *testing.T) {
	e := NewEngine(testColumns(), WithDataSource(testItems()))

	byValueDesc := func(items []item) []item {
		sort.SliceStable(items, func(i, j int) bool { return items[i].value > items[j].value })
		return items
	}

	e.Sort("v")
	require.Equal(t, []string{"a", "b", "c"}, names(e.FilteredItems().Items()))

	// multi-sort takes over
	e.MultiSort(byValueDesc)
	assert.Equal(t, []string{"c", "b", "a"}, names(e.FilteredItems().Items()))

	// a column sort clears the comparator again; Ascending→Descending on the
	// already-toggled column
	e.Sort("v")
	assert.Equal(t, []string{"c", "b", "a"}, names(e.FilteredItems().Items()))
	e.Sort("v")
	assert.Equal(t, []string{"a", "b", "c"}, names(e.FilteredItems().Items()))
}

func TestMultiSort_SameFunctionIsNoOp(t *testing.T) {
	e := NewEngine(testColumns(), WithDataSource(testItems()))

	replaced := 0
	e.FilteredItems().Subscribe(func([]item) { replaced++ })

	byName := func(items []item) []item {
		sort.SliceStable(items, func(i, j int) bool { return items[i].name < items[j].name })
		return items
	}

	e.MultiSort(byName)
	require.Equal(t, 1, replaced)

	// identical function value: nothing recomputes
	e.MultiSort(byName)
	assert.Equal(t, 1, replaced)

	// a fresh closure is a different comparator
	e.MultiSort(func(items []item) []item { return byName(items) })
	assert.Equal(t, 2, replaced)
}

func TestFilter_NilPredicateIsNoOp(t *testing.T) {
	e := NewEngine(testColumns(), WithDataSource(testItems()))

	replaced := 0
	e.FilteredItems().Subscribe(func([]item) { replaced++ })

	e.Filter(nil)
	assert.Equal(t, 0, replaced)
	assert.Equal(t, 3, e.FilteredItems().Len())
}

func TestFilter_SamePredicateIsIdempotent(t *testing.T) {
	e := NewEngine(testColumns(), WithDataSource(testItems()))
	pred := func(it item) bool { return it.value >= 2 }

	e.Filter(pred)
	first := names(e.FilteredItems().Items())
	require.Equal(t, []string{"b", "c"}, first)

	e.Filter(pred)
	assert.Equal(t, first, names(e.FilteredItems().Items()))
}

func TestPipeline_StagesNarrowInOrder(t *testing.T) {
	data := []item{
		{name: "apple pie", value: 1},
		{name: "apple tart", value: 2},
		{name: "banana bread", value: 3},
		{name: "apple cake", value: 4},
	}
	e := NewEngine(testColumns(), WithDataSource(data))

	e.Search("apple")
	afterSearch := e.FilteredItems().Len()
	require.Equal(t, 3, afterSearch)

	e.Filter(func(it item) bool { return it.value >= 2 })
	afterFilter := e.FilteredItems().Len()
	require.Equal(t, 2, afterFilter)
	assert.LessOrEqual(t, afterFilter, afterSearch)

	// sort never changes the element count
	e.Sort("v")
	assert.Equal(t, afterFilter, e.FilteredItems().Len())
	assert.Equal(t, []string{"apple tart", "apple cake"}, names(e.FilteredItems().Items()))
}

func TestSearch_NoMatchEmptiesDerivedViews(t *testing.T) {
	e := NewEngine(testColumns(), WithDataSource(testItems()))

	e.Search("xyz")

	assert.Equal(t, 0, e.FilteredItems().Len())
	assert.Equal(t, 0, e.PageItems().Len())
	assert.Equal(t, 0, e.NumPages())
	assert.Equal(t, 1, e.MaxPages())
}

func TestSearch_BlankQueryDisablesSearchStage(t *testing.T) {
	e := NewEngine(testColumns(), WithDataSource(testItems()))

	e.Search("a")
	require.Equal(t, 1, e.FilteredItems().Len())

	e.Search("   ")
	assert.Equal(t, 3, e.FilteredItems().Len())
}

func TestSearch_OnlySearchableColumnsAreCandidates(t *testing.T) {
	// values are not searchable in testColumns; querying "2" finds nothing
	e := NewEngine(testColumns(), WithDataSource(testItems()), WithMatcher[item](Matcher(substringMatcher)))

	e.Search("2")
	assert.Equal(t, 0, e.FilteredItems().Len())

	e.Search("b")
	assert.Equal(t, 1, e.FilteredItems().Len())
}

func substringMatcher(query string, candidates []string) bool {
	for _, c := range candidates {
		if c == query {
			return true
		}
	}
	return false
}

func TestSearch_NilColumnValueBecomesEmptyCandidate(t *testing.T) {
	cols := []*Column[item]{
		NewColumn("maybe", func(it item) any {
			if it.value == 0 {
				return nil
			}
			return it.name
		}).WithDisplayNames("Maybe").AsSearchable(),
	}
	var got [][]string
	matcher := func(query string, candidates []string) bool {
		snapshot := make([]string, len(candidates))
		copy(snapshot, candidates)
		got = append(got, snapshot)
		return false
	}

	e := NewEngine(cols,
		WithDataSource([]item{{name: "x", value: 0}, {name: "y", value: 1}}),
		WithMatcher[item](matcher))
	e.Search("q")

	require.Len(t, got, 2)
	assert.Equal(t, []string{""}, got[0])
	assert.Equal(t, []string{"y"}, got[1])
}

func TestSetDataSource_ResetsCollections(t *testing.T) {
	e := NewEngine(testColumns(), WithDataSource(testItems()), WithPageSize[item](2))
	e.Search("a")
	require.Equal(t, 1, e.FilteredItems().Len())

	e.SetDataSource([]item{{name: "alpha", value: 10}, {name: "aleph", value: 20}})

	assert.Equal(t, 2, e.OriginalCollection().Len())
	assert.Equal(t, 2, e.AllItems().Len())
	// the search query is sticky and replays over the new data
	assert.Equal(t, 2, e.FilteredItems().Len())

	e.SetDataSource(nil)
	assert.Equal(t, 0, e.OriginalCollection().Len())
	assert.Equal(t, 0, e.AllItems().Len())
	assert.Equal(t, 0, e.FilteredItems().Len())
	assert.Equal(t, 0, e.PageItems().Len())
}

func TestAllItems_DirectMutationNeedsExplicitReplay(t *testing.T) {
	e := NewEngine(testColumns(), WithDataSource(testItems()))

	e.AllItems().Add(item{name: "d", value: 4})

	// derived views are stale by contract
	assert.Equal(t, 3, e.FilteredItems().Len())

	// any pipeline operation refreshes them; re-applying the current query is
	// the documented no-op replay
	e.Search("")
	assert.Equal(t, 4, e.FilteredItems().Len())
}

func TestSortIsStable(t *testing.T) {
	data := []item{
		{name: "first", value: 1},
		{name: "second", value: 1},
		{name: "third", value: 1},
		{name: "zeroth", value: 0},
	}
	e := NewEngine(testColumns(), WithDataSource(data))

	e.Sort("v")

	assert.Equal(t, []string{"zeroth", "first", "second", "third"},
		names(e.FilteredItems().Items()))
}
