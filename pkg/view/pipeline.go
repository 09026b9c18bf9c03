package view

import (
	"reflect"
	"sort"
	"strings"
)

// SetDataSource replaces the engine's record set. A nil sequence is treated
// as "no records". The previous contents of every collection are cleared
// before the copy, then a full pipeline run rebuilds the derived views.
func (e *Engine[T]) SetDataSource(items []T) {
	prevMax := e.MaxPages()

	e.pageList.Clear()
	e.original.Clear()
	e.all.Clear()
	e.filtered.Clear()

	e.original.Replace(items)
	e.all.Replace(items)

	e.recompute()

	if e.MaxPages() != prevMax {
		e.emitPropertyChanged(PropMaxPages)
	}
}

// Search stores the query and recomputes. A blank query disables the search
// stage; the query sticks until replaced.
func (e *Engine[T]) Search(query string) {
	e.lastSearch = query
	e.recompute()
}

// Filter stores the predicate and recomputes. A nil predicate is a no-op:
// state is left untouched and nothing recomputes.
func (e *Engine[T]) Filter(pred func(T) bool) {
	if pred == nil {
		return
	}
	e.lastFilter = pred
	e.recompute()
}

// Sort resolves the column whose display names contain displayName and
// advances its direction through None → Ascending → Descending → Ascending…
// An unknown name fails silently: the name is still recorded and the
// recomputation runs with no sort key. Sorting clears any multi-sort.
func (e *Engine[T]) Sort(displayName string) {
	if col, ok := e.GetDisplayColumn(displayName); ok {
		if e.activeSort != nil && e.activeSort != col {
			e.activeSort.Direction = SortNone
		}
		col.Direction = col.Direction.advance()
		e.activeSort = col
	}
	e.lastSortColumn = displayName
	e.lastMultiSort = nil
	e.recompute()
}

// MultiSort stores fn as the sort stage, replacing any column sort. When fn
// is the same function value as the one already stored, the call is a no-op;
// identity is deliberate, so a freshly built closure always re-sorts. A nil
// fn clears the multi-sort.
func (e *Engine[T]) MultiSort(fn func(items []T) []T) {
	if sameFunc(fn, e.lastMultiSort) {
		return
	}
	e.lastMultiSort = fn
	e.lastSortColumn = ""
	e.recompute()
}

func sameFunc[T any](a, b func([]T) []T) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// recompute replays the full pipeline over AllItems: search narrows, filter
// narrows, the sort stage reorders, and the results replace FilteredItems and
// PageItems wholesale.
func (e *Engine[T]) recompute() {
	prevNumPages := e.NumPages()

	working := e.all.Items()

	if strings.TrimSpace(e.lastSearch) != "" {
		working = e.applySearch(working)
	}

	if e.lastFilter != nil {
		kept := working[:0]
		for _, item := range working {
			if e.lastFilter(item) {
				kept = append(kept, item)
			}
		}
		working = kept
	}

	if col, ok := e.GetDisplayColumn(e.lastSortColumn); ok && col.Direction != SortNone {
		e.sortByColumn(working, col)
	} else if e.lastMultiSort != nil {
		working = e.lastMultiSort(working)
	}

	e.filtered.Replace(working)
	e.refreshPageItems()

	if n := e.NumPages(); n != prevNumPages {
		e.emitPageEvent(NumPagesChanged)
		e.emitPropertyChanged(PropNumPages)
	}
}

// applySearch keeps the records the matcher accepts, feeding it the string
// forms of every searchable column in registry order.
func (e *Engine[T]) applySearch(items []T) []T {
	var searchable []*Column[T]
	for _, c := range e.columns {
		if c.Searchable {
			searchable = append(searchable, c)
		}
	}

	kept := items[:0]
	candidates := make([]string, len(searchable))
	for _, item := range items {
		for i, c := range searchable {
			candidates[i] = stringifyValue(c.Value(item))
		}
		if e.matcher(e.lastSearch, candidates) {
			kept = append(kept, item)
		}
	}
	return kept
}

// sortByColumn stable-sorts items by the column's value in its current
// direction.
func (e *Engine[T]) sortByColumn(items []T, col *Column[T]) {
	var desc bool
	switch col.Direction {
	case SortAscending:
		desc = false
	case SortDescending:
		desc = true
	default:
		panic("view: invalid sort direction")
	}

	sort.SliceStable(items, func(i, j int) bool {
		c := CompareValues(col.Value(items[i]), col.Value(items[j]))
		if desc {
			return c > 0
		}
		return c < 0
	})
}
