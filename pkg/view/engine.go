// Package view implements a reactive tabular-view engine: a search → filter →
// sort → paginate pipeline over an in-memory record set, with incrementally
// maintained derived collections and synchronous change notifications.
//
// The engine is generic over the record type and reads records only through
// Column descriptors. It is strictly single-threaded: callers must serialize
// access, and all notifications are delivered before the triggering call
// returns.
package view

import (
	"github.com/dtolley1/go-tabview/pkg/match"
)

const (
	// DefaultPageSize is used when no page size option is given.
	DefaultPageSize = 25
	// DefaultPage is the initial 1-based page.
	DefaultPage = 1
)

// Matcher decides whether a search query matches a record, given the string
// forms of its searchable column values in registry order. Nil column values
// arrive as empty strings.
type Matcher func(query string, candidates []string) bool

// Engine maintains the derived views of a mutable record set.
//
// AllItems may be mutated directly by the client between pipeline runs; doing
// so does not recompute the derived views. Re-apply any pipeline operation
// (even a no-op Search with the current query) to refresh them.
type Engine[T any] struct {
	columns []*Column[T]
	matcher Matcher

	original *ObservableList[T]
	all      *ObservableList[T]
	filtered *ObservableList[T]
	pageList *ObservableList[T]

	// sticky pipeline state; lastSortColumn and lastMultiSort are never both
	// set
	lastSearch     string
	lastFilter     func(T) bool
	lastSortColumn string
	lastMultiSort  func([]T) []T

	// the single column carrying a non-None direction
	activeSort *Column[T]

	page     int
	pageSize int

	pageSubs []func(kind PageEventKind, ev PageEvent)
	propSubs []func(prop Property)

	initialData []T
}

// Option configures a new Engine.
type Option[T any] func(*Engine[T])

// WithDataSource supplies the initial record set.
func WithDataSource[T any](items []T) Option[T] {
	return func(e *Engine[T]) {
		e.initialData = items
	}
}

// WithPageSize sets the initial page size. Non-positive sizes are stored
// as-is and surface through NumPages and MaxPages as the -1 sentinel.
func WithPageSize[T any](size int) Option[T] {
	return func(e *Engine[T]) {
		e.pageSize = size
	}
}

// WithPage sets the initial 1-based page.
func WithPage[T any](page int) Option[T] {
	return func(e *Engine[T]) {
		e.page = page
	}
}

// WithMatcher replaces the default fuzzy search matcher.
func WithMatcher[T any](m Matcher) Option[T] {
	return func(e *Engine[T]) {
		if m != nil {
			e.matcher = m
		}
	}
}

// NewEngine creates an engine over the given column descriptors.
func NewEngine[T any](columns []*Column[T], opts ...Option[T]) *Engine[T] {
	e := &Engine[T]{
		columns:  columns,
		matcher:  match.Fuzzy,
		original: NewObservableList[T](),
		all:      NewObservableList[T](),
		filtered: NewObservableList[T](),
		pageList: NewObservableList[T](),
		page:     DefaultPage,
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.SetDataSource(e.initialData)
	e.initialData = nil
	return e
}

// OriginalCollection is the snapshot taken at the last SetDataSource.
func (e *Engine[T]) OriginalCollection() *ObservableList[T] { return e.original }

// AllItems is the canonical mutable record set.
func (e *Engine[T]) AllItems() *ObservableList[T] { return e.all }

// FilteredItems is the output of the search → filter → sort pipeline.
func (e *Engine[T]) FilteredItems() *ObservableList[T] { return e.filtered }

// PageItems is the current page slice of FilteredItems.
func (e *Engine[T]) PageItems() *ObservableList[T] { return e.pageList }

// Page returns the current 1-based page.
func (e *Engine[T]) Page() int { return e.page }

// PageSize returns the current page size.
func (e *Engine[T]) PageSize() int { return e.pageSize }

// NumPages returns the page count over FilteredItems, or -1 when the page
// size is not positive.
func (e *Engine[T]) NumPages() int {
	return ComputeNumPages(e.filtered.Len(), e.pageSize)
}

// MaxPages returns the page count over AllItems, or -1 when the page size is
// not positive.
func (e *Engine[T]) MaxPages() int {
	return ComputeNumPages(e.all.Len(), e.pageSize)
}

// ColumnInfos returns all column descriptors in registry order.
func (e *Engine[T]) ColumnInfos() []*Column[T] {
	out := make([]*Column[T], len(e.columns))
	copy(out, e.columns)
	return out
}

// DisplayColumnInfos returns the columns carrying at least one display name.
func (e *Engine[T]) DisplayColumnInfos() []*Column[T] {
	var out []*Column[T]
	for _, c := range e.columns {
		if c.IsDisplayColumn() {
			out = append(out, c)
		}
	}
	return out
}

// GetDisplayColumn resolves a column by display name. The second result is
// false when no column carries the name.
func (e *Engine[T]) GetDisplayColumn(name string) (*Column[T], bool) {
	for _, c := range e.columns {
		if c.HasDisplayName(name) {
			return c, true
		}
	}
	return nil, false
}

// SetPage moves to the given 1-based page. Setting the current page again is
// a no-op; PageItems is empty whenever page <= 0.
func (e *Engine[T]) SetPage(page int) {
	if page == e.page {
		return
	}
	e.setPage(page)
}

// setPage stores the page unconditionally, refreshes PageItems and notifies.
// SetPageSize uses it to force the reset to page 1 past the no-op check.
func (e *Engine[T]) setPage(page int) {
	e.page = page
	e.refreshPageItems()
	e.emitPageEvent(PageChanged)
	e.emitPropertyChanged(PropPage)
}

// SetPageSize changes the page size. Unchanged or non-positive sizes are
// ignored. When the view is on a page, the page resets to 1.
func (e *Engine[T]) SetPageSize(size int) {
	if size == e.pageSize || size <= 0 {
		return
	}
	e.pageSize = size
	if e.page > 0 {
		e.setPage(1)
	} else {
		e.refreshPageItems()
	}
	e.emitPageEvent(PageSizeChanged)
	e.emitPropertyChanged(PropPageSize)
}

// NotifyNumPagesChanged re-announces the current NumPages without running the
// pipeline, for callers that mutated AllItems out of band.
func (e *Engine[T]) NotifyNumPagesChanged() {
	e.emitPageEvent(NumPagesChanged)
	e.emitPropertyChanged(PropNumPages)
}

func (e *Engine[T]) refreshPageItems() {
	e.pageList.Replace(ComputePage(e.filtered.Items(), e.page, e.pageSize))
}
