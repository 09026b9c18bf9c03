package api

import (
	"sort"

	"github.com/dtolley1/go-tabview/pkg/domain"
	"github.com/dtolley1/go-tabview/pkg/view"
)

// RecordView adapts the generic engine to the domain.View interface the HTTP
// layer consumes, and buffers engine notifications for the events endpoint.
type RecordView struct {
	engine *view.Engine[domain.Record]
	events []domain.PageEventInfo
}

// NewRecordView builds a view over the dataset's records using its column
// specs.
func NewRecordView(ds *domain.Dataset, opts ...view.Option[domain.Record]) *RecordView {
	opts = append([]view.Option[domain.Record]{view.WithDataSource(ds.Records)}, opts...)
	rv := &RecordView{}
	rv.engine = view.NewEngine(columnsFromSpecs(ds.Columns), opts...)
	rv.engine.OnPageEvent(func(kind view.PageEventKind, ev view.PageEvent) {
		rv.events = append(rv.events, domain.PageEventInfo{
			Kind:     kind.String(),
			Page:     ev.Page,
			PageSize: ev.PageSize,
			NumPages: ev.NumPages,
		})
	})
	rv.engine.OnPropertyChanged(func(prop view.Property) {
		rv.events = append(rv.events, domain.PageEventInfo{
			Kind:     "property_changed",
			Property: prop.String(),
			Page:     rv.engine.Page(),
			PageSize: rv.engine.PageSize(),
			NumPages: rv.engine.NumPages(),
		})
	})
	return rv
}

// columnsFromSpecs turns wire column specs into engine column descriptors
// reading the named record field.
func columnsFromSpecs(specs []domain.ColumnSpec) []*view.Column[domain.Record] {
	cols := make([]*view.Column[domain.Record], 0, len(specs))
	for _, spec := range specs {
		field := spec.Field
		col := view.NewColumn(field, func(r domain.Record) any { return r[field] }).
			WithDisplayIndex(spec.DisplayIndex).
			WithLocalizationKey(spec.LocalizationKey).
			WithDisplayNames(spec.DisplayNames...)
		if spec.Searchable {
			col.AsSearchable()
		}
		cols = append(cols, col)
	}
	return cols
}

// Engine exposes the wrapped engine for in-process callers.
func (rv *RecordView) Engine() *view.Engine[domain.Record] { return rv.engine }

func (rv *RecordView) SetDataSource(records []domain.Record) { rv.engine.SetDataSource(records) }

func (rv *RecordView) Search(query string) { rv.engine.Search(query) }

func (rv *RecordView) Filter(pred func(domain.Record) bool) { rv.engine.Filter(pred) }

func (rv *RecordView) Sort(displayName string) { rv.engine.Sort(displayName) }

func (rv *RecordView) MultiSort(fn func(records []domain.Record) []domain.Record) {
	rv.engine.MultiSort(fn)
}

func (rv *RecordView) SetPage(page int) { rv.engine.SetPage(page) }

func (rv *RecordView) SetPageSize(size int) { rv.engine.SetPageSize(size) }

func (rv *RecordView) NotifyNumPagesChanged() { rv.engine.NotifyNumPagesChanged() }

// State snapshots the view's scalar properties.
func (rv *RecordView) State() domain.ViewState {
	return domain.ViewState{
		Page:          rv.engine.Page(),
		PageSize:      rv.engine.PageSize(),
		NumPages:      rv.engine.NumPages(),
		MaxPages:      rv.engine.MaxPages(),
		TotalItems:    rv.engine.AllItems().Len(),
		FilteredItems: rv.engine.FilteredItems().Len(),
	}
}

// Columns returns the column specs with their current sort directions.
func (rv *RecordView) Columns() []domain.ColumnState {
	cols := rv.engine.ColumnInfos()
	out := make([]domain.ColumnState, 0, len(cols))
	for _, c := range cols {
		out = append(out, domain.ColumnState{
			ColumnSpec: domain.ColumnSpec{
				Field:           c.PropertyID,
				DisplayIndex:    c.DisplayIndex,
				LocalizationKey: c.LocalizationKey,
				DisplayNames:    c.DisplayNames,
				Searchable:      c.Searchable,
			},
			SortDirection: c.Direction.String(),
		})
	}
	return out
}

// Items reads one of the view's collections. The second result is false for
// an unknown scope.
func (rv *RecordView) Items(scope domain.ItemScope) ([]domain.Record, bool) {
	switch scope {
	case domain.ScopePage:
		return rv.engine.PageItems().Items(), true
	case domain.ScopeFiltered:
		return rv.engine.FilteredItems().Items(), true
	case domain.ScopeAll:
		return rv.engine.AllItems().Items(), true
	case domain.ScopeOriginal:
		return rv.engine.OriginalCollection().Items(), true
	default:
		return nil, false
	}
}

// DrainEvents returns the notifications buffered since the last drain.
func (rv *RecordView) DrainEvents() []domain.PageEventInfo {
	events := rv.events
	rv.events = nil
	return events
}

// MultiSortFunc builds a stable multi-field comparator from wire sort keys.
// Every call returns a fresh closure, so re-posting the same keys re-sorts;
// the engine's identity check only dedupes the very same function value.
func MultiSortFunc(fields []domain.SortField) func([]domain.Record) []domain.Record {
	return func(records []domain.Record) []domain.Record {
		sort.SliceStable(records, func(i, j int) bool {
			for _, f := range fields {
				c := view.CompareValues(records[i][f.Field], records[j][f.Field])
				if c == 0 {
					continue
				}
				if f.Desc {
					return c > 0
				}
				return c < 0
			}
			return false
		})
		return records
	}
}
