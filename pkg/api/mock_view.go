package api

import (
	"github.com/dtolley1/go-tabview/pkg/domain"
)

// MockView provides a call-recording implementation of domain.View for
// handler tests.
type MockView struct {
	SetDataSourceCalls int
	SearchCalls        []string
	FilterCalls        int
	SortCalls          []string
	MultiSortCalls     int
	PageCalls          []int
	PageSizeCalls      []int
	NotifyCalls        int
	EventsDrained      int

	LastFilter    func(domain.Record) bool
	LastMultiSort func([]domain.Record) []domain.Record

	StateValue   domain.ViewState
	ColumnsValue []domain.ColumnState
	ItemsValue   map[domain.ItemScope][]domain.Record
	EventsValue  []domain.PageEventInfo
}

// NewMockView creates a mock with empty collections.
func NewMockView() *MockView {
	return &MockView{ItemsValue: make(map[domain.ItemScope][]domain.Record)}
}

func (m *MockView) SetDataSource(records []domain.Record) {
	m.SetDataSourceCalls++
	m.StateValue.TotalItems = len(records)
	m.StateValue.FilteredItems = len(records)
}

func (m *MockView) Search(query string) {
	m.SearchCalls = append(m.SearchCalls, query)
}

func (m *MockView) Filter(pred func(domain.Record) bool) {
	m.FilterCalls++
	m.LastFilter = pred
}

func (m *MockView) Sort(displayName string) {
	m.SortCalls = append(m.SortCalls, displayName)
}

func (m *MockView) MultiSort(fn func(records []domain.Record) []domain.Record) {
	m.MultiSortCalls++
	m.LastMultiSort = fn
}

func (m *MockView) SetPage(page int) {
	m.PageCalls = append(m.PageCalls, page)
	m.StateValue.Page = page
}

func (m *MockView) SetPageSize(size int) {
	m.PageSizeCalls = append(m.PageSizeCalls, size)
	if size > 0 {
		m.StateValue.PageSize = size
	}
}

func (m *MockView) NotifyNumPagesChanged() {
	m.NotifyCalls++
}

func (m *MockView) State() domain.ViewState {
	return m.StateValue
}

func (m *MockView) Columns() []domain.ColumnState {
	return m.ColumnsValue
}

func (m *MockView) Items(scope domain.ItemScope) ([]domain.Record, bool) {
	if !domain.ValidScope(scope) {
		return nil, false
	}
	return m.ItemsValue[scope], true
}

func (m *MockView) DrainEvents() []domain.PageEventInfo {
	m.EventsDrained++
	events := m.EventsValue
	m.EventsValue = nil
	return events
}
