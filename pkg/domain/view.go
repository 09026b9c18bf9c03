package domain

// View is what the HTTP layer needs from a view session. The concrete
// implementation wraps the generic engine in pkg/view; tests substitute a
// mock.
type View interface {
	SetDataSource(records []Record)
	Search(query string)
	Filter(pred func(Record) bool)
	Sort(displayName string)
	MultiSort(fn func(records []Record) []Record)

	SetPage(page int)
	SetPageSize(size int)
	NotifyNumPagesChanged()

	State() ViewState
	Columns() []ColumnState
	Items(scope ItemScope) ([]Record, bool)
	DrainEvents() []PageEventInfo
}

// PageEventInfo is the wire form of a buffered engine notification.
type PageEventInfo struct {
	Kind     string `json:"kind"`
	Property string `json:"property,omitempty"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	NumPages int    `json:"num_pages"`
}

// ViewState is the scalar snapshot returned by state and mutation endpoints.
type ViewState struct {
	Page          int `json:"page"`
	PageSize      int `json:"page_size"`
	NumPages      int `json:"num_pages"`
	MaxPages      int `json:"max_pages"`
	TotalItems    int `json:"total_items"`
	FilteredItems int `json:"filtered_items"`
}

// ColumnState is a ColumnSpec plus the column's current sort direction.
type ColumnState struct {
	ColumnSpec
	SortDirection string `json:"sort_direction"`
}

// ItemScope selects which derived collection an items request reads.
type ItemScope string

const (
	ScopePage     ItemScope = "page"
	ScopeFiltered ItemScope = "filtered"
	ScopeAll      ItemScope = "all"
	ScopeOriginal ItemScope = "original"
)

// ValidScope reports whether s names a readable collection.
func ValidScope(s ItemScope) bool {
	switch s {
	case ScopePage, ScopeFiltered, ScopeAll, ScopeOriginal:
		return true
	default:
		return false
	}
}
