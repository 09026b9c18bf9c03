package view

// PageEventKind identifies which paging value changed.
type PageEventKind int

const (
	PageChanged PageEventKind = iota
	PageSizeChanged
	NumPagesChanged
)

// String returns a stable name for the kind.
func (k PageEventKind) String() string {
	switch k {
	case PageChanged:
		return "page_changed"
	case PageSizeChanged:
		return "page_size_changed"
	case NumPagesChanged:
		return "num_pages_changed"
	default:
		return "unknown"
	}
}

// PageEvent carries the paging state at the moment an event fired.
type PageEvent struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
	NumPages int `json:"num_pages"`
}

// Property names a computed read-only value for generic change signals.
type Property int

const (
	PropPage Property = iota
	PropPageSize
	PropNumPages
	PropMaxPages
)

// String returns a stable name for the property.
func (p Property) String() string {
	switch p {
	case PropPage:
		return "page"
	case PropPageSize:
		return "page_size"
	case PropNumPages:
		return "num_pages"
	case PropMaxPages:
		return "max_pages"
	default:
		return "unknown"
	}
}

// OnPageEvent registers fn for the three typed paging events. Events are
// delivered synchronously, before the triggering call returns.
func (e *Engine[T]) OnPageEvent(fn func(kind PageEventKind, ev PageEvent)) {
	e.pageSubs = append(e.pageSubs, fn)
}

// OnPropertyChanged registers fn for generic value-changed signals on the
// computed paging properties.
func (e *Engine[T]) OnPropertyChanged(fn func(prop Property)) {
	e.propSubs = append(e.propSubs, fn)
}

func (e *Engine[T]) emitPageEvent(kind PageEventKind) {
	ev := PageEvent{Page: e.page, PageSize: e.pageSize, NumPages: e.NumPages()}
	for _, fn := range e.pageSubs {
		fn(kind, ev)
	}
}

func (e *Engine[T]) emitPropertyChanged(prop Property) {
	for _, fn := range e.propSubs {
		fn(prop)
	}
}
