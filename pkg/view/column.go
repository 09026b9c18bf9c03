package view

import "slices"

// SortDirection is the per-column sort state.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

// String returns a stable lowercase name for the direction.
func (d SortDirection) String() string {
	switch d {
	case SortNone:
		return "none"
	case SortAscending:
		return "ascending"
	case SortDescending:
		return "descending"
	default:
		panic("view: invalid sort direction")
	}
}

// advance moves a direction along the toggle cycle. A column that has been
// sorted once never returns to SortNone.
func (d SortDirection) advance() SortDirection {
	switch d {
	case SortNone, SortDescending:
		return SortAscending
	case SortAscending:
		return SortDescending
	default:
		panic("view: invalid sort direction")
	}
}

// Column describes one record property: how to extract its value, how it is
// displayed, and whether the search stage considers it. The engine never
// inspects records directly; every access goes through a Column's Value func.
type Column[T any] struct {
	PropertyID      string
	DisplayIndex    int
	LocalizationKey string
	DisplayNames    []string
	Searchable      bool
	Direction       SortDirection

	// Value extracts the column's value from a record. Required.
	Value func(T) any
}

// NewColumn creates a column descriptor for the given property.
func NewColumn[T any](propertyID string, value func(T) any) *Column[T] {
	return &Column[T]{
		PropertyID: propertyID,
		Value:      value,
	}
}

// WithDisplayNames appends display names under which the column can be
// resolved by Sort and GetDisplayColumn.
func (c *Column[T]) WithDisplayNames(names ...string) *Column[T] {
	for _, name := range names {
		if !slices.Contains(c.DisplayNames, name) {
			c.DisplayNames = append(c.DisplayNames, name)
		}
	}
	return c
}

// WithDisplayIndex sets the column's position in the display order.
func (c *Column[T]) WithDisplayIndex(i int) *Column[T] {
	c.DisplayIndex = i
	return c
}

// WithLocalizationKey sets the key used to look up localized display names.
func (c *Column[T]) WithLocalizationKey(key string) *Column[T] {
	c.LocalizationKey = key
	return c
}

// AsSearchable marks the column as a candidate for the search stage.
func (c *Column[T]) AsSearchable() *Column[T] {
	c.Searchable = true
	return c
}

// HasDisplayName reports whether name is one of the column's display names.
func (c *Column[T]) HasDisplayName(name string) bool {
	return slices.Contains(c.DisplayNames, name)
}

// IsDisplayColumn reports whether the column carries at least one display name.
func (c *Column[T]) IsDisplayColumn() bool {
	return len(c.DisplayNames) > 0
}
