package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnBuilder(t *testing.T) {
	col := NewColumn("amount", func(it item) any { return it.value }).
		WithDisplayIndex(2).
		WithLocalizationKey("columns.amount").
		WithDisplayNames("Amount", "Total", "Amount").
		AsSearchable()

	assert.Equal(t, "amount", col.PropertyID)
	assert.Equal(t, 2, col.DisplayIndex)
	assert.Equal(t, "columns.amount", col.LocalizationKey)
	// duplicate display names collapse
	assert.Equal(t, []string{"Amount", "Total"}, col.DisplayNames)
	assert.True(t, col.Searchable)
	assert.Equal(t, SortNone, col.Direction)

	require.NotNil(t, col.Value)
	assert.Equal(t, 7, col.Value(item{value: 7}))
}

func TestColumnDisplayNameLookup(t *testing.T) {
	col := NewColumn("n", func(it item) any { return it.name }).WithDisplayNames("Name")

	assert.True(t, col.HasDisplayName("Name"))
	assert.False(t, col.HasDisplayName("name"))
	assert.True(t, col.IsDisplayColumn())

	bare := NewColumn("x", func(it item) any { return nil })
	assert.False(t, bare.IsDisplayColumn())
}

func TestSortDirectionString(t *testing.T) {
	assert.Equal(t, "none", SortNone.String())
	assert.Equal(t, "ascending", SortAscending.String())
	assert.Equal(t, "descending", SortDescending.String())
	assert.Panics(t, func() { _ = SortDirection(42).String() })
}

func TestSortDirectionAdvance(t *testing.T) {
	assert.Equal(t, SortAscending, SortNone.advance())
	assert.Equal(t, SortDescending, SortAscending.advance())
	assert.Equal(t, SortAscending, SortDescending.advance())
	assert.Panics(t, func() { SortDirection(-1).advance() })
}
