package domain

import "fmt"

// ColumnSpec is the wire form of a column descriptor: which record field it
// reads, how it is displayed, and whether search considers it. Display names
// arrive precomputed; localization happens upstream.
type ColumnSpec struct {
	Field           string   `json:"field" msgpack:"field"`
	DisplayIndex    int      `json:"display_index" msgpack:"display_index"`
	LocalizationKey string   `json:"localization_key,omitempty" msgpack:"localization_key,omitempty"`
	DisplayNames    []string `json:"display_names,omitempty" msgpack:"display_names,omitempty"`
	Searchable      bool     `json:"searchable" msgpack:"searchable"`
}

// Validate checks the column descriptor is usable.
func (c *ColumnSpec) Validate() error {
	if c.Field == "" {
		return fmt.Errorf("column spec requires a field name")
	}
	return nil
}

// Dataset bundles a record set with the column metadata a view needs.
type Dataset struct {
	Name    string       `json:"name" msgpack:"name"`
	Columns []ColumnSpec `json:"columns" msgpack:"columns"`
	Records []Record     `json:"records" msgpack:"records"`
}

// Validate checks the dataset can back a view.
func (d *Dataset) Validate() error {
	if len(d.Columns) == 0 {
		return fmt.Errorf("dataset %q has no columns", d.Name)
	}
	for i := range d.Columns {
		if err := d.Columns[i].Validate(); err != nil {
			return fmt.Errorf("dataset %q: column %d: %w", d.Name, i, err)
		}
	}
	return nil
}

// SortField is one key of a multi-field sort request.
type SortField struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc,omitempty"`
}
