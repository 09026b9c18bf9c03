package domain

// Record is an untyped row: field name to value. The HTTP layer serves views
// over Records; typed callers use pkg/view directly with their own type.
type Record map[string]interface{}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
