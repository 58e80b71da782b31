package hits

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchemaMismatch reports a row wider than Schema, which means the aligner
// emitted a different layout than the one requested.
var ErrSchemaMismatch = errors.New("hits: column count exceeds schema")

// Record is one parsed row. Values are positional against Schema; trailing
// fields missing from a short row are absent, not empty-but-present.
type Record struct {
	values []string
}

// NewRecord builds a Record from positional values. Extra values beyond
// SchemaWidth are an error.
func NewRecord(values ...string) (Record, error) {
	if len(values) > SchemaWidth {
		return Record{}, fmt.Errorf("%w: got %d columns, want at most %d", ErrSchemaMismatch, len(values), SchemaWidth)
	}
	return Record{values: append([]string(nil), values...)}, nil
}

// ParseLine splits one tab-separated row and zips it against Schema.
func ParseLine(line string) (Record, error) {
	line = strings.TrimRight(line, "\r")
	return NewRecord(strings.Split(line, "\t")...)
}

// Len is the number of fields present in the row.
func (r Record) Len() int { return len(r.values) }

// Has reports whether field was present in the row.
func (r Record) Has(field string) bool {
	i := Index(field)
	return i >= 0 && i < len(r.values)
}

// Get returns the value for field, or "" when the field is absent.
func (r Record) Get(field string) string {
	i := Index(field)
	if i < 0 || i >= len(r.values) {
		return ""
	}
	return r.values[i]
}

// Values returns a full-width copy of the row with absent fields as "".
func (r Record) Values() []string {
	out := make([]string, SchemaWidth)
	copy(out, r.values)
	return out
}

// Map returns the present fields keyed by name.
func (r Record) Map() map[string]string {
	m := make(map[string]string, len(r.values))
	for i, v := range r.values {
		m[Schema[i]] = v
	}
	return m
}

func (r Record) QueryID() string { return r.Get(FieldQuerySeqID) }
