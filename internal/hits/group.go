package hits

import (
	"errors"
	"fmt"
)

// Options controls parsing side checks.
type Options struct {
	// UseNames enables taxonomy validation for descriptive FASTA headers.
	UseNames bool
}

// NameFields must be populated when descriptive names are requested.
var NameFields = []string{FieldSubjectAcc, FieldTaxIDs, FieldSciNames}

// Warning is a non-fatal data-quality finding on one record.
type Warning struct {
	Accession string
	Field     string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s missing data: %s; consider rebuilding the alignment database with updated taxonomy data", w.Accession, w.Field)
}

// Aggregated maps query id to its hits, keeping first-seen key order.
type Aggregated struct {
	keys   []string
	groups map[string][]Record
}

func NewAggregated() *Aggregated {
	return &Aggregated{groups: make(map[string][]Record)}
}

// Add appends rec to its query's group, creating the group on first sight.
func (a *Aggregated) Add(rec Record) {
	k := rec.QueryID()
	if _, ok := a.groups[k]; !ok {
		a.keys = append(a.keys, k)
	}
	a.groups[k] = append(a.groups[k], rec)
}

// Keys returns query ids in encounter order.
func (a *Aggregated) Keys() []string { return append([]string(nil), a.keys...) }

// Hits returns the group for key in line order.
func (a *Aggregated) Hits(key string) []Record { return a.groups[key] }

// Len is the number of groups.
func (a *Aggregated) Len() int { return len(a.keys) }

// Total is the number of records across all groups.
func (a *Aggregated) Total() int {
	n := 0
	for _, k := range a.keys {
		n += len(a.groups[k])
	}
	return n
}

// MissingNames lists the NameFields of rec holding a placeholder value.
func MissingNames(rec Record) []string {
	var out []string
	for _, f := range NameFields {
		if isPlaceholder(rec.Get(f)) {
			out = append(out, f)
		}
	}
	return out
}

func isPlaceholder(v string) bool {
	return v == "" || v == "0" || v == "N/A"
}

// Group parses lines into a new Aggregated; see AddLines.
func Group(lines []string, opts Options, warn func(Warning)) (*Aggregated, error) {
	agg := NewAggregated()
	return agg, agg.AddLines(lines, opts, warn)
}

// AddLines parses lines and appends the records to their query groups.
// Empty lines are skipped and short rows are kept. A row wider than Schema
// is rejected with ErrSchemaMismatch and parsing continues; the returned
// error joins one error per rejected row. warn, if non-nil, receives one
// Warning per missing name field when opts.UseNames is set.
func (a *Aggregated) AddLines(lines []string, opts Options, warn func(Warning)) error {
	var errs []error
	for i, line := range lines {
		if line == "" || line == "\r" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", i+1, err))
			continue
		}
		if opts.UseNames && warn != nil {
			for _, f := range MissingNames(rec) {
				warn(Warning{Accession: rec.Get(FieldSubjectVer), Field: f})
			}
		}
		a.Add(rec)
	}
	return errors.Join(errs...)
}
