package store

import (
	"slices"
	"strings"
)

// Query describes a filtered, projected, sorted read.
type Query struct {
	// Filter holds field equality conditions, all of which must match.
	// A multi-valued field matches when any of its values is equal.
	Filter map[string]string
	// Fields lists the fields to keep. Empty keeps everything.
	Fields []string
	Sort   []SortField
}

// SortField orders results by one field.
type SortField struct {
	Field string
	Desc  bool
}

// Where returns a query filtered on a single field.
func Where(field, value string) Query {
	return Query{Filter: map[string]string{field: value}}
}

// Select sets the projection.
func (q Query) Select(fields ...string) Query {
	q.Fields = fields
	return q
}

// OrderBy appends an ascending sort key.
func (q Query) OrderBy(field string) Query {
	q.Sort = append(slices.Clone(q.Sort), SortField{Field: field})
	return q
}

// OrderByDesc appends a descending sort key.
func (q Query) OrderByDesc(field string) Query {
	q.Sort = append(slices.Clone(q.Sort), SortField{Field: field, Desc: true})
	return q
}

// Matches reports whether doc satisfies every filter condition.
func (q Query) Matches(doc Document) bool {
	for field, want := range q.Filter {
		if !slices.Contains(doc.Field(field), want) {
			return false
		}
	}
	return true
}

// Apply filters, sorts and projects docs in place order and returns the
// resulting slice. Documents are mutated by the projection, so callers must
// pass freshly decoded values.
func Apply[T Document](q Query, docs []T) []T {
	out := docs[:0]
	for _, d := range docs {
		if q.Matches(d) {
			out = append(out, d)
		}
	}

	if len(q.Sort) > 0 {
		slices.SortStableFunc(out, func(a, b T) int {
			for _, s := range q.Sort {
				c := strings.Compare(first(a.Field(s.Field)), first(b.Field(s.Field)))
				if s.Desc {
					c = -c
				}
				if c != 0 {
					return c
				}
			}
			return 0
		})
	}

	if len(q.Fields) > 0 {
		for _, d := range out {
			d.Project(q.Fields)
		}
	}
	return out
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
