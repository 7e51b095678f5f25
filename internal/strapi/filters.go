package strapi

import (
	"fmt"
	"strconv"
	"strings"
)

// Filters accumulates filter clauses in insertion order. Absent parameters
// contribute no clause at all, keeping the emitted query minimal.
type Filters struct {
	clauses []filterClause
}

type filterClause struct {
	// path segments under filters, e.g. ["categories","slug"].
	path     []string
	operator string
	value    string
	// or holds the disjunction fields for $or clauses; value carries the term.
	or []string
}

// Eq appends an exact-match clause at path.
func (f *Filters) Eq(value string, path ...string) *Filters {
	f.clauses = append(f.clauses, filterClause{path: path, operator: "$eq", value: value})
	return f
}

// Ne appends an exclusion clause at path.
func (f *Filters) Ne(value string, path ...string) *Filters {
	f.clauses = append(f.clauses, filterClause{path: path, operator: "$ne", value: value})
	return f
}

// ContainsI appends a case-insensitive substring clause at path.
func (f *Filters) ContainsI(value string, path ...string) *Filters {
	f.clauses = append(f.clauses, filterClause{path: path, operator: "$containsi", value: value})
	return f
}

// Or appends a case-insensitive containment disjunction over fields.
func (f *Filters) Or(term string, fields ...string) *Filters {
	f.clauses = append(f.clauses, filterClause{operator: "$containsi", value: term, or: fields})
	return f
}

// Empty reports whether no clause has been added.
func (f *Filters) Empty() bool {
	return f == nil || len(f.clauses) == 0
}

func (f *Filters) pairs(prefix string) []pair {
	if f == nil {
		return nil
	}
	var out []pair
	for _, clause := range f.clauses {
		if len(clause.or) > 0 {
			for i, field := range clause.or {
				key := fmt.Sprintf("%s[$or][%d][%s][%s]", prefix, i, field, clause.operator)
				out = append(out, pair{key, clause.value})
			}
			continue
		}
		key := prefix
		for _, segment := range clause.path {
			key += "[" + segment + "]"
		}
		out = append(out, pair{key + "[" + clause.operator + "]", clause.value})
	}
	return out
}

// ContentFilters carries the listing parameters shared by every content
// type. All fields are optional and compose freely; SearchFields names the
// attributes the search term matches against.
type ContentFilters struct {
	Slug         string
	CategorySlug string
	TagSlug      string
	ExcludeID    int
	Search       string
	SearchFields []string
}

// Build converts the parameters into filter clauses. A parameter set with
// nothing present yields nil so no filters key reaches the wire.
func (c ContentFilters) Build() *Filters {
	filters := &Filters{}

	if slug := strings.TrimSpace(c.Slug); slug != "" {
		filters.Eq(slug, "slug")
	}
	if slug := strings.TrimSpace(c.CategorySlug); slug != "" {
		filters.Eq(slug, "categories", "slug")
	}
	if slug := strings.TrimSpace(c.TagSlug); slug != "" {
		filters.Eq(slug, "tags", "slug")
	}
	if c.ExcludeID > 0 {
		filters.Ne(strconv.Itoa(c.ExcludeID), "id")
	}
	if term := strings.TrimSpace(c.Search); term != "" {
		fields := c.SearchFields
		if len(fields) == 0 {
			fields = []string{"title", "excerpt"}
		}
		filters.Or(term, fields...)
	}

	if filters.Empty() {
		return nil
	}
	return filters
}
