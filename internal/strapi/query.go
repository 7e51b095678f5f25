package strapi

import (
	"fmt"
	"net/url"
	"strings"
)

// Populate selects a relation plus the minimal field set the UI renders.
// Nested entries populate relations of the relation, one level at a time.
type Populate struct {
	Relation string
	Fields   []string
	Nested   []Populate
}

// Query describes one CMS read: field selection, relation population,
// filters, sort, and pagination. Encode produces the bracketed query-string
// syntax the CMS expects. Component order is fixed and slices preserve
// insertion order, so identical queries encode to byte-identical strings;
// the encoded form doubles as the downstream cache key.
type Query struct {
	Fields   []string
	Populate []Populate
	Filters  *Filters
	Sort     []string
	Page     int
	PageSize int
}

// Encode renders the query string without a leading separator. Keys keep
// literal brackets; values are percent-encoded.
func (q Query) Encode() string {
	var pairs []pair

	for _, relation := range q.Populate {
		pairs = relation.appendPairs(pairs, "populate")
	}
	for i, field := range q.Fields {
		pairs = append(pairs, pair{fmt.Sprintf("fields[%d]", i), field})
	}
	if q.Filters != nil {
		pairs = append(pairs, q.Filters.pairs("filters")...)
	}
	for i, sort := range q.Sort {
		pairs = append(pairs, pair{fmt.Sprintf("sort[%d]", i), sort})
	}
	if q.Page > 0 {
		pairs = append(pairs, pair{"pagination[page]", fmt.Sprintf("%d", q.Page)})
	}
	if q.PageSize > 0 {
		pairs = append(pairs, pair{"pagination[pageSize]", fmt.Sprintf("%d", q.PageSize)})
	}

	encoded := make([]string, 0, len(pairs))
	for _, p := range pairs {
		encoded = append(encoded, p.key+"="+url.QueryEscape(p.value))
	}
	return strings.Join(encoded, "&")
}

func (p Populate) appendPairs(pairs []pair, prefix string) []pair {
	base := fmt.Sprintf("%s[%s]", prefix, p.Relation)
	if len(p.Fields) == 0 && len(p.Nested) == 0 {
		return append(pairs, pair{base, "true"})
	}
	for i, field := range p.Fields {
		pairs = append(pairs, pair{fmt.Sprintf("%s[fields][%d]", base, i), field})
	}
	for _, nested := range p.Nested {
		pairs = nested.appendPairs(pairs, base+"[populate]")
	}
	return pairs
}

type pair struct {
	key   string
	value string
}

// MediaFields is the field set requested for every populated media relation:
// exactly what cards and heroes render, nothing more.
var MediaFields = []string{"url", "alternativeText", "width", "height", "mime"}

// PopulateMedia selects a media relation with the standard field set.
func PopulateMedia(relation string) Populate {
	return Populate{Relation: relation, Fields: MediaFields}
}
