// Package search implements the shared search/filter predicates. Both
// predicates AND together; neither ever reorders results.
package search

import "strings"

// FilterAll is the sentinel categorical filter meaning "no filter".
const FilterAll = "all"

// MatchesQuery reports whether the query is a case-insensitive substring of
// any of the searchable fields. An empty query matches everything.
func MatchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// MatchesFilter reports whether value satisfies the categorical filter.
// An empty filter or the "all" sentinel (any case) matches everything;
// otherwise the comparison is exact and case-insensitive.
func MatchesFilter(filter, value string) bool {
	if filter == "" || strings.EqualFold(filter, FilterAll) {
		return true
	}
	return strings.EqualFold(filter, value)
}
