// Package search derives a filtered view of the publication collection from
// a free-text query. It is a pure function of its inputs: no state, same
// inputs => same output, order preserved.
package search

import (
	"strconv"
	"strings"

	"pubcat/internal/model"
)

// Filter returns the publications matching the query. An empty query returns
// the collection as-is. Otherwise a record matches when the query is a
// case-insensitive substring of its title, of "first last", or of the
// decimal form of its year. Records without a title or year simply cannot
// match on that criterion.
func Filter(pubs []model.Publication, query string) []model.Publication {
	if query == "" {
		return pubs
	}
	q := strings.ToLower(query)

	var out []model.Publication
	for _, p := range pubs {
		if Matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a single record matches a pre-lowercased query.
func Matches(p model.Publication, q string) bool {
	if p.Title != nil && strings.Contains(strings.ToLower(*p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.AuthorName()), q) {
		return true
	}
	if p.Year != nil && strings.Contains(strconv.Itoa(*p.Year), q) {
		return true
	}
	return false
}
