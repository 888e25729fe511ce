// Package filter computes the visible part of the designer catalog.
package filter

import (
	"strings"

	"designer-shortlist/internal/domain"
)

// Membership answers whether a listing id is favorited.
type Membership interface {
	Has(id int64) bool
}

// Set is a plain Membership backed by a map.
type Set map[int64]struct{}

// NewSet builds a Set from ids.
func NewSet(ids ...int64) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Set) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Apply returns the listings of catalog that pass every active predicate, in catalog order:
// favorites-only membership, then tag (case-insensitive substring of any tag), then search
// (case-insensitive substring of name, title, description, location or any tag).
// The result is never nil, so an empty match is distinguishable from no catalog.
// A nil favorites is treated as the empty set.
func Apply(catalog []domain.Listing, c Criteria, favorites Membership) []domain.Listing {
	tag := strings.ToLower(c.Tag)
	query := c.normalizedSearch()

	out := make([]domain.Listing, 0, len(catalog))
	for _, l := range catalog {
		if c.FavoritesOnly() && (favorites == nil || !favorites.Has(l.ID)) {
			continue
		}
		if tag != "" && !anyTagContains(l.Tags, tag) {
			continue
		}
		if query != "" && !matchesQuery(l, query) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesQuery(l domain.Listing, query string) bool {
	for _, field := range []string{l.Name, l.Title, l.Description, l.Location} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return anyTagContains(l.Tags, query)
}

// anyTagContains expects needle already lowercased.
func anyTagContains(tags []string, needle string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}
