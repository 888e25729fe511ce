package filter

import "strings"

// Mode selects which part of the catalog is eligible before tag and search narrowing.
type Mode string

const (
	ModeAll           Mode = "all"
	ModeFavoritesOnly Mode = "favoritesOnly"
)

// Criteria is the combined set of view-narrowing parameters.
// The zero value shows the whole catalog. Transitions return a new value; a tag and
// favorites-only mode are never active together.
type Criteria struct {
	Mode   Mode   `json:"membershipMode"`
	Tag    string `json:"activeTag"`
	Search string `json:"searchQuery"`
}

// Default is the initial criteria of a session: whole catalog, no tag, no search.
func Default() Criteria {
	return Criteria{Mode: ModeAll}
}

// FavoritesOnly reports whether the favorites-only mode is active.
func (c Criteria) FavoritesOnly() bool {
	return c.Mode == ModeFavoritesOnly
}

// ToggleFavoritesOnly flips between all and favorites-only. Entering favorites-only clears the tag.
func (c Criteria) ToggleFavoritesOnly() Criteria {
	if c.FavoritesOnly() {
		c.Mode = ModeAll
		return c
	}
	c.Mode = ModeFavoritesOnly
	c.Tag = ""
	return c
}

// ShowAll resets the mode to all and clears the tag. Search is kept.
func (c Criteria) ShowAll() Criteria {
	c.Mode = ModeAll
	c.Tag = ""
	return c
}

// SelectTag activates tag, replacing any previous one and forcing mode all.
// Selecting the active tag again clears it.
func (c Criteria) SelectTag(tag string) Criteria {
	if tag == "" || tag == c.Tag {
		c.Tag = ""
		return c
	}
	c.Tag = tag
	c.Mode = ModeAll
	return c
}

// WithSearch sets the free-text query. It composes with every mode and tag.
func (c Criteria) WithSearch(q string) Criteria {
	c.Search = q
	return c
}

// normalizedSearch is the lowercase, trimmed query the pipeline matches with.
func (c Criteria) normalizedSearch() string {
	return strings.ToLower(strings.TrimSpace(c.Search))
}
