// Package session is the client state for one user: catalog, favorites, filter criteria and notices.
package session

import (
	"context"
	"errors"
	"sync"

	"designer-shortlist/internal/application/catalog"
	"designer-shortlist/internal/application/filter"
	"designer-shortlist/internal/application/notice"
	"designer-shortlist/internal/application/shortlist"
	"designer-shortlist/internal/domain"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownListing = errors.New("listing not in catalog")
	ErrNotLoaded      = errors.New("catalog not loaded")
)

// View is what the presentation layer renders. Loaded is false until the first Load
// finishes; a loaded view with no listings means nothing matched.
type View struct {
	Loaded   bool             `json:"loaded"`
	Listings []domain.Listing `json:"listings"`
	Criteria filter.Criteria  `json:"criteria"`
}

// LoadReport summarizes where the data of the last Load came from.
type LoadReport struct {
	CatalogTier   string
	FavoritesTier string
	Degraded      bool
	Pruned        int
}

// Session lives as long as the page does. The view layer only reads it.
type Session struct {
	resolver *catalog.Resolver
	engine   *shortlist.Engine
	board    *notice.Board

	mu       sync.RWMutex
	loaded   bool
	catalog  []domain.Listing
	index    map[int64]struct{}
	criteria filter.Criteria
}

// New builds a session for the user the engine synchronizes.
func New(resolver *catalog.Resolver, engine *shortlist.Engine, board *notice.Board) *Session {
	return &Session{
		resolver: resolver,
		engine:   engine,
		board:    board,
		criteria: filter.Default(),
	}
}

// UserID is the user whose favorites this session shows.
func (s *Session) UserID() string {
	return s.engine.UserID()
}

// Load resolves catalog and favorites concurrently, then drops favorites that the catalog
// no longer contains. A degraded catalog posts the offline notice once per Load. Calling
// Load again replaces both.
func (s *Session) Load(ctx context.Context) LoadReport {
	var (
		cat  catalog.CatalogResult
		favs catalog.FavoritesResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cat = s.resolver.LoadCatalog(gctx)
		return nil
	})
	g.Go(func() error {
		favs = s.resolver.LoadFavoriteSet(gctx, s.engine.UserID())
		return nil
	})
	_ = g.Wait() // resolvers never fail

	index := make(map[int64]struct{}, len(cat.Listings))
	for _, l := range cat.Listings {
		index[l.ID] = struct{}{}
	}

	s.mu.Lock()
	s.catalog = cat.Listings
	s.index = index
	s.loaded = true
	s.mu.Unlock()

	s.engine.Replace(favs.IDs)
	pruned := s.engine.Prune(func(id int64) bool {
		_, ok := index[id]
		return ok
	})

	if cat.Degraded {
		s.board.Post(notice.OfflineData)
	}
	log.Info().
		Str("user_id", s.engine.UserID()).
		Str("catalog_tier", cat.Tier).
		Str("favorites_tier", favs.Tier).
		Int("listings", len(cat.Listings)).
		Int("favorites", s.engine.Count()).
		Int("pruned", pruned).
		Msg("Session loaded")

	return LoadReport{
		CatalogTier:   cat.Tier,
		FavoritesTier: favs.Tier,
		Degraded:      cat.Degraded,
		Pruned:        pruned,
	}
}

// View runs the filter pipeline over the current catalog.
func (s *Session) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return View{Criteria: s.criteria}
	}
	return View{
		Loaded:   true,
		Listings: filter.Apply(s.catalog, s.criteria, s.engine),
		Criteria: s.criteria,
	}
}

// Catalog returns the loaded catalog, or ErrNotLoaded.
func (s *Session) Catalog() ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	out := make([]domain.Listing, len(s.catalog))
	copy(out, s.catalog)
	return out, nil
}

// Listing looks up one catalog entry by id.
func (s *Session) Listing(id int64) (domain.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.catalog {
		if l.ID == id {
			return l, true
		}
	}
	return domain.Listing{}, false
}

// Tags lists the distinct catalog tags in first-seen order.
func (s *Session) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	var tags []string
	for _, l := range s.catalog {
		for _, t := range l.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// IsFavorite reports whether id is favorited.
func (s *Session) IsFavorite(id int64) bool {
	return s.engine.Has(id)
}

// Favorites returns the favorited ids in ascending order.
func (s *Session) Favorites() []int64 {
	return s.engine.IDs()
}

// Criteria returns the active filter criteria.
func (s *Session) Criteria() filter.Criteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

func (s *Session) update(fn func(filter.Criteria) filter.Criteria) View {
	s.mu.Lock()
	s.criteria = fn(s.criteria)
	s.mu.Unlock()
	return s.View()
}

// ToggleFavoritesOnly switches between the whole catalog and favorites only.
func (s *Session) ToggleFavoritesOnly() View {
	return s.update(filter.Criteria.ToggleFavoritesOnly)
}

// ShowAll returns to the whole catalog and clears the tag.
func (s *Session) ShowAll() View {
	return s.update(filter.Criteria.ShowAll)
}

// SelectTag activates tag, or clears it when it is already active.
func (s *Session) SelectTag(tag string) View {
	return s.update(func(c filter.Criteria) filter.Criteria { return c.SelectTag(tag) })
}

// SetSearch replaces the free-text query.
func (s *Session) SetSearch(q string) View {
	return s.update(func(c filter.Criteria) filter.Criteria { return c.WithSearch(q) })
}

// Toggle flips the favorite state of a catalog listing. A failed confirmation posts the
// shortlist notice; the outcome tells the view what to show either way.
func (s *Session) Toggle(ctx context.Context, id int64) (shortlist.Outcome, error) {
	s.mu.RLock()
	_, known := s.index[id]
	s.mu.RUnlock()
	if !known {
		return shortlist.Outcome{ID: id}, ErrUnknownListing
	}

	out, err := s.engine.Toggle(ctx, id)
	if out.Reverted {
		s.board.Post(out.Message)
	}
	return out, err
}

// Notices returns the notices currently on screen.
func (s *Session) Notices() []notice.Notice {
	return s.board.Active()
}
