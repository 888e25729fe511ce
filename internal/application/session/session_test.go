package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"designer-shortlist/internal/application/catalog"
	"designer-shortlist/internal/application/filter"
	"designer-shortlist/internal/application/notice"
	"designer-shortlist/internal/application/shortlist"
	"designer-shortlist/internal/domain"
	"designer-shortlist/internal/infrastructure/cache"
	"designer-shortlist/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu           sync.Mutex
	catalog      []domain.Listing
	catalogErr   error
	favorites    []domain.Listing
	favoritesErr error
	updateErr    error
	updates      int

	// when set, UpdateShortlist signals entered and blocks on gate
	gate    chan error
	entered chan struct{}
}

func (f *fakeAPI) FetchCatalog(context.Context) ([]domain.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.catalog, f.catalogErr
}

func (f *fakeAPI) FetchFavorites(context.Context, string) ([]domain.Listing, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.favorites, f.favoritesErr
}

func (f *fakeAPI) UpdateShortlist(context.Context, int64, domain.ShortlistAction, string) error {
	f.mu.Lock()
	f.updates++
	err, gate, entered := f.updateErr, f.gate, f.entered
	f.mu.Unlock()
	if gate != nil {
		entered <- struct{}{}
		return <-gate
	}
	return err
}

func newSession(api *fakeAPI) (*Session, *notice.Board, *cache.Snapshot) {
	snap := &cache.Snapshot{Store: cache.NewMemoryStore(), Key: "shortlistedDesigners"}
	board := notice.NewBoard(5 * time.Second)
	resolver := &catalog.Resolver{Remote: api, Cache: snap}
	engine := shortlist.NewEngine("default_user", api, snap)
	return New(resolver, engine, board), board, snap
}

func viewIDs(v View) []int64 {
	out := make([]int64, len(v.Listings))
	for i, l := range v.Listings {
		out[i] = l.ID
	}
	return out
}

func TestView_BeforeLoadIsNotLoaded(t *testing.T) {
	s, _, _ := newSession(&fakeAPI{catalog: domain.SampleListings()})
	v := s.View()
	assert.False(t, v.Loaded)
	assert.Nil(t, v.Listings)

	_, err := s.Catalog()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestLoad_RemoteCatalogAndFavorites(t *testing.T) {
	samples := domain.SampleListings()
	api := &fakeAPI{catalog: samples, favorites: []domain.Listing{samples[0], samples[2]}}
	s, board, _ := newSession(api)

	report := s.Load(context.Background())
	assert.Equal(t, catalog.TierRemote, report.CatalogTier)
	assert.Equal(t, catalog.TierRemote, report.FavoritesTier)
	assert.False(t, report.Degraded)
	assert.Empty(t, board.All())

	v := s.View()
	assert.True(t, v.Loaded)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, viewIDs(v))
	assert.Equal(t, []int64{1, 3}, s.Favorites())
	assert.True(t, s.IsFavorite(3))
}

func TestLoad_DegradedCatalogPostsNoticeOnce(t *testing.T) {
	api := &fakeAPI{catalogErr: apperr.ErrTransport, favoritesErr: apperr.ErrTransport}
	s, board, _ := newSession(api)

	report := s.Load(context.Background())
	assert.True(t, report.Degraded)
	assert.Equal(t, catalog.TierBuiltin, report.CatalogTier)
	assert.Equal(t, catalog.TierEmpty, report.FavoritesTier)

	cat, err := s.Catalog()
	require.NoError(t, err)
	assert.Equal(t, domain.SampleListings(), cat)
	assert.Equal(t, 1, board.Count(notice.OfflineData))
	require.Len(t, s.Notices(), 1)
}

func TestLoad_PrunesFavoritesMissingFromCatalog(t *testing.T) {
	samples := domain.SampleListings()
	api := &fakeAPI{
		catalog:   samples[:3],
		favorites: []domain.Listing{samples[1], samples[4], {ID: 99}},
	}
	s, _, _ := newSession(api)

	report := s.Load(context.Background())
	assert.Equal(t, 2, report.Pruned)
	assert.Equal(t, []int64{2}, s.Favorites())
}

func TestLoad_FavoritesFromCacheWhenRemoteFails(t *testing.T) {
	api := &fakeAPI{catalog: domain.SampleListings(), favoritesErr: apperr.ErrProtocol}
	s, _, snap := newSession(api)
	require.NoError(t, snap.Save(context.Background(), []int64{4, 5}))

	report := s.Load(context.Background())
	assert.Equal(t, catalog.TierCache, report.FavoritesTier)
	assert.Equal(t, []int64{4, 5}, s.Favorites())
}

func TestFavoritesOnlyExample(t *testing.T) {
	samples := domain.SampleListings()
	api := &fakeAPI{catalog: samples, favorites: []domain.Listing{samples[2], samples[0]}}
	s, _, _ := newSession(api)
	s.Load(context.Background())

	s.SelectTag("Luxury")
	v := s.ToggleFavoritesOnly()
	assert.Equal(t, filter.ModeFavoritesOnly, v.Criteria.Mode)
	assert.Equal(t, "", v.Criteria.Tag)
	assert.Equal(t, []int64{1, 3}, viewIDs(v))
}

func TestCriteriaTransitions(t *testing.T) {
	s, _, _ := newSession(&fakeAPI{catalog: domain.SampleListings()})
	s.Load(context.Background())

	v := s.SetSearch("wellness")
	assert.Equal(t, []int64{3}, viewIDs(v))

	v = s.SelectTag("Modern")
	assert.True(t, v.Loaded)
	assert.Empty(t, v.Listings, "zero matches is a loaded, empty view")

	v = s.SelectTag("Modern")
	assert.Equal(t, "", v.Criteria.Tag)
	assert.Equal(t, []int64{3}, viewIDs(v))

	v = s.ShowAll()
	assert.Equal(t, "wellness", v.Criteria.Search)
	assert.Equal(t, filter.ModeAll, s.Criteria().Mode)
}

func TestToggle_SuccessAndFailure(t *testing.T) {
	api := &fakeAPI{catalog: domain.SampleListings()}
	s, board, snap := newSession(api)
	s.Load(context.Background())

	out, err := s.Toggle(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, out.Favorite)
	ids, err := snap.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)

	api.mu.Lock()
	api.updateErr = apperr.ErrTransport
	api.mu.Unlock()

	out, err = s.Toggle(context.Background(), 2)
	assert.ErrorIs(t, err, apperr.ErrTransport)
	assert.True(t, out.Reverted)
	assert.True(t, s.IsFavorite(2))
	assert.Equal(t, 1, board.Count(notice.ShortlistFailed))
}

func TestToggle_UnknownListing(t *testing.T) {
	api := &fakeAPI{catalog: domain.SampleListings()}
	s, _, _ := newSession(api)
	s.Load(context.Background())

	_, err := s.Toggle(context.Background(), 404)
	assert.ErrorIs(t, err, ErrUnknownListing)
	assert.Equal(t, 0, api.updates)
}

func TestToggle_FavoritesOnlyViewFollowsToggle(t *testing.T) {
	samples := domain.SampleListings()
	api := &fakeAPI{catalog: samples, favorites: []domain.Listing{samples[0]}}
	s, _, _ := newSession(api)
	s.Load(context.Background())
	s.ToggleFavoritesOnly()

	_, err := s.Toggle(context.Background(), 1)
	require.NoError(t, err)
	v := s.View()
	assert.True(t, v.Loaded)
	assert.Empty(t, v.Listings)
}

func TestTagsAndListing(t *testing.T) {
	s, _, _ := newSession(&fakeAPI{catalog: domain.SampleListings()})
	s.Load(context.Background())

	tags := s.Tags()
	assert.Equal(t, "Modern", tags[0])
	assert.Len(t, tags, 14, "Sustainable appears twice but is listed once")

	l, ok := s.Listing(4)
	require.True(t, ok)
	assert.Equal(t, "Arjun Menon", l.Name)
	_, ok = s.Listing(40)
	assert.False(t, ok)
	assert.Equal(t, "default_user", s.UserID())
}

func TestToggle_ReloadDuringToggleKeepsConfirmedAdd(t *testing.T) {
	api := &fakeAPI{
		catalog: domain.SampleListings(),
		gate:    make(chan error),
		entered: make(chan struct{}),
	}
	s, _, snap := newSession(api)
	s.Load(context.Background())

	done := make(chan shortlist.Outcome)
	go func() {
		out, _ := s.Toggle(context.Background(), 2)
		done <- out
	}()
	<-api.entered

	// the server has not recorded the add yet
	s.Load(context.Background())
	assert.True(t, s.IsFavorite(2))

	api.gate <- nil
	out := <-done
	assert.True(t, out.Favorite)
	assert.True(t, s.IsFavorite(2))
	assert.Equal(t, []int64{2}, s.Favorites())

	ids, err := snap.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, ids)
}
