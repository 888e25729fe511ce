package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"designer-shortlist/internal/domain"
	"designer-shortlist/internal/infrastructure/cache"
	"designer-shortlist/internal/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	catalog      []domain.Listing
	catalogErr   error
	favorites    []domain.Listing
	favoritesErr error
	catalogCalls int
	favCalls     int
	lastUser     string
}

func (f *fakeRemote) FetchCatalog(context.Context) ([]domain.Listing, error) {
	f.catalogCalls++
	return f.catalog, f.catalogErr
}

func (f *fakeRemote) FetchFavorites(_ context.Context, userID string) ([]domain.Listing, error) {
	f.favCalls++
	f.lastUser = userID
	return f.favorites, f.favoritesErr
}

func TestLoadCatalog_RemoteOrderPreserved(t *testing.T) {
	remote := &fakeRemote{catalog: []domain.Listing{{ID: 9, Name: "Zed"}, {ID: 2, Name: "Amy"}}}
	r := &Resolver{Remote: remote}

	res := r.LoadCatalog(context.Background())
	assert.Equal(t, TierRemote, res.Tier)
	assert.False(t, res.Degraded)
	assert.Empty(t, res.Attempts)
	require.Len(t, res.Listings, 2)
	assert.Equal(t, int64(9), res.Listings[0].ID)
}

func TestLoadCatalog_EmptyRemoteCatalogIsNotAFailure(t *testing.T) {
	r := &Resolver{Remote: &fakeRemote{catalog: []domain.Listing{}}}
	res := r.LoadCatalog(context.Background())
	assert.Equal(t, TierRemote, res.Tier)
	assert.Empty(t, res.Listings)
}

func TestLoadCatalog_FallsBackToBuiltin(t *testing.T) {
	for name, err := range map[string]error{
		"transport": fmt.Errorf("%w: connection refused", apperr.ErrTransport),
		"protocol":  fmt.Errorf("%w: success=false", apperr.ErrProtocol),
	} {
		t.Run(name, func(t *testing.T) {
			remote := &fakeRemote{catalogErr: err}
			r := &Resolver{Remote: remote}

			res := r.LoadCatalog(context.Background())
			assert.True(t, res.Degraded)
			assert.Equal(t, TierBuiltin, res.Tier)
			assert.Equal(t, domain.SampleListings(), res.Listings)
			require.Len(t, res.Attempts, 1)
			assert.Equal(t, TierRemote, res.Attempts[0].Tier)
			assert.ErrorIs(t, res.Attempts[0].Err, err)
			assert.Equal(t, 1, remote.catalogCalls, "remote must not be retried")
		})
	}
}

func TestLoadCatalog_NilPayloadIsProtocolFailure(t *testing.T) {
	r := &Resolver{Remote: &fakeRemote{}}
	res := r.LoadCatalog(context.Background())
	assert.True(t, res.Degraded)
	require.Len(t, res.Attempts, 1)
	assert.ErrorIs(t, res.Attempts[0].Err, apperr.ErrProtocol)
}

func TestLoadCatalog_CustomBuiltin(t *testing.T) {
	r := &Resolver{
		Remote:  &fakeRemote{catalogErr: apperr.ErrTransport},
		Builtin: func() []domain.Listing { return []domain.Listing{{ID: 42}} },
	}
	res := r.LoadCatalog(context.Background())
	assert.Equal(t, []domain.Listing{{ID: 42}}, res.Listings)
}

func TestLoadFavoriteSet_RemoteExtractsIDs(t *testing.T) {
	remote := &fakeRemote{favorites: []domain.Listing{{ID: 3}, {ID: 1}}}
	r := &Resolver{Remote: remote, Cache: &cache.Snapshot{Store: cache.NewMemoryStore(), Key: "k"}}

	res := r.LoadFavoriteSet(context.Background(), "u-7")
	assert.Equal(t, TierRemote, res.Tier)
	assert.Equal(t, []int64{3, 1}, res.IDs)
	assert.Equal(t, "u-7", remote.lastUser)
}

func TestLoadFavoriteSet_FallsBackToCache(t *testing.T) {
	store := cache.NewMemoryStore()
	snap := &cache.Snapshot{Store: store, Key: "shortlistedDesigners"}
	require.NoError(t, snap.Save(context.Background(), []int64{2, 4}))

	r := &Resolver{Remote: &fakeRemote{favoritesErr: apperr.ErrTransport}, Cache: snap}
	res := r.LoadFavoriteSet(context.Background(), "u")
	assert.Equal(t, TierCache, res.Tier)
	assert.Equal(t, []int64{2, 4}, res.IDs)
	require.Len(t, res.Attempts, 1)
}

func TestLoadFavoriteSet_CacheMissYieldsEmpty(t *testing.T) {
	snap := &cache.Snapshot{Store: cache.NewMemoryStore(), Key: "shortlistedDesigners"}
	r := &Resolver{Remote: &fakeRemote{favoritesErr: apperr.ErrProtocol}, Cache: snap}

	res := r.LoadFavoriteSet(context.Background(), "u")
	assert.Equal(t, TierEmpty, res.Tier)
	assert.NotNil(t, res.IDs)
	assert.Empty(t, res.IDs)
	require.Len(t, res.Attempts, 2)
	assert.Equal(t, []string{TierRemote, TierCache}, []string{res.Attempts[0].Tier, res.Attempts[1].Tier})
	assert.True(t, errors.Is(res.Attempts[1].Err, cache.ErrMiss))
}

func TestLoadFavoriteSet_NoCacheConfigured(t *testing.T) {
	r := &Resolver{Remote: &fakeRemote{favoritesErr: apperr.ErrTransport}}
	res := r.LoadFavoriteSet(context.Background(), "u")
	assert.Equal(t, TierEmpty, res.Tier)
	assert.Empty(t, res.IDs)
}

func TestResolve_ExhaustedChain(t *testing.T) {
	boom := errors.New("boom")
	providers := []Provider[int]{
		{Tier: "a", Load: func(context.Context) (int, error) { return 0, boom }},
		{Tier: "b", Load: func(context.Context) (int, error) { return 0, boom }},
	}
	_, tier, attempts, err := resolve(context.Background(), "test", providers)
	assert.ErrorIs(t, err, errChainExhausted)
	assert.Equal(t, "", tier)
	assert.Len(t, attempts, 2)
}
