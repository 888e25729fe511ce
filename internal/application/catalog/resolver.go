// Package catalog resolves the designer catalog and the user's favorite set through
// fixed fallback chains: remote, then local cache, then bundled data.
package catalog

import (
	"context"
	"fmt"

	"designer-shortlist/internal/domain"
	"designer-shortlist/internal/pkg/apperr"
)

// Tier names, also reported in results and logs.
const (
	TierRemote  = "remote"
	TierCache   = "cache"
	TierBuiltin = "builtin"
	TierEmpty   = "empty"
)

// Remote is the request capability for catalog data.
type Remote interface {
	FetchCatalog(ctx context.Context) ([]domain.Listing, error)
	FetchFavorites(ctx context.Context, userID string) ([]domain.Listing, error)
}

// SnapshotLoader reads the last favorite ids persisted by the shortlist engine.
type SnapshotLoader interface {
	Load(ctx context.Context) ([]int64, error)
}

// CatalogResult is a resolved catalog. Degraded is set when the bundled dataset was used.
type CatalogResult struct {
	Listings []domain.Listing
	Tier     string
	Degraded bool
	Attempts []Attempt
}

// FavoritesResult is a resolved favorite set.
type FavoritesResult struct {
	IDs      []int64
	Tier     string
	Attempts []Attempt
}

// Resolver is the data source resolver. Cache may be nil, in which case the favorites chain
// goes straight from remote to empty.
type Resolver struct {
	Remote  Remote
	Cache   SnapshotLoader
	Builtin func() []domain.Listing // defaults to domain.SampleListings
}

// LoadCatalog returns the remote catalog in server order, or the bundled dataset when the
// remote tier fails for any reason. It never fails.
func (r *Resolver) LoadCatalog(ctx context.Context) CatalogResult {
	builtin := r.Builtin
	if builtin == nil {
		builtin = domain.SampleListings
	}
	providers := []Provider[[]domain.Listing]{
		{Tier: TierRemote, Load: func(ctx context.Context) ([]domain.Listing, error) {
			listings, err := r.Remote.FetchCatalog(ctx)
			if err != nil {
				return nil, err
			}
			if listings == nil {
				return nil, fmt.Errorf("%w: catalog payload has no listing array", apperr.ErrProtocol)
			}
			return listings, nil
		}},
		{Tier: TierBuiltin, Load: func(context.Context) ([]domain.Listing, error) {
			return builtin(), nil
		}},
	}
	listings, tier, attempts, err := resolve(ctx, "catalog", providers)
	if err != nil {
		// unreachable: the builtin tier cannot fail
		listings, tier = builtin(), TierBuiltin
	}
	return CatalogResult{
		Listings: listings,
		Tier:     tier,
		Degraded: tier != TierRemote,
		Attempts: attempts,
	}
}

// LoadFavoriteSet returns the ids favorited by userID: from the remote service, else the
// cached snapshot, else nothing. It never fails.
func (r *Resolver) LoadFavoriteSet(ctx context.Context, userID string) FavoritesResult {
	providers := []Provider[[]int64]{
		{Tier: TierRemote, Load: func(ctx context.Context) ([]int64, error) {
			listings, err := r.Remote.FetchFavorites(ctx, userID)
			if err != nil {
				return nil, err
			}
			ids := make([]int64, 0, len(listings))
			for _, l := range listings {
				ids = append(ids, l.ID)
			}
			return ids, nil
		}},
	}
	if r.Cache != nil {
		providers = append(providers, Provider[[]int64]{Tier: TierCache, Load: r.Cache.Load})
	}
	providers = append(providers, Provider[[]int64]{Tier: TierEmpty, Load: func(context.Context) ([]int64, error) {
		return []int64{}, nil
	}})

	ids, tier, attempts, err := resolve(ctx, "favorites", providers)
	if err != nil {
		ids, tier = []int64{}, TierEmpty
	}
	return FavoritesResult{IDs: ids, Tier: tier, Attempts: attempts}
}
