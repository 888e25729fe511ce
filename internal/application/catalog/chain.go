package catalog

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

// Provider is one tier of a fallback chain.
type Provider[T any] struct {
	Tier string
	Load func(ctx context.Context) (T, error)
}

// Attempt records a tier that was tried and failed.
type Attempt struct {
	Tier string
	Err  error
}

// errChainExhausted is returned only when every provider failed; chains built by the
// Resolver always end in a provider that cannot fail.
var errChainExhausted = errors.New("all providers failed")

// resolve tries providers in order and returns the first success with the tier it came from.
// Each provider is attempted at most once.
func resolve[T any](ctx context.Context, chain string, providers []Provider[T]) (T, string, []Attempt, error) {
	var attempts []Attempt
	for _, p := range providers {
		v, err := p.Load(ctx)
		if err == nil {
			log.Debug().Str("chain", chain).Str("tier", p.Tier).Int("failed_tiers", len(attempts)).Msg("Resolved data source")
			return v, p.Tier, attempts, nil
		}
		log.Warn().Err(err).Str("chain", chain).Str("tier", p.Tier).Msg("Data source tier failed, falling back")
		attempts = append(attempts, Attempt{Tier: p.Tier, Err: err})
	}
	var zero T
	return zero, "", attempts, errChainExhausted
}
