// Package cache is the client's best-effort local cache tier.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"designer-shortlist/internal/pkg/apperr"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned when the key holds nothing.
var ErrMiss = errors.New("cache miss")

// Store is a scoped key-value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// RedisStore keeps values in Redis under Prefix+key.
type RedisStore struct {
	Rdb    *redis.Client
	Prefix string        // scope, e.g. "shortlist:default_user:"
	TTL    time.Duration // 0 keeps values forever
}

// NewRedisStore connects to the Redis at url (redis://...).
func NewRedisStore(url, prefix string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%w: parse redis url: %v", apperr.ErrCache, err)
	}
	return &RedisStore{Rdb: redis.NewClient(opt), Prefix: prefix, TTL: ttl}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.Rdb.Get(ctx, s.Prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: redis get %s: %v", apperr.ErrCache, key, err)
	}
	return b, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.Rdb.Set(ctx, s.Prefix+key, value, s.TTL).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", apperr.ErrCache, key, err)
	}
	return nil
}

// Close releases the Redis connection pool.
func (s *RedisStore) Close() error {
	return s.Rdb.Close()
}

// MemoryStore keeps values for the lifetime of the process.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.data[key]
	if !ok {
		return nil, ErrMiss
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := make([]byte, len(value))
	copy(b, value)
	s.data[key] = b
	return nil
}
