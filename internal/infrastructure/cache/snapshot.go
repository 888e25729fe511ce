package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"designer-shortlist/internal/pkg/apperr"
)

// Snapshot stores the favorite ids as a JSON array under one fixed key.
type Snapshot struct {
	Store Store
	Key   string
}

// Load returns the stored ids. ErrMiss when nothing was saved yet; apperr.ErrCache on
// read or decode failures.
func (s *Snapshot) Load(ctx context.Context) ([]int64, error) {
	b, err := s.Store.Get(ctx, s.Key)
	if err != nil {
		return nil, err
	}
	var ids []int64
	if err := json.Unmarshal(b, &ids); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", apperr.ErrCache, s.Key, err)
	}
	return ids, nil
}

// Save replaces the stored ids. The array is written sorted so equal sets produce equal payloads.
func (s *Snapshot) Save(ctx context.Context, ids []int64) error {
	sorted := make([]int64, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	b, err := json.Marshal(sorted)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", apperr.ErrCache, s.Key, err)
	}
	return s.Store.Set(ctx, s.Key, b)
}
