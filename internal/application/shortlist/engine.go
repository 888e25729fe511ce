// Package shortlist owns the user's favorite set and keeps it in step with the remote service.
package shortlist

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"designer-shortlist/internal/application/notice"
	"designer-shortlist/internal/domain"

	"github.com/rs/zerolog/log"
)

// ErrToggleInFlight is returned when the id already has an unconfirmed toggle.
var ErrToggleInFlight = errors.New("shortlist update already in progress")

// Remote is the reconciling call issued for every toggle.
type Remote interface {
	UpdateShortlist(ctx context.Context, designerID int64, action domain.ShortlistAction, userID string) error
}

// SnapshotSaver persists the favorite set after a confirmed toggle.
type SnapshotSaver interface {
	Save(ctx context.Context, ids []int64) error
}

// Outcome describes a finished toggle. Favorite is the membership of ID after the call.
// Reverted is set when the optimistic change was rolled back; Message is then the
// text to show the user.
type Outcome struct {
	ID       int64                  `json:"id"`
	Action   domain.ShortlistAction `json:"action"`
	Favorite bool                   `json:"favorite"`
	Reverted bool                   `json:"reverted"`
	Message  string                 `json:"message,omitempty"`
}

// Engine holds the in-memory favorite set for one user. It is safe for concurrent use.
// At most one toggle per id is in flight; toggles on different ids run concurrently.
type Engine struct {
	userID string
	remote Remote
	cache  SnapshotSaver // optional

	mu      sync.Mutex
	set     map[int64]struct{}
	pending map[int64]bool // id -> membership the unconfirmed toggle asked for

	saveMu sync.Mutex
}

// NewEngine returns an engine with an empty set. cache may be nil.
func NewEngine(userID string, remote Remote, cache SnapshotSaver) *Engine {
	return &Engine{
		userID:  userID,
		remote:  remote,
		cache:   cache,
		set:     make(map[int64]struct{}),
		pending: make(map[int64]bool),
	}
}

// UserID is the user whose set this engine synchronizes.
func (e *Engine) UserID() string {
	return e.userID
}

// Toggle flips the membership of id immediately, then confirms the change remotely.
// On failure the membership of id is restored to its value before the call and the
// returned error wraps the remote failure. No retry is attempted.
func (e *Engine) Toggle(ctx context.Context, id int64) (Outcome, error) {
	e.mu.Lock()
	_, was := e.set[id]
	if _, busy := e.pending[id]; busy {
		e.mu.Unlock()
		return Outcome{ID: id, Favorite: was}, ErrToggleInFlight
	}
	action := domain.ActionAdd
	if was {
		action = domain.ActionRemove
		delete(e.set, id)
	} else {
		e.set[id] = struct{}{}
	}
	e.pending[id] = !was
	e.mu.Unlock()

	err := e.remote.UpdateShortlist(ctx, id, action, e.userID)

	e.mu.Lock()
	delete(e.pending, id)
	if err != nil {
		if was {
			e.set[id] = struct{}{}
		} else {
			delete(e.set, id)
		}
		e.mu.Unlock()
		log.Error().Err(err).Int64("designer_id", id).Str("action", string(action)).Str("user_id", e.userID).Msg("Shortlist update failed, reverted")
		return Outcome{
			ID:       id,
			Action:   action,
			Favorite: was,
			Reverted: true,
			Message:  notice.ShortlistFailed,
		}, fmt.Errorf("shortlist %s %d: %w", action, id, err)
	}
	// A Replace may have run while the call was out.
	if was {
		delete(e.set, id)
	} else {
		e.set[id] = struct{}{}
	}
	e.mu.Unlock()

	e.saveSnapshot(ctx)
	log.Info().Int64("designer_id", id).Str("action", string(action)).Str("user_id", e.userID).Msg("Shortlist updated")
	return Outcome{ID: id, Action: action, Favorite: !was}, nil
}

// saveSnapshot writes the current set to the cache tier. Failures are logged and dropped.
func (e *Engine) saveSnapshot(ctx context.Context) {
	if e.cache == nil {
		return
	}
	e.saveMu.Lock()
	defer e.saveMu.Unlock()
	if err := e.cache.Save(ctx, e.IDs()); err != nil {
		log.Warn().Err(err).Str("user_id", e.userID).Msg("Saving shortlist snapshot failed")
	}
}

// Has reports whether id is currently favorited, including unconfirmed changes.
func (e *Engine) Has(id int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.set[id]
	return ok
}

// Pending reports whether id has a toggle awaiting confirmation.
func (e *Engine) Pending(id int64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.pending[id]
	return ok
}

// IDs returns the favorited ids in ascending order.
func (e *Engine) IDs() []int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	ids := make([]int64, 0, len(e.set))
	for id := range e.set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Count returns the size of the set.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.set)
}

// Replace swaps the whole set, e.g. after a (re)load. Ids with a toggle in flight keep
// the membership that toggle asked for.
func (e *Engine) Replace(ids []int64) {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for id, want := range e.pending {
		if want {
			set[id] = struct{}{}
		} else {
			delete(set, id)
		}
	}
	e.set = set
}

// Prune drops ids for which keep returns false and returns how many were dropped.
func (e *Engine) Prune(keep func(id int64) bool) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for id := range e.set {
		if !keep(id) {
			delete(e.set, id)
			n++
		}
	}
	return n
}
